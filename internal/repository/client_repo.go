package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TarekElTayeh/bistroAR/internal/model"
)

type ClientRepository interface {
	Upsert(ctx context.Context, clients []model.Client) error
	FindByCode(ctx context.Context, code string) (*model.Client, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Upsert(ctx context.Context, clients []model.Client) error {
	if len(clients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&clients).Error
}

func (r *clientRepo) FindByCode(ctx context.Context, code string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
