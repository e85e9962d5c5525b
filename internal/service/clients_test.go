package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportFile(t *testing.T) {
	path := writeTempCSV(t, "Code,Name,Phone,Address(1),E-Mail,Owed_Amount\n"+
		"123,Fred's Garage,555-0100,12 Main St,fred@example.com,50.00\n"+
		"456,Acme Corp,,,,not-a-number\n")

	repo := &stubClientRepo{}
	svc := NewClientService(repo)
	n, err := svc.ImportFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.upserts, 2)

	fred := repo.upserts[0]
	assert.Equal(t, "123", fred.Code)
	assert.Equal(t, "Fred's Garage", fred.Name)
	assert.Equal(t, "12 Main St", fred.Address1)
	assert.Equal(t, "fred@example.com", fred.Email)
	assert.True(t, fred.OwedAmount.Equal(decimal.RequireFromString("50.00")))

	// Unparseable balances import as zero rather than dropping the client.
	assert.True(t, repo.upserts[1].OwedAmount.IsZero())
}

func TestImportFileSkipsRowsWithoutCode(t *testing.T) {
	path := writeTempCSV(t, "Code,Name\n,No Code Inc\n123,Kept\n")

	repo := &stubClientRepo{}
	n, err := NewClientService(repo).ImportFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportFileMissingCodeColumn(t *testing.T) {
	path := writeTempCSV(t, "Name,Phone\nFred,555-0100\n")

	repo := &stubClientRepo{}
	_, err := NewClientService(repo).ImportFile(context.Background(), path)

	var schemaErr *etlerror.SchemaDetectionError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"code"}, schemaErr.Missing)
}

func TestImportFileMissingInput(t *testing.T) {
	repo := &stubClientRepo{}
	_, err := NewClientService(repo).ImportFile(context.Background(), "no/such/file.csv")

	var notFound *etlerror.InputNotFoundError
	require.ErrorAs(t, err, &notFound)
}
