package infra

import (
	"os"

	"github.com/rs/zerolog/log"
)

// RemoveOutputs deletes generated artifact files, skipping ones that are
// already gone. Returns the paths actually removed.
func RemoveOutputs(paths []string) []string {
	var removed []string
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("skipping missing file")
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove file")
			continue
		}
		log.Info().Str("path", path).Msg("removed")
		removed = append(removed, path)
	}
	return removed
}
