package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/telegram-chat-stats/internal/models"
)

// SaveJSON serializes the report to the given path. A serialization or
// write failure is surfaced to the caller; the one-shot run does not
// retry.
func SaveJSON(path string, stats *models.AllStats, logger zerolog.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stats); err != nil {
		return fmt.Errorf("failed to write report JSON: %w", err)
	}

	logger.Info().
		Str("file", path).
		Msg("Report saved")

	return nil
}
