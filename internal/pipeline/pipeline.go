package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/telegram-chat-stats/internal/analysis"
	"github.com/telegram-chat-stats/internal/ingest"
	"github.com/telegram-chat-stats/internal/models"
	"github.com/telegram-chat-stats/internal/notify"
	"github.com/telegram-chat-stats/internal/output"
	"github.com/telegram-chat-stats/internal/summary"
)

// ChatStore persists the loaded chat and its computed reports
type ChatStore interface {
	SaveChat(ctx context.Context, chat *models.Chat) error
	SaveReport(ctx context.Context, chatID int64, year int, stats *models.AllStats) error
}

// Pipeline wires the engine to its collaborators for one analytics run:
// load, persist, filter, aggregate, write, then narrate/notify when
// those collaborators are configured
type Pipeline struct {
	config    *models.Config
	analyzer  *analysis.Analyzer
	storage   ChatStore          // optional
	generator *summary.Generator // optional
	notifier  *notify.Notifier   // optional
	logger    zerolog.Logger
}

// New creates a pipeline; storage, generator and notifier may be nil
func New(
	config *models.Config,
	analyzer *analysis.Analyzer,
	storage ChatStore,
	generator *summary.Generator,
	notifier *notify.Notifier,
	logger zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		config:    config,
		analyzer:  analyzer,
		storage:   storage,
		generator: generator,
		notifier:  notifier,
		logger:    logger.With().Str("component", "pipeline").Logger(),
	}
}

// Run executes one full analytics pass. The report is deterministic and
// pure given the input file, so a failed run can simply be re-invoked.
func (p *Pipeline) Run(ctx context.Context) error {
	start, end, err := p.config.DateRange()
	if err != nil {
		return err
	}

	chat, err := ingest.LoadChat(p.config.InputPath, p.logger)
	if err != nil {
		return fmt.Errorf("failed to load chat: %w", err)
	}

	// The database keeps the chat as loaded. Analyze filters the message
	// slice in place, so persistence must happen first.
	if p.storage != nil {
		if err := p.storage.SaveChat(ctx, chat); err != nil {
			return fmt.Errorf("failed to persist chat: %w", err)
		}
	}

	stats := p.analyzer.Analyze(chat, start, end)

	reportYear := p.config.Year
	if reportYear == 0 {
		reportYear = start.Year()
	}

	if p.generator != nil {
		narrative, err := p.generator.GenerateNarrative(ctx, chat.Name, reportYear, stats)
		if err != nil {
			// The numeric report stands on its own without the narrative
			p.logger.Error().Err(err).Msg("Narrative generation failed, continuing without it")
		} else {
			stats.Narrative = narrative
		}
	}

	if err := output.SaveJSON(p.config.OutputPath, stats, p.logger); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if p.storage != nil {
		if err := p.storage.SaveReport(ctx, chat.ID, reportYear, stats); err != nil {
			return fmt.Errorf("failed to persist report: %w", err)
		}
	}

	if p.notifier != nil {
		if err := p.notifier.SendDigest(chat.Name, reportYear, stats); err != nil {
			p.logger.Error().Err(err).Msg("Failed to send report digest")
		}
	}

	return nil
}
