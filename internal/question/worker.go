package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
)

// CategoryWarmer periodically reloads categories into the cache so request
// paths rarely miss.
type CategoryWarmer struct {
	service  *Service
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewCategoryWarmer(service *Service, interval time.Duration, logger zerolog.Logger) *CategoryWarmer {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CategoryWarmer{
		service:  service,
		interval: interval,
		timeout:  4 * time.Second,
		logger:   logger.With().Str("component", "category_warmer").Logger(),
	}
}

// Run refreshes once immediately and then every interval until ctx is done.
func (w *CategoryWarmer) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("category warmer stopping")
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CategoryWarmer) refresh(parent context.Context) {
	ctx, cancel := context.WithTimeout(logging.IntoContext(parent, w.logger), w.timeout)
	defer cancel()

	if err := w.service.RefreshCategories(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("category refresh failed")
	}
}
