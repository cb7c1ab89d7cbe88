package store

import (
	"context"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// Config returns the content-generation configuration, falling back to the
// documented default literal when the collaborator holds no record. The
// config is a singleton: there are never list semantics at this level.
func (s *Store) Config() models.ContentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config == nil {
		return models.DefaultContentConfig()
	}
	return *s.config
}

// UpdateConfig replaces the singleton record. The update always targets the
// fixed identifier; the local copy is set optimistically and restored on
// failure.
func (s *Store) UpdateConfig(ctx context.Context, cfg models.ContentConfig) error {
	cfg.ID = models.ContentConfigID
	return s.mutate(ctx, KindConfig,
		func() func() {
			prev := s.config
			s.config = &cfg
			return func() { s.config = prev }
		},
		func(ctx context.Context) error {
			out, err := s.api.PutConfig(ctx, cfg)
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.config = &out
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
}
