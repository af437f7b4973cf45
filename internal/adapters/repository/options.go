package repository

import "github.com/okian/slate/pkg/logger"

// Option applies a configuration option to the SnapshotStore.
type Option func(*SnapshotStore)

// WithLogger sets the logger used on publish.
func WithLogger(l logger.Logger) Option {
	return func(s *SnapshotStore) {
		if l != nil {
			s.log = l
		}
	}
}
