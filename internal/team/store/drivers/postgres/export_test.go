package postgres

import "context"

// Reset empties every table so a shared container can serve many tests.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `TRUNCATE invites, users`)
	return err
}
