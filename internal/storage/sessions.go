package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateImportSession records a new statement import and returns its
// identifier.
func (s *SQLiteStore) CreateImportSession(ctx context.Context, source string, entryCount int) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(source, "source"); err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_sessions (id, source, entry_count)
		VALUES (?, ?, ?)
	`, id, source, entryCount)
	if err != nil {
		return "", fmt.Errorf("failed to record import session: %w", err)
	}
	return id, nil
}
