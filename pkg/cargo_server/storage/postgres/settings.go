package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/settings"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

func (s *_Storage) StoreColumnPreference(ctx context.Context, tx storage.Tx, pref settings.ColumnPreference) error {
	query := `
INSERT INTO column_preference (user_id, columns, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
	columns = excluded.columns,
	updated_at = excluded.updated_at`

	_, err := tx.Exec(ctx, query, pref.UserID, pref.Columns, pref.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetColumnPreference(ctx context.Context, tx storage.Tx, userID string) (settings.ColumnPreference, error) {
	query := `SELECT user_id, columns, updated_at FROM column_preference WHERE user_id = $1`

	pref := settings.ColumnPreference{}
	err := tx.QueryRow(ctx, query, userID).Scan(&pref.UserID, &pref.Columns, &pref.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return settings.ColumnPreference{}, sql.ErrNoRows
	}
	if err != nil {
		return settings.ColumnPreference{}, err
	}

	return pref, nil
}
