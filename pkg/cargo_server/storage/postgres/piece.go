package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

func (s *_Storage) StorePieceGroup(ctx context.Context, tx storage.Tx, group model.PieceGroup) error {
	query := `
INSERT INTO piece_group (id, wr_number, "group")
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
	"group" = excluded."group"`

	_, err := tx.Exec(ctx, query, group.ID, group.WRNumber, group)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListPieceGroups(ctx context.Context, tx storage.Tx, req storage.ListPieceGroupsRequest) (storage.ListPieceGroupsResult, error) {
	query := `
SELECT count(*) OVER (), "group" FROM piece_group
WHERE
	($3 = '' OR wr_number = $3)
	AND (COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4))
ORDER BY rec_id ASC
OFFSET $1 LIMIT NULLIF($2, 0)`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.WRNumber, req.IDs)
	if err != nil {
		return storage.ListPieceGroupsResult{}, err
	}
	defer rows.Close()

	result := storage.ListPieceGroupsResult{}
	for rows.Next() {
		var group model.PieceGroup
		if err := rows.Scan(&result.Total, &group); err != nil {
			return storage.ListPieceGroupsResult{}, err
		}
		result.Records = append(result.Records, group)
	}
	if err := rows.Err(); err != nil {
		return storage.ListPieceGroupsResult{}, err
	}

	return result, nil
}

func (s *_Storage) DeletePieceGroup(ctx context.Context, tx storage.Tx, id string) error {
	query := `DELETE FROM piece_group WHERE id = $1`

	_, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) StorePieceItem(ctx context.Context, tx storage.Tx, item model.PieceItem) error {
	query := `
INSERT INTO piece_item (id, group_id, item_index, item)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
	item_index = excluded.item_index,
	item = excluded.item`

	_, err := tx.Exec(ctx, query, item.ID, item.GroupID, item.Index, item)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return model.ErrDuplicateItemIndex
	}
	if err != nil {
		return err
	}

	return nil
}

// ListPieceItems returns items ordered by index ascending.
func (s *_Storage) ListPieceItems(ctx context.Context, tx storage.Tx, req storage.ListPieceItemsRequest) (storage.ListPieceItemsResult, error) {
	query := `
SELECT count(*) OVER (), item FROM piece_item
WHERE
	($3 = '' OR group_id = $3)
	AND (COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4))
ORDER BY item_index ASC
OFFSET $1 LIMIT NULLIF($2, 0)`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.GroupID, req.IDs)
	if err != nil {
		return storage.ListPieceItemsResult{}, err
	}
	defer rows.Close()

	result := storage.ListPieceItemsResult{}
	for rows.Next() {
		var item model.PieceItem
		if err := rows.Scan(&result.Total, &item); err != nil {
			return storage.ListPieceItemsResult{}, err
		}
		result.Records = append(result.Records, item)
	}
	if err := rows.Err(); err != nil {
		return storage.ListPieceItemsResult{}, err
	}

	return result, nil
}

func (s *_Storage) DeletePieceItem(ctx context.Context, tx storage.Tx, id string) error {
	query := `DELETE FROM piece_item WHERE id = $1`

	_, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
