package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

// StoreDispatch re-checks the bill-of-lading invariant before writing, so no
// call path can persist an APPROVED or COMPLETED request without the
// document.
func (s *_Storage) StoreDispatch(ctx context.Context, tx storage.Tx, dispatch model.DispatchRequest) error {
	if err := dispatch.CheckBOLInvariant(); err != nil {
		return err
	}

	query := `
WITH new_data AS (
	INSERT INTO dispatch (id, "version", client_id, status, created_at, updated_at, dispatch)
	VALUES ($1, $2, $3, $4, $5, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		id = excluded.id,
		"version" = excluded."version",
		client_id = excluded.client_id,
		status = excluded.status,
		updated_at = excluded.updated_at,
		dispatch = excluded.dispatch
	RETURNING id, "version", updated_at, dispatch
)
INSERT INTO dispatch_history (id, "version", created_at, dispatch)
SELECT * FROM new_data`

	_, err := tx.Exec(ctx, query, dispatch.ID, dispatch.Version, dispatch.ClientID, dispatch.Status, dispatch.UpdatedAt, dispatch)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) AddDispatchItem(ctx context.Context, tx storage.Tx, item model.DispatchItem) error {
	query := `INSERT INTO dispatch_item (dispatch_id, wr_number) VALUES ($1, $2)`

	_, err := tx.Exec(ctx, query, item.DispatchID, item.WRNumber)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return model.ErrDuplicateDispatchItem
	}
	if err != nil {
		return err
	}

	return nil
}

// ListDispatches returns dispatch requests newest-first, each with its linked
// receipt numbers. A zero Limit means no limit.
func (s *_Storage) ListDispatches(ctx context.Context, tx storage.Tx, req storage.ListDispatchesRequest) (storage.ListDispatchesResult, error) {
	query := `
SELECT
	count(*) OVER (),
	d.dispatch,
	ARRAY(SELECT di.wr_number FROM dispatch_item di WHERE di.dispatch_id = d.id ORDER BY di.wr_number)
FROM dispatch d
WHERE
	(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR d.id = ANY($3))
	AND ($4 = '' OR d.client_id = $4)
	AND (COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR d.status = ANY($5))
	AND (COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR EXISTS (
		SELECT 1 FROM dispatch_item di WHERE di.dispatch_id = d.id AND di.wr_number = ANY($6)
	))
	AND ($7 = FALSE OR d.dispatch ? 'bill_of_lading')
ORDER BY d.created_at DESC, d.id DESC
OFFSET $1 LIMIT NULLIF($2, 0)`

	statuses := lo.Map(req.Statuses, func(s model.DispatchStatus, _ int) string { return string(s) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs, req.ClientID, statuses, req.WRNumbers, req.WithBOLOnly)
	if err != nil {
		return storage.ListDispatchesResult{}, err
	}
	defer rows.Close()

	result := storage.ListDispatchesResult{}
	for rows.Next() {
		record := storage.ListDispatchesRecord{}
		if err := rows.Scan(&result.Total, &record.Dispatch, &record.WRNumbers); err != nil {
			return storage.ListDispatchesResult{}, err
		}
		result.Records = append(result.Records, record)
	}
	if err := rows.Err(); err != nil {
		return storage.ListDispatchesResult{}, err
	}

	return result, nil
}
