package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

func (s *_Storage) StoreReceipt(ctx context.Context, tx storage.Tx, receipt model.WarehouseReceipt) error {
	query := `
WITH new_data AS (
	INSERT INTO warehouse_receipt (wr_number, "version", client_id, status, created_at, updated_at, receipt)
	VALUES ($1, $2, $3, $4, $5, $5, $6)
	ON CONFLICT (wr_number) DO UPDATE SET
		wr_number = excluded.wr_number,
		"version" = excluded."version",
		client_id = excluded.client_id,
		status = excluded.status,
		updated_at = excluded.updated_at,
		receipt = excluded.receipt
	RETURNING wr_number, "version", updated_at, receipt
)
INSERT INTO warehouse_receipt_history (wr_number, "version", created_at, receipt)
SELECT * FROM new_data`

	_, err := tx.Exec(ctx, query, receipt.WRNumber, receipt.Version, receipt.ClientID, receipt.Status, receipt.UpdatedAt, receipt)
	if err != nil {
		return err
	}

	return nil
}

// ListReceipts returns receipts newest-first. A zero Limit means no limit.
// With EligibleForDispatch set, receipts referenced by a dispatch item whose
// request is PENDING or APPROVED are excluded.
func (s *_Storage) ListReceipts(ctx context.Context, tx storage.Tx, req storage.ListReceiptsRequest) (storage.ListReceiptsResult, error) {
	query := `
SELECT count(*) OVER (), receipt FROM warehouse_receipt wr
WHERE
	($3 = '' OR client_id = $3)
	AND (COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR wr_number = ANY($4))
	AND (COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR status = ANY($5))
	AND ($6 = FALSE OR NOT EXISTS (
		SELECT 1 FROM dispatch_item di
		JOIN dispatch d ON d.id = di.dispatch_id
		WHERE di.wr_number = wr.wr_number AND d.status = ANY('{PENDING,APPROVED}')
	))
ORDER BY created_at DESC, wr_number DESC
OFFSET $1 LIMIT NULLIF($2, 0)`

	statuses := lo.Map(req.Statuses, func(s model.ReceiptStatus, _ int) string { return string(s) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.ClientID, req.WRNumbers, statuses, req.EligibleForDispatch)
	if err != nil {
		return storage.ListReceiptsResult{}, err
	}
	defer rows.Close()

	result := storage.ListReceiptsResult{}
	for rows.Next() {
		var receipt model.WarehouseReceipt
		if err := rows.Scan(&result.Total, &receipt); err != nil {
			return storage.ListReceiptsResult{}, err
		}
		result.Records = append(result.Records, receipt)
	}
	if err := rows.Err(); err != nil {
		return storage.ListReceiptsResult{}, err
	}

	return result, nil
}

func (s *_Storage) DeleteReceipt(ctx context.Context, tx storage.Tx, wrNumber string) error {
	query := `DELETE FROM warehouse_receipt WHERE wr_number = $1`

	_, err := tx.Exec(ctx, query, wrNumber)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return model.ErrReceiptInDispatch
	}
	if err != nil {
		return err
	}

	return nil
}
