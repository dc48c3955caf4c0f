package postgres

import (
	"context"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	"github.com/amvarmar/cargotrack/pkg/util"
)

func (s *_Storage) AddNotification(ctx context.Context, tx storage.Tx, ts int64, notification *model.Notification) error {
	if notification.ID == "" {
		notification.ID = util.NewUUID()
	}
	if notification.CreatedAt == 0 {
		notification.CreatedAt = ts
	}

	const query string = `INSERT INTO notification_outbox (created_at, notification) VALUES ($1, $2)`
	_, err := tx.Exec(ctx, query, ts, notification)
	if err != nil {
		return err
	}
	return nil
}

func (s *_Storage) GetNotificationOutbox(ctx context.Context, tx storage.Tx, batchSize int) ([]storage.OutboxMsg, error) {
	const query string = `SELECT rec_id, notification FROM notification_outbox ORDER BY rec_id ASC LIMIT $1`
	rows, err := tx.Query(ctx, query, batchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.OutboxMsg, 0, batchSize)
	for rows.Next() {
		var recID int64
		var payload []byte
		if err := rows.Scan(&recID, &payload); err != nil {
			return nil, err
		}
		record := storage.OutboxMsg{
			RecID: recID,
			Msg:   payload,
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *_Storage) DeleteNotificationOutbox(ctx context.Context, tx storage.Tx, recIDs ...int64) error {
	if len(recIDs) == 0 {
		return nil
	}

	const query string = `DELETE FROM notification_outbox WHERE rec_id = ANY($1)`
	_, err := tx.Exec(ctx, query, recIDs)
	if err != nil {
		return err
	}
	return nil
}
