package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage/postgres"
	"github.com/amvarmar/cargotrack/pkg/util"
)

type Config struct {
	Database      util.PostgresDatabaseConfig
	CheckInterval int
	BatchSize     int
	MaxRetry      int
	SMTP          SMTPConfig
}

type ProcessorOption func(p *Processor)

func WithStorage(storage storage.NotificationStorage) ProcessorOption {
	return func(p *Processor) {
		p.storage = storage
	}
}

func WithNotifier(notifier Notifier) ProcessorOption {
	return func(p *Processor) {
		p.notifier = notifier
	}
}

// Processor drains the notification outbox. Messages are enqueued in the
// same transaction as the business change that caused them, so a delivery
// failure can never roll that change back; the processor retries delivery
// and gives up on messages that keep failing.
type Processor struct {
	retry         int
	batchSize     int
	checkInterval time.Duration
	storage       storage.NotificationStorage
	notifier      Notifier
}

func NewProcessorWithConfig(cfg Config, opts ...ProcessorOption) (*Processor, error) {
	res := &Processor{
		retry:         cfg.MaxRetry,
		batchSize:     cfg.BatchSize,
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
	}

	for _, opt := range opts {
		opt(res)
	}
	if res.storage == nil {
		notificationStorage, err := postgres.NewStorageWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		res.storage = notificationStorage
	}
	if res.notifier == nil {
		res.notifier = NewSMTPSender(cfg.SMTP)
	}

	return res, nil
}

func (p *Processor) Run(ctx context.Context) {
	logrus.Info("Notification processor is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.checkInterval):
			p._Proc(ctx)
		}
	}
}

func (p *Processor) _Proc(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := p.getNotifications(ctx)
		if err != nil {
			logrus.Errorf("failed to get notifications: %v", err)
			return
		}
		if len(msgs) == 0 {
			return
		}

		logrus.Debugf("Got %d notifications", len(msgs))
		ids := make([]int64, 0, len(msgs))
		for i := range msgs {
			err = p.sendNotification(ctx, msgs[i])
			if err != nil {
				logrus.Warnf("failed to send notification: %v", err)
				if !errors.Is(err, model.ErrNotification) {
					continue
				}
			}

			ids = append(ids, msgs[i].RecID)
		}

		if len(ids) == 0 {
			return
		}

		err = p.deleteNotifications(ctx, ids...)
		if err != nil {
			logrus.Errorf("failed to delete notifications: %v", err)
		}

		logrus.Debugf("Sent %d notifications", len(ids))
	}
}

func (p *Processor) sendNotification(ctx context.Context, msg storage.OutboxMsg) error {
	var n model.Notification
	err := json.Unmarshal(msg.Msg, &n)
	if err != nil {
		return fmt.Errorf("json unmarshal notification: %s%w", err.Error(), model.ErrNotification)
	}

	err = retry.Do(
		func() error {
			return p.notifier.Notify(ctx, n)
		},
		retry.Attempts(uint(p.retry)),
		retry.Context(ctx),
	)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("exceed maximum retries sending notification. %w", model.ErrNotificationFailed)
	}
	return nil
}

func (p *Processor) getNotifications(ctx context.Context) ([]storage.OutboxMsg, error) {
	tx, ctx, err := p.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outboxMsgs, err := p.storage.GetNotificationOutbox(ctx, tx, p.batchSize)
	if err != nil {
		return nil, err
	}

	if len(outboxMsgs) == 0 {
		return nil, nil
	}

	return outboxMsgs, nil
}

func (p *Processor) deleteNotifications(ctx context.Context, recIDs ...int64) error {
	tx, ctx, err := p.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = p.storage.DeleteNotificationOutbox(ctx, tx, recIDs...)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
