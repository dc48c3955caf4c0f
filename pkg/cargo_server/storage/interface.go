package storage

import (
	"context"
	"database/sql"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type TxWrapperOption struct {
	write bool
	level sql.IsolationLevel
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListReceiptsRequest is the request to list warehouse receipts.
type ListReceiptsRequest struct {
	Offset int `json:"offset"` // Offset of the receipts to be listed.
	Limit  int `json:"limit"`  // Limit of the receipts to be listed.

	// Filters
	ClientID  string                `json:"client_id"`  // Owning client of the receipts.
	WRNumbers []string              `json:"wr_numbers"` // Receipt numbers.
	Statuses  []model.ReceiptStatus `json:"statuses"`   // Receipt statuses.

	// EligibleForDispatch excludes receipts referenced by a dispatch item
	// whose parent request is PENDING or APPROVED.
	EligibleForDispatch bool `json:"eligible_for_dispatch"`
}

// ListReceiptsResult is the result of listing warehouse receipts, ordered
// newest-first.
type ListReceiptsResult struct {
	Total   int                      `json:"total"`
	Records []model.WarehouseReceipt `json:"records"`
}

type ListPieceGroupsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	WRNumber string   `json:"wr_number"` // Owning receipt.
	IDs      []string `json:"ids"`       // Group IDs.
}

type ListPieceGroupsResult struct {
	Total   int                `json:"total"`
	Records []model.PieceGroup `json:"records"`
}

type ListPieceItemsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	GroupID string   `json:"group_id"` // Owning group.
	IDs     []string `json:"ids"`      // Item IDs.
}

// ListPieceItemsResult is ordered by item index ascending.
type ListPieceItemsResult struct {
	Total   int               `json:"total"`
	Records []model.PieceItem `json:"records"`
}

type ReceiptStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreReceipt(ctx context.Context, tx Tx, receipt model.WarehouseReceipt) error
	ListReceipts(ctx context.Context, tx Tx, req ListReceiptsRequest) (ListReceiptsResult, error)
	DeleteReceipt(ctx context.Context, tx Tx, wrNumber string) error
	StorePieceGroup(ctx context.Context, tx Tx, group model.PieceGroup) error
	ListPieceGroups(ctx context.Context, tx Tx, req ListPieceGroupsRequest) (ListPieceGroupsResult, error)
	DeletePieceGroup(ctx context.Context, tx Tx, id string) error
	StorePieceItem(ctx context.Context, tx Tx, item model.PieceItem) error
	ListPieceItems(ctx context.Context, tx Tx, req ListPieceItemsRequest) (ListPieceItemsResult, error)
	DeletePieceItem(ctx context.Context, tx Tx, id string) error

	AddNotification(ctx context.Context, tx Tx, ts int64, notification *model.Notification) error
}

// ListDispatchesRequest is the request to list dispatch requests.
type ListDispatchesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs       []string               `json:"ids"`        // Dispatch request IDs.
	ClientID  string                 `json:"client_id"`  // Requesting client.
	Statuses  []model.DispatchStatus `json:"statuses"`   // Dispatch statuses.
	WRNumbers []string               `json:"wr_numbers"` // Linked receipt numbers.

	// WithBOLOnly keeps only requests that carry a bill of lading. Client
	// listings use it so PENDING requests stay invisible.
	WithBOLOnly bool `json:"with_bol_only"`
}

// ListDispatchesRecord is one dispatch request with its linked receipt
// numbers.
type ListDispatchesRecord struct {
	Dispatch  model.DispatchRequest `json:"dispatch"`
	WRNumbers []string              `json:"wr_numbers"`
}

type ListDispatchesResult struct {
	Total   int                    `json:"total"`
	Records []ListDispatchesRecord `json:"records"`
}

type DispatchStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreDispatch(ctx context.Context, tx Tx, dispatch model.DispatchRequest) error
	AddDispatchItem(ctx context.Context, tx Tx, item model.DispatchItem) error
	ListDispatches(ctx context.Context, tx Tx, req ListDispatchesRequest) (ListDispatchesResult, error)

	ListReceipts(ctx context.Context, tx Tx, req ListReceiptsRequest) (ListReceiptsResult, error)
	StoreReceipt(ctx context.Context, tx Tx, receipt model.WarehouseReceipt) error
	AddNotification(ctx context.Context, tx Tx, ts int64, notification *model.Notification) error
}

type OutboxMsg struct {
	RecID int64
	Msg   []byte
}

type NotificationStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddNotification(ctx context.Context, tx Tx, ts int64, notification *model.Notification) error
	GetNotificationOutbox(ctx context.Context, tx Tx, batchSize int) ([]OutboxMsg, error)
	DeleteNotificationOutbox(ctx context.Context, tx Tx, recIDs ...int64) error
}
