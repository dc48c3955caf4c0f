package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

// Receipt table columns a staff user can toggle on the listing view.
const (
	ColumnWRNumber        = "wr_number"
	ColumnClient          = "client"
	ColumnShipper         = "shipper"
	ColumnCarrier         = "carrier"
	ColumnContainerNumber = "container_number"
	ColumnWeightLbs       = "weight_lbs"
	ColumnWeightKgs       = "weight_kgs"
	ColumnStatus          = "status"
	ColumnPieces          = "pieces"
	ColumnDocument        = "document"
	ColumnCreatedAt       = "created_at"
)

// ColumnPreference is one staff user's receipt listing layout.
type ColumnPreference struct {
	UserID    string          `json:"user_id"`
	Columns   map[string]bool `json:"columns"`
	UpdatedAt int64           `json:"updated_at"`
}

// DefaultColumns is the layout used until a user saves their own.
func DefaultColumns() map[string]bool {
	return map[string]bool{
		ColumnWRNumber:        true,
		ColumnClient:          true,
		ColumnShipper:         true,
		ColumnCarrier:         true,
		ColumnContainerNumber: false,
		ColumnWeightLbs:       true,
		ColumnWeightKgs:       true,
		ColumnStatus:          true,
		ColumnPieces:          true,
		ColumnDocument:        false,
		ColumnCreatedAt:       true,
	}
}

type SettingsController interface {
	GetColumnPreference(ctx context.Context, userID string) (ColumnPreference, error)
	PutColumnPreference(ctx context.Context, ts int64, req PutColumnPreferenceRequest) (ColumnPreference, error)
}

type PutColumnPreferenceRequest struct {
	UserID  string          `json:"user_id"`
	Columns map[string]bool `json:"columns"`
}

type SettingsStorage interface {
	CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error)
	StoreColumnPreference(ctx context.Context, tx storage.Tx, pref ColumnPreference) error
	GetColumnPreference(ctx context.Context, tx storage.Tx, userID string) (ColumnPreference, error)
}

type _SettingsController struct {
	storage SettingsStorage
}

func NewSettingsController(s SettingsStorage) SettingsController {
	return &_SettingsController{
		storage: s,
	}
}

func (c *_SettingsController) GetColumnPreference(ctx context.Context, userID string) (ColumnPreference, error) {
	if userID == "" {
		return ColumnPreference{}, fmt.Errorf("user_id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return ColumnPreference{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pref, err := c.storage.GetColumnPreference(ctx, tx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ColumnPreference{UserID: userID, Columns: DefaultColumns()}, nil
	}
	if err != nil {
		return ColumnPreference{}, err
	}

	// Columns added after the preference was saved show with their default.
	for column, enabled := range DefaultColumns() {
		if _, ok := pref.Columns[column]; !ok {
			pref.Columns[column] = enabled
		}
	}

	return pref, nil
}

func (c *_SettingsController) PutColumnPreference(ctx context.Context, ts int64, req PutColumnPreferenceRequest) (ColumnPreference, error) {
	if req.UserID == "" {
		return ColumnPreference{}, fmt.Errorf("user_id is required%w", model.ErrInvalidParameter)
	}

	known := DefaultColumns()
	unknown := make([]string, 0)
	for column := range req.Columns {
		if _, ok := known[column]; !ok {
			unknown = append(unknown, column)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return ColumnPreference{}, fmt.Errorf("unknown column(s) %v%w", unknown, model.ErrInvalidParameter)
	}

	columns := DefaultColumns()
	for column, enabled := range req.Columns {
		columns[column] = enabled
	}

	pref := ColumnPreference{
		UserID:    req.UserID,
		Columns:   columns,
		UpdatedAt: ts,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return ColumnPreference{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.storage.StoreColumnPreference(ctx, tx, pref); err != nil {
		return ColumnPreference{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ColumnPreference{}, err
	}

	return pref, nil
}
