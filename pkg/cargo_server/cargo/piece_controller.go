package cargo

import (
	"context"
	"database/sql"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	"github.com/amvarmar/cargotrack/pkg/util"
)

type PieceController interface {
	AddGroup(ctx context.Context, ts int64, req AddGroupRequest) (model.PieceGroup, error)
	UpdateGroup(ctx context.Context, ts int64, req UpdateGroupRequest) (model.PieceGroup, error)
	DeleteGroup(ctx context.Context, id string) error
	ListGroups(ctx context.Context, req storage.ListPieceGroupsRequest) (storage.ListPieceGroupsResult, error)

	AddItem(ctx context.Context, ts int64, req AddItemRequest) (model.PieceItem, error)
	UpdateItem(ctx context.Context, ts int64, req UpdateItemRequest) (model.PieceItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, req storage.ListPieceItemsRequest) (storage.ListPieceItemsResult, error)

	// Reconcile converges the live item count of a group toward its declared
	// quantity, creating or trimming items as needed.
	Reconcile(ctx context.Context, groupID string) (ReconcileResult, error)

	// SyncItems applies a bulk item submission to a group, all or nothing.
	SyncItems(ctx context.Context, req SyncItemsRequest) ([]model.PieceItem, error)
}

type AddGroupRequest struct {
	WRNumber    string          `json:"wr_number"`
	TypeOf      model.PieceType `json:"type_of"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
}

type UpdateGroupRequest struct {
	ID string `json:"id"`
	AddGroupRequest
}

type AddItemRequest struct {
	GroupID   string           `json:"group_id"`
	Index     int              `json:"index"`
	WeightLbs *decimal.Decimal `json:"weight_lbs"`
	WeightKgs *decimal.Decimal `json:"weight_kgs"`
	LengthCm  *decimal.Decimal `json:"length_cm"`
	WidthCm   *decimal.Decimal `json:"width_cm"`
	HeightCm  *decimal.Decimal `json:"height_cm"`
	Notes     string           `json:"notes"`
}

type UpdateItemRequest struct {
	ID string `json:"id"`
	AddItemRequest
}

// ReconcileResult reports what a reconcile pass did to a group.
type ReconcileResult struct {
	GroupID string            `json:"group_id"`
	Created []model.PieceItem `json:"created,omitempty"`
	Deleted []model.PieceItem `json:"deleted,omitempty"`
}

// SyncItemEntry is one row of a bulk item submission. An empty ID means the
// entry creates a new item; Delete flags an existing item for removal.
type SyncItemEntry struct {
	ID        string           `json:"id"`
	Index     int              `json:"index"`
	WeightLbs *decimal.Decimal `json:"weight_lbs"`
	WeightKgs *decimal.Decimal `json:"weight_kgs"`
	LengthCm  *decimal.Decimal `json:"length_cm"`
	WidthCm   *decimal.Decimal `json:"width_cm"`
	HeightCm  *decimal.Decimal `json:"height_cm"`
	Notes     string           `json:"notes"`
	Delete    bool             `json:"delete"`
}

type SyncItemsRequest struct {
	GroupID string          `json:"group_id"`
	Entries []SyncItemEntry `json:"entries"`
}

type _PieceController struct {
	storage storage.ReceiptStorage
}

func NewPieceController(s storage.ReceiptStorage) PieceController {
	return &_PieceController{
		storage: s,
	}
}

func (c *_PieceController) AddGroup(ctx context.Context, ts int64, req AddGroupRequest) (model.PieceGroup, error) {
	if err := ValidateAddGroupRequest(req); err != nil {
		return model.PieceGroup{}, err
	}

	group := model.PieceGroup{
		ID:          util.NewUUID(),
		WRNumber:    req.WRNumber,
		TypeOf:      req.TypeOf,
		Quantity:    req.Quantity,
		Description: req.Description,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.PieceGroup{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := c._GetReceipt(ctx, tx, req.WRNumber); err != nil {
		return model.PieceGroup{}, err
	}

	if err := c.storage.StorePieceGroup(ctx, tx, group); err != nil {
		return model.PieceGroup{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.PieceGroup{}, err
	}

	return group, nil
}

func (c *_PieceController) UpdateGroup(ctx context.Context, ts int64, req UpdateGroupRequest) (model.PieceGroup, error) {
	if err := ValidateUpdateGroupRequest(req); err != nil {
		return model.PieceGroup{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.PieceGroup{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	group, err := c._GetGroup(ctx, tx, req.ID)
	if err != nil {
		return model.PieceGroup{}, err
	}

	group.TypeOf = req.TypeOf
	group.Quantity = req.Quantity
	group.Description = req.Description

	if err := c.storage.StorePieceGroup(ctx, tx, group); err != nil {
		return model.PieceGroup{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.PieceGroup{}, err
	}

	return group, nil
}

func (c *_PieceController) DeleteGroup(ctx context.Context, id string) error {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := c._GetGroup(ctx, tx, id); err != nil {
		return err
	}

	items, err := c.storage.ListPieceItems(ctx, tx, storage.ListPieceItemsRequest{GroupID: id})
	if err != nil {
		return err
	}
	for _, item := range items.Records {
		if err := c.storage.DeletePieceItem(ctx, tx, item.ID); err != nil {
			return err
		}
	}

	if err := c.storage.DeletePieceGroup(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *_PieceController) ListGroups(ctx context.Context, req storage.ListPieceGroupsRequest) (storage.ListPieceGroupsResult, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListPieceGroupsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListPieceGroups(ctx, tx, req)
}

func (c *_PieceController) AddItem(ctx context.Context, ts int64, req AddItemRequest) (model.PieceItem, error) {
	if err := ValidateAddItemRequest(req); err != nil {
		return model.PieceItem{}, err
	}

	lbs, kgs := DeriveItemWeight(req.WeightLbs, req.WeightKgs)
	item := model.PieceItem{
		ID:        util.NewUUID(),
		GroupID:   req.GroupID,
		Index:     req.Index,
		WeightLbs: lbs,
		WeightKgs: kgs,
		LengthCm:  req.LengthCm,
		WidthCm:   req.WidthCm,
		HeightCm:  req.HeightCm,
		Notes:     req.Notes,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.PieceItem{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := c._GetGroup(ctx, tx, req.GroupID); err != nil {
		return model.PieceItem{}, err
	}

	if err := c.storage.StorePieceItem(ctx, tx, item); err != nil {
		return model.PieceItem{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.PieceItem{}, err
	}

	return item, nil
}

func (c *_PieceController) UpdateItem(ctx context.Context, ts int64, req UpdateItemRequest) (model.PieceItem, error) {
	if err := ValidateAddItemRequest(req.AddItemRequest); err != nil {
		return model.PieceItem{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.PieceItem{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	item, err := c._GetItem(ctx, tx, req.ID)
	if err != nil {
		return model.PieceItem{}, err
	}

	lbs, kgs := DeriveItemWeight(req.WeightLbs, req.WeightKgs)
	item.Index = req.Index
	item.WeightLbs = lbs
	item.WeightKgs = kgs
	item.LengthCm = req.LengthCm
	item.WidthCm = req.WidthCm
	item.HeightCm = req.HeightCm
	item.Notes = req.Notes

	if err := c.storage.StorePieceItem(ctx, tx, item); err != nil {
		return model.PieceItem{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.PieceItem{}, err
	}

	return item, nil
}

func (c *_PieceController) DeleteItem(ctx context.Context, id string) error {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := c._GetItem(ctx, tx, id); err != nil {
		return err
	}
	if err := c.storage.DeletePieceItem(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *_PieceController) ListItems(ctx context.Context, req storage.ListPieceItemsRequest) (storage.ListPieceItemsResult, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListPieceItemsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListPieceItems(ctx, tx, req)
}

// Reconcile compares the declared quantity Q of a group with its live item
// count C. When C < Q it creates the missing items with indices C+1 through Q.
// When C > Q it deletes the C-Q items with the highest indices. Equal counts
// are a no-op. Existing item data is never modified.
//
// New indices are derived from the count alone. When per-item deletion left a
// surviving item holding one of them, the insert fails with
// ErrDuplicateItemIndex and the whole reconcile rolls back; gaps in the index
// range are not repaired.
func (c *_PieceController) Reconcile(ctx context.Context, groupID string) (ReconcileResult, error) {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return ReconcileResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	group, err := c._GetGroup(ctx, tx, groupID)
	if err != nil {
		return ReconcileResult{}, err
	}

	items, err := c.storage.ListPieceItems(ctx, tx, storage.ListPieceItemsRequest{GroupID: groupID})
	if err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{GroupID: groupID}
	count := len(items.Records)
	switch {
	case count < group.Quantity:
		for idx := count + 1; idx <= group.Quantity; idx++ {
			item := model.PieceItem{
				ID:      util.NewUUID(),
				GroupID: groupID,
				Index:   idx,
			}
			if err := c.storage.StorePieceItem(ctx, tx, item); err != nil {
				return ReconcileResult{}, err
			}
			result.Created = append(result.Created, item)
		}
	case count > group.Quantity:
		doomed := make([]model.PieceItem, len(items.Records))
		copy(doomed, items.Records)
		sort.Slice(doomed, func(i, j int) bool { return doomed[i].Index > doomed[j].Index })
		for _, item := range doomed[:count-group.Quantity] {
			if err := c.storage.DeletePieceItem(ctx, tx, item.ID); err != nil {
				return ReconcileResult{}, err
			}
			result.Deleted = append(result.Deleted, item)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return ReconcileResult{}, err
	}

	return result, nil
}

// SyncItems validates the whole submission before touching storage. Surviving
// entries (those not flagged for deletion) must number exactly the group's
// quantity and carry pairwise distinct indices; otherwise nothing is applied.
func (c *_PieceController) SyncItems(ctx context.Context, req SyncItemsRequest) ([]model.PieceItem, error) {
	if err := ValidateSyncItemsRequest(req); err != nil {
		return nil, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	group, err := c._GetGroup(ctx, tx, req.GroupID)
	if err != nil {
		return nil, err
	}

	survivors := lo.Filter(req.Entries, func(e SyncItemEntry, _ int) bool { return !e.Delete })
	if err := CheckSyncEntries(group.Quantity, survivors); err != nil {
		return nil, err
	}

	existing, err := c.storage.ListPieceItems(ctx, tx, storage.ListPieceItemsRequest{GroupID: req.GroupID})
	if err != nil {
		return nil, err
	}
	existingByID := lo.KeyBy(existing.Records, func(item model.PieceItem) string { return item.ID })

	for _, entry := range req.Entries {
		if !entry.Delete {
			continue
		}
		if entry.ID == "" {
			continue
		}
		if _, ok := existingByID[entry.ID]; !ok {
			return nil, model.ErrPieceItemNotFound
		}
		if err := c.storage.DeletePieceItem(ctx, tx, entry.ID); err != nil {
			return nil, err
		}
	}

	applied := make([]model.PieceItem, 0, len(survivors))
	for _, entry := range survivors {
		lbs, kgs := DeriveItemWeight(entry.WeightLbs, entry.WeightKgs)
		item := model.PieceItem{
			ID:        entry.ID,
			GroupID:   req.GroupID,
			Index:     entry.Index,
			WeightLbs: lbs,
			WeightKgs: kgs,
			LengthCm:  entry.LengthCm,
			WidthCm:   entry.WidthCm,
			HeightCm:  entry.HeightCm,
			Notes:     entry.Notes,
		}
		if item.ID == "" {
			item.ID = util.NewUUID()
		} else if _, ok := existingByID[item.ID]; !ok {
			return nil, model.ErrPieceItemNotFound
		}
		if err := c.storage.StorePieceItem(ctx, tx, item); err != nil {
			return nil, err
		}
		applied = append(applied, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	sort.Slice(applied, func(i, j int) bool { return applied[i].Index < applied[j].Index })
	return applied, nil
}

func (c *_PieceController) _GetReceipt(ctx context.Context, tx storage.Tx, wrNumber string) (model.WarehouseReceipt, error) {
	receipts, err := c.storage.ListReceipts(ctx, tx, storage.ListReceiptsRequest{
		Limit:     1,
		WRNumbers: []string{wrNumber},
	})
	if err != nil {
		return model.WarehouseReceipt{}, err
	}
	if len(receipts.Records) == 0 {
		return model.WarehouseReceipt{}, model.ErrReceiptNotFound
	}
	return receipts.Records[0], nil
}

func (c *_PieceController) _GetGroup(ctx context.Context, tx storage.Tx, id string) (model.PieceGroup, error) {
	groups, err := c.storage.ListPieceGroups(ctx, tx, storage.ListPieceGroupsRequest{
		Limit: 1,
		IDs:   []string{id},
	})
	if err != nil {
		return model.PieceGroup{}, err
	}
	if len(groups.Records) == 0 {
		return model.PieceGroup{}, model.ErrPieceGroupNotFound
	}
	return groups.Records[0], nil
}

func (c *_PieceController) _GetItem(ctx context.Context, tx storage.Tx, id string) (model.PieceItem, error) {
	items, err := c.storage.ListPieceItems(ctx, tx, storage.ListPieceItemsRequest{
		Limit: 1,
		IDs:   []string{id},
	})
	if err != nil {
		return model.PieceItem{}, err
	}
	if len(items.Records) == 0 {
		return model.PieceItem{}, model.ErrPieceItemNotFound
	}
	return items.Records[0], nil
}
