package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/cargo"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

const defaultPageSize = 20

func parsePagination(r *http.Request) (offset int, limit int, err error) {
	limit = defaultPageSize
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, parseErr := strconv.ParseInt(offsetStr, 10, 32)
		if parseErr != nil || parsed < 0 {
			return 0, 0, model.ErrInvalidParameter
		}
		offset = int(parsed)
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, parseErr := strconv.ParseInt(limitStr, 10, 32)
		if parseErr != nil || parsed <= 0 {
			return 0, 0, model.ErrInvalidParameter
		}
		limit = int(parsed)
	}
	return offset, limit, nil
}

func (a *API) createReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req cargo.CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Requester = user.ID
	result, err := a.receiptCtrl.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

func (a *API) updateReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	wrNumber := mux.Vars(r)["wr_number"]

	var req cargo.UpdateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Requester = user.ID
	req.WRNumber = wrNumber
	result, err := a.receiptCtrl.Update(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) getReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wrNumber := mux.Vars(r)["wr_number"]

	result, err := a.receiptCtrl.Get(ctx, wrNumber)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) deleteReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wrNumber := mux.Vars(r)["wr_number"]

	if err := a.receiptCtrl.Delete(ctx, wrNumber); err != nil {
		renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listReceipts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, "offset/limit is invalid", http.StatusBadRequest)
		return
	}

	req := storage.ListReceiptsRequest{
		Offset:   offset,
		Limit:    limit,
		ClientID: r.URL.Query().Get("client_id"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Statuses = []model.ReceiptStatus{model.ReceiptStatus(status)}
	}

	result, err := a.receiptCtrl.List(ctx, req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) listClientReceipts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	offset, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, "offset/limit is invalid", http.StatusBadRequest)
		return
	}

	result, err := a.receiptCtrl.List(ctx, storage.ListReceiptsRequest{
		Offset:   offset,
		Limit:    limit,
		ClientID: user.ID,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	views := make([]model.ClientReceiptView, 0, len(result.Records))
	for _, receipt := range result.Records {
		view, err := a.receiptCtrl.GetForClient(ctx, user.ID, receipt.WRNumber)
		if err != nil {
			renderError(w, err)
			return
		}
		views = append(views, view)
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"total":   result.Total,
		"records": views,
	})
}

func (a *API) getClientReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	wrNumber := mux.Vars(r)["wr_number"]

	result, err := a.receiptCtrl.GetForClient(ctx, user.ID, wrNumber)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) addPieceGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wrNumber := mux.Vars(r)["wr_number"]

	var req cargo.AddGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.WRNumber = wrNumber
	result, err := a.pieceCtrl.AddGroup(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

func (a *API) updatePieceGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req cargo.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.ID = id
	result, err := a.pieceCtrl.UpdateGroup(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) deletePieceGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := a.pieceCtrl.DeleteGroup(ctx, id); err != nil {
		renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) reconcilePieceGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	result, err := a.pieceCtrl.Reconcile(ctx, id)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) syncPieceItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req cargo.SyncItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.GroupID = id
	result, err := a.pieceCtrl.SyncItems(ctx, req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) addPieceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req cargo.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.GroupID = id
	result, err := a.pieceCtrl.AddItem(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

func (a *API) updatePieceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req cargo.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.ID = id
	result, err := a.pieceCtrl.UpdateItem(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) deletePieceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := a.pieceCtrl.DeleteItem(ctx, id); err != nil {
		renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
