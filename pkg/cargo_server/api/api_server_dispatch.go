package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/dispatch"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

func (a *API) listEligibleReceipts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	result, err := a.dispatchCtrl.ListEligibleReceipts(ctx, user.ID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) createDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req dispatch.CreateDispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Requester = user.ID
	req.ClientID = user.ID
	result, err := a.dispatchCtrl.CreateDispatch(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

func (a *API) listDispatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, "offset/limit is invalid", http.StatusBadRequest)
		return
	}

	req := storage.ListDispatchesRequest{
		Offset:   offset,
		Limit:    limit,
		ClientID: r.URL.Query().Get("client_id"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Statuses = []model.DispatchStatus{model.DispatchStatus(status)}
	}
	if wrNumber := r.URL.Query().Get("wr_number"); wrNumber != "" {
		req.WRNumbers = []string{wrNumber}
	}

	result, err := a.dispatchCtrl.List(ctx, req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) listClientDispatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	offset, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, "offset/limit is invalid", http.StatusBadRequest)
		return
	}

	result, err := a.dispatchCtrl.ListForClient(ctx, dispatch.ListClientDispatchesRequest{
		Offset:   offset,
		Limit:    limit,
		ClientID: user.ID,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) getDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	result, err := a.dispatchCtrl.Get(ctx, id)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) attachBOL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	id := mux.Vars(r)["id"]

	var body struct {
		Document *model.File `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.dispatchCtrl.AttachBOLAndApprove(ctx, time.Now().Unix(), dispatch.AttachBOLRequest{
		Requester:  user.ID,
		DispatchID: id,
		Document:   body.Document,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) completeDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	id := mux.Vars(r)["id"]

	result, err := a.dispatchCtrl.SendAndComplete(ctx, time.Now().Unix(), dispatch.SendAndCompleteRequest{
		Requester:  user.ID,
		DispatchID: id,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) rejectDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	id := mux.Vars(r)["id"]

	result, err := a.dispatchCtrl.Reject(ctx, time.Now().Unix(), dispatch.RejectDispatchRequest{
		Requester:  user.ID,
		DispatchID: id,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) getClientDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	id := mux.Vars(r)["id"]

	result, err := a.dispatchCtrl.GetForClient(ctx, user.ID, id)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) getClientBOL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	id := mux.Vars(r)["id"]

	file, err := a.dispatchCtrl.GetClientBOL(ctx, user.ID, id)
	if err != nil {
		renderError(w, err)
		return
	}
	if file == nil {
		renderError(w, model.ErrMissingBillOfLading)
		return
	}

	contentType := file.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		return
	}
}
