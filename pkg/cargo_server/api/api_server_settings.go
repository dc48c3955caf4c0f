package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/settings"
)

func (a *API) getColumnPreference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	result, err := a.settingsCtrl.GetColumnPreference(ctx, user.ID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) putColumnPreference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req settings.PutColumnPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.UserID = user.ID
	result, err := a.settingsCtrl.PutColumnPreference(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}
