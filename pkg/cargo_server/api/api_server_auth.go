package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req auth.AuthenticateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := a.userMgr.Authenticate(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, token)
}

func (a *API) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.UserID = user.ID
	result, err := a.userMgr.ChangePassword(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req auth.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.RequestUser = user.ID
	result, err := a.userMgr.CreateUser(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

func (a *API) quickCreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req auth.QuickCreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.RequestUser = user.ID
	result, err := a.userMgr.QuickCreateClient(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	userID := mux.Vars(r)["id"]

	var req auth.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.RequestUser = user.ID
	req.UserID = userID
	result, err := a.userMgr.UpdateUser(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) setUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)
	userID := mux.Vars(r)["id"]

	var body struct {
		Status auth.UserStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := auth.ActivateUserRequest{
		RequestUser: user.ID,
		UserID:      userID,
	}

	var result auth.User
	var err error
	switch body.Status {
	case auth.UserStatusActive:
		result, err = a.userMgr.ActivateUser(ctx, time.Now().Unix(), req)
	case auth.UserStatusInactive:
		result, err = a.userMgr.DeactivateUser(ctx, time.Now().Unix(), req)
	default:
		renderError(w, fmt.Errorf("status must be active or inactive%w", model.ErrInvalidParameter))
		return
	}
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := auth.ListUserRequest{
		Offset: offset,
		Limit:  limit,
	}
	if role := r.URL.Query().Get("role"); role != "" {
		req.Roles = []auth.Role{auth.Role(role)}
	}

	result, err := a.userMgr.ListUsers(ctx, req)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}
