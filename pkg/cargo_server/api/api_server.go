package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/cargo"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/dispatch"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/middleware"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/notification"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/settings"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage/postgres"
	"github.com/amvarmar/cargotrack/pkg/util"
)

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
	OpsAddress   string                      `yaml:"ops_address"`
	SMTP         notification.SMTPConfig     `yaml:"smtp"`

	// Requests per second across all callers; zero disables limiting.
	RateLimit float64 `yaml:"rate_limit"`
}

type API struct {
	userMgr      auth.UserManager
	receiptCtrl  cargo.ReceiptController
	pieceCtrl    cargo.PieceController
	dispatchCtrl dispatch.DispatchController
	settingsCtrl settings.SettingsController

	httpServer *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	userMgr := auth.NewUserManager(storage)
	notifier := notification.NewSMTPSender(cfg.SMTP)
	receiptCtrl := cargo.NewReceiptController(storage, userMgr)
	pieceCtrl := cargo.NewPieceController(storage)
	dispatchCtrl := dispatch.NewDispatchController(storage, userMgr, notifier, cfg.OpsAddress)
	settingsCtrl := settings.NewSettingsController(storage)

	return NewAPIWithController(userMgr, receiptCtrl, pieceCtrl, dispatchCtrl, settingsCtrl, cfg)
}

func NewAPIWithController(
	userMgr auth.UserManager,
	receiptCtrl cargo.ReceiptController,
	pieceCtrl cargo.PieceController,
	dispatchCtrl dispatch.DispatchController,
	settingsCtrl settings.SettingsController,
	cfg APIConfig,
) (*API, error) {
	apiServer := &API{
		userMgr:      userMgr,
		receiptCtrl:  receiptCtrl,
		pieceCtrl:    pieceCtrl,
		dispatchCtrl: dispatchCtrl,
		settingsCtrl: settingsCtrl,
	}

	r := mux.NewRouter()
	r.Use(middleware.TimeTrace)
	if cfg.RateLimit > 0 {
		r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimit), int(cfg.RateLimit)))
	}

	r.HandleFunc("/login", apiServer.login).Methods(http.MethodPost)

	tokenAuth := middleware.NewUserTokenAuth(userMgr).Authenticate

	authedRouter := r.NewRoute().Subrouter()
	authedRouter.Use(tokenAuth)
	authedRouter.HandleFunc("/password", apiServer.changePassword).Methods(http.MethodPost)

	staffRouter := r.NewRoute().Subrouter()
	staffRouter.Use(tokenAuth, middleware.RequireRole(auth.RoleStaff))
	staffRouter.HandleFunc("/receipt", apiServer.listReceipts).Methods(http.MethodGet)
	staffRouter.HandleFunc("/receipt", apiServer.createReceipt).Methods(http.MethodPost)
	staffRouter.HandleFunc("/receipt/{wr_number}", apiServer.getReceipt).Methods(http.MethodGet)
	staffRouter.HandleFunc("/receipt/{wr_number}", apiServer.updateReceipt).Methods(http.MethodPost)
	staffRouter.HandleFunc("/receipt/{wr_number}", apiServer.deleteReceipt).Methods(http.MethodDelete)
	staffRouter.HandleFunc("/receipt/{wr_number}/piece_group", apiServer.addPieceGroup).Methods(http.MethodPost)
	staffRouter.HandleFunc("/piece_group/{id}", apiServer.updatePieceGroup).Methods(http.MethodPost)
	staffRouter.HandleFunc("/piece_group/{id}", apiServer.deletePieceGroup).Methods(http.MethodDelete)
	staffRouter.HandleFunc("/piece_group/{id}/reconcile", apiServer.reconcilePieceGroup).Methods(http.MethodPost)
	staffRouter.HandleFunc("/piece_group/{id}/items", apiServer.syncPieceItems).Methods(http.MethodPut)
	staffRouter.HandleFunc("/piece_group/{id}/item", apiServer.addPieceItem).Methods(http.MethodPost)
	staffRouter.HandleFunc("/piece_item/{id}", apiServer.updatePieceItem).Methods(http.MethodPost)
	staffRouter.HandleFunc("/piece_item/{id}", apiServer.deletePieceItem).Methods(http.MethodDelete)
	staffRouter.HandleFunc("/dispatch", apiServer.listDispatches).Methods(http.MethodGet)
	staffRouter.HandleFunc("/dispatch/{id}", apiServer.getDispatch).Methods(http.MethodGet)
	staffRouter.HandleFunc("/dispatch/{id}/bill_of_lading", apiServer.attachBOL).Methods(http.MethodPost)
	staffRouter.HandleFunc("/dispatch/{id}/complete", apiServer.completeDispatch).Methods(http.MethodPost)
	staffRouter.HandleFunc("/dispatch/{id}/reject", apiServer.rejectDispatch).Methods(http.MethodPost)
	staffRouter.HandleFunc("/user", apiServer.createUser).Methods(http.MethodPost)
	staffRouter.HandleFunc("/user", apiServer.listUsers).Methods(http.MethodGet)
	staffRouter.HandleFunc("/user/quick_client", apiServer.quickCreateClient).Methods(http.MethodPost)
	staffRouter.HandleFunc("/user/{id}", apiServer.updateUser).Methods(http.MethodPost)
	staffRouter.HandleFunc("/user/{id}/status", apiServer.setUserStatus).Methods(http.MethodPost)
	staffRouter.HandleFunc("/settings/columns", apiServer.getColumnPreference).Methods(http.MethodGet)
	staffRouter.HandleFunc("/settings/columns", apiServer.putColumnPreference).Methods(http.MethodPut)

	clientRouter := r.NewRoute().Subrouter()
	clientRouter.Use(tokenAuth, middleware.RequireRole(auth.RoleClient))
	clientRouter.HandleFunc("/client/receipt", apiServer.listClientReceipts).Methods(http.MethodGet)
	clientRouter.HandleFunc("/client/receipt/{wr_number}", apiServer.getClientReceipt).Methods(http.MethodGet)
	clientRouter.HandleFunc("/client/eligible_receipt", apiServer.listEligibleReceipts).Methods(http.MethodGet)
	clientRouter.HandleFunc("/client/dispatch", apiServer.createDispatch).Methods(http.MethodPost)
	clientRouter.HandleFunc("/client/dispatch", apiServer.listClientDispatches).Methods(http.MethodGet)
	clientRouter.HandleFunc("/client/dispatch/{id}", apiServer.getClientDispatch).Methods(http.MethodGet)
	clientRouter.HandleFunc("/client/dispatch/{id}/bill_of_lading", apiServer.getClientBOL).Methods(http.MethodGet)

	apiServer.httpServer = &http.Server{
		Addr:    cfg.LocalAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

func currentUser(r *http.Request) auth.User {
	user, _ := r.Context().Value(middleware.USER).(auth.User)
	return user
}

func renderError(w http.ResponseWriter, err error) {
	status := model.ErrorToHttpStatus(err)
	if status == http.StatusInternalServerError {
		http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func renderJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}
