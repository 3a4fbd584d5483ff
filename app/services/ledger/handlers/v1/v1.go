// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/aielonchain/ledger/app/services/ledger/handlers/v1/ledgergrp"
	"github.com/aielonchain/ledger/app/services/ledger/handlers/v1/privgrp"
	"github.com/aielonchain/ledger/foundation/events"
	"github.com/aielonchain/ledger/foundation/ledger/state"
	"github.com/aielonchain/ledger/foundation/nameservice"
	"github.com/aielonchain/ledger/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		NS:    cfg.NS,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodPost, version, "/tx/submit", lgh.SubmitTransaction)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", lgh.Mempool)
	app.Handle(http.MethodGet, version, "/tx/history/:account", lgh.History)
	app.Handle(http.MethodGet, version, "/balances/list", lgh.Balances)
	app.Handle(http.MethodGet, version, "/balances/list/:account", lgh.Balances)
	app.Handle(http.MethodGet, version, "/blocks/list", lgh.BlocksByAccount)
	app.Handle(http.MethodGet, version, "/blocks/list/:account", lgh.BlocksByAccount)
	app.Handle(http.MethodGet, version, "/status", lgh.Status)
	app.Handle(http.MethodGet, version, "/mining/signal", lgh.SignalMining)
	app.Handle(http.MethodGet, version, "/events", lgh.Events)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	pvh := privgrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodGet, version, "/node/status", pvh.Status)
	app.Handle(http.MethodPost, version, "/node/mine", pvh.Mine)
	app.Handle(http.MethodPost, version, "/node/seal", pvh.Seal)
}
