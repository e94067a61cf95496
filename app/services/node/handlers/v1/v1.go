// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/chainlabs/chainsim/app/services/node/handlers/v1/public"
	"github.com/chainlabs/chainsim/foundation/blockchain/state"
	"github.com/chainlabs/chainsim/foundation/events"
	"github.com/chainlabs/chainsim/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)

	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/accounts/list", pbl.Accounts)
	app.Handle(http.MethodGet, version, "/accounts/list/:account", pbl.Accounts)
	app.Handle(http.MethodGet, version, "/blocks/list", pbl.Blocks)
	app.Handle(http.MethodGet, version, "/blocks/latest", pbl.LatestBlock)
	app.Handle(http.MethodGet, version, "/chain/validate", pbl.ValidateChain)

	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", pbl.Mempool)
	app.Handle(http.MethodPost, version, "/tx/submit", pbl.SubmitTransaction)
	app.Handle(http.MethodGet, version, "/tx/list/:account", pbl.TransactionHistory)
	app.Handle(http.MethodGet, version, "/tx/find/:id", pbl.FindTransaction)

	app.Handle(http.MethodGet, version, "/mining/signal/:account", pbl.SignalMining)

	app.Handle(http.MethodPost, version, "/contract/create", pbl.CreateContract)
	app.Handle(http.MethodPost, version, "/contract/execute", pbl.ExecuteContract)
	app.Handle(http.MethodPost, version, "/data/store", pbl.StoreData)

	app.Handle(http.MethodGet, version, "/validators/list", pbl.Validators)
	app.Handle(http.MethodPost, version, "/validators/register", pbl.RegisterValidator)
	app.Handle(http.MethodPost, version, "/validators/unregister", pbl.UnregisterValidator)
}
