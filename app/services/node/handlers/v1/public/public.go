// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"net/http"
	"time"

	"github.com/chainlabs/chainsim/business/web/errs"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/blockchain/state"
	"github.com/chainlabs/chainsim/foundation/events"
	"github.com/chainlabs/chainsim/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public chain endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Accounts returns the current wallet records, all of them or one by id.
func (h Handlers) Accounts(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID := web.Param(r, "account")

	var accounts map[string]database.Account
	switch accountID {
	case "":
		accounts = h.State.CopyAccounts()

	default:
		account, err := h.State.QueryWallet(accountID)
		if err != nil {
			return errs.NewTrusted(err, http.StatusNotFound)
		}
		accounts = map[string]database.Account{accountID: account}
	}

	resp := struct {
		LatestBlock string             `json:"latest_block"`
		Uncommitted int                `json:"uncommitted"`
		Accounts    []database.Account `json:"accounts"`
	}{
		LatestBlock: h.State.RetrieveLatestBlock().Hash,
		Uncommitted: len(h.State.RetrieveMempool()),
	}

	for _, account := range accounts {
		resp.Accounts = append(resp.Accounts, account)
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Blocks returns the full chain in order from genesis.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blocks := h.State.RetrieveBlocks()
	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// LatestBlock returns the current head of the chain.
func (h Handlers) LatestBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	b := h.State.RetrieveLatestBlock()
	return web.Respond(ctx, w, b, http.StatusOK)
}

// ValidateChain audits the chain and reports the first structural failure.
func (h Handlers) ValidateChain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.State.ValidateChain(); err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
		Blocks int    `json:"blocks"`
	}{
		Status: "chain valid",
		Blocks: len(h.State.RetrieveBlocks()),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs := h.State.RetrieveMempool()
	return web.Respond(ctx, w, txs, http.StatusOK)
}

// SubmitTransaction queues a new transfer in the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app submitTx
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	tx := database.NewTx(app.From, app.To, app.Value)

	h.Log.Infow("add tran", "traceid", v.TraceID, "from", app.From, "to", app.To, "value", app.Value, "fee", tx.Fee)
	if err := h.State.SubmitTransaction(tx); err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
		TxID   string `json:"tx_id"`
	}{
		Status: "transaction added to mempool",
		TxID:   tx.ID,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// TransactionHistory returns the confirmed transactions for an account.
func (h Handlers) TransactionHistory(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID := web.Param(r, "account")

	txs := h.State.QueryTransactionHistory(accountID)
	if len(txs) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	return web.Respond(ctx, w, txs, http.StatusOK)
}

// FindTransaction locates a confirmed transaction by id.
func (h Handlers) FindTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txID := web.Param(r, "id")

	tx, err := h.State.FindTransaction(txID)
	if err != nil {
		return errs.NewTrusted(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, tx, http.StatusOK)
}

// SignalMining drains the pending pool into a new block produced by the
// specified account.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	producerID := web.Param(r, "account")

	b, err := h.State.MinePendingTransactions(ctx, producerID)
	if err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
		Number uint64 `json:"number"`
		Hash   string `json:"hash"`
		Trans  int    `json:"trans"`
	}{
		Status: "block added to chain",
		Number: b.Header.Number,
		Hash:   b.Hash,
		Trans:  len(b.Trans),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// CreateContract deploys a smart contract as a pending transaction.
func (h Handlers) CreateContract(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app newContract
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	contractID, err := h.State.CreateSmartContract(app.Creator, app.Code, app.Value)
	if err != nil {
		return err
	}

	resp := struct {
		Status     string `json:"status"`
		ContractID string `json:"contract_id"`
	}{
		Status:     "contract added to mempool",
		ContractID: contractID,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// ExecuteContract simulates a call against a confirmed smart contract.
func (h Handlers) ExecuteContract(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app executeContract
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	args := make([]any, len(app.Args))
	for i, arg := range app.Args {
		args[i] = arg
	}

	result, err := h.State.ExecuteSmartContract(app.ContractID, app.Function, args...)
	if err != nil {
		return err
	}

	resp := struct {
		Result string `json:"result"`
	}{
		Result: result,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// StoreData writes a raw payload on the chain as a pending transaction.
func (h Handlers) StoreData(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app storeData
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	dataID, err := h.State.StoreData(app.Sender, app.Data)
	if err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
		DataID string `json:"data_id"`
	}{
		Status: "data added to mempool",
		DataID: dataID,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Validators returns the registered validator set and their stakes.
func (h Handlers) Validators(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	validators := h.State.RetrieveValidators()
	return web.Respond(ctx, w, validators, http.StatusOK)
}

// RegisterValidator locks stake for an account so it can produce blocks
// under the stake based strategies.
func (h Handlers) RegisterValidator(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app stakeValidator
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.State.RegisterValidator(app.Account, app.Stake); err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "validator registered",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// UnregisterValidator removes an account from the validator set and
// returns its stake.
func (h Handlers) UnregisterValidator(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app stakeValidator
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.State.UnregisterValidator(app.Account); err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "validator unregistered",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
