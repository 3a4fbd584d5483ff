// Package ledgergrp maintains the group of handlers for public ledger access.
package ledgergrp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aielonchain/ledger/business/web/errs"
	"github.com/aielonchain/ledger/foundation/events"
	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/mempool"
	"github.com/aielonchain/ledger/foundation/ledger/state"
	"github.com/aielonchain/ledger/foundation/nameservice"
	"github.com/aielonchain/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
	WS    websocket.Upgrader
	Evts  *events.Events
}

// SubmitTransaction adds a new transaction to the mempool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var userTx newTx
	if err := web.Decode(r, &userTx); err != nil {
		return err
	}

	h.Log.Infow("submit tran", "traceid", v.TraceID, "from", userTx.From, "to", userTx.To, "value", userTx.Value)

	txID, err := h.State.SubmitTransaction(database.AccountID(userTx.From), database.AccountID(userTx.To), userTx.Value)
	if err != nil {
		var ve *mempool.ValidationError
		if errors.As(err, &ve) {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		return err
	}

	resp := struct {
		Status string `json:"status"`
		TxID   string `json:"tx_id"`
	}{
		Status: "transaction added to mempool",
		TxID:   txID,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	pool := h.State.RetrieveMempool()

	trans := make([]tx, len(pool))
	for i, tran := range pool {
		trans[i] = toTxModel(tran, h.NS)
	}

	return web.Respond(ctx, w, trans, http.StatusOK)
}

// History returns every mined transaction touching the specified account,
// in chain order.
func (h Handlers) History(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID, err := database.ToAccountID(web.Param(r, "account"))
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	history, err := h.State.HistoryOf(accountID)
	if err != nil {
		return err
	}

	trans := make([]tx, len(history))
	for i, tran := range history {
		trans[i] = toTxModel(tran, h.NS)
	}

	return web.Respond(ctx, w, trans, http.StatusOK)
}

// Balances returns the current balances for all accounts or one account.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := web.Param(r, "account")

	var accounts map[database.AccountID]database.Account
	switch account {
	case "":
		accounts = h.State.Accounts()

	default:
		accountID, err := database.ToAccountID(account)
		if err != nil {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		accounts = map[database.AccountID]database.Account{
			accountID: {Balance: h.State.BalanceOf(accountID)},
		}
	}

	bals := make([]balance, 0, len(accounts))
	for accountID, info := range accounts {
		bals = append(bals, balance{
			Account: accountID,
			Name:    h.NS.Lookup(accountID),
			Balance: info.Balance,
		})
	}

	resp := balances{
		LatestBlock: h.State.RetrieveLatestBlock().Hash(),
		Uncommitted: h.State.QueryMempoolLength(),
		Balances:    bals,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// BlocksByAccount returns all the blocks and their details.
func (h Handlers) BlocksByAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID := database.AccountID(web.Param(r, "account"))

	dbBlocks, err := h.State.QueryBlocksByAccount(accountID)
	if err != nil {
		return err
	}
	if len(dbBlocks) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	blocks := make([]block, len(dbBlocks))
	for j, blk := range dbBlocks {
		trans := make([]tx, len(blk.Trans))
		for i, tran := range blk.Trans {
			trans[i] = toTxModel(tran, h.NS)
		}

		blocks[j] = block{
			Number:        blk.Header.Number,
			PrevBlockHash: blk.Header.PrevBlockHash,
			TimeStamp:     blk.Header.TimeStamp,
			Beneficiary:   blk.Header.BeneficiaryID,
			Difficulty:    blk.Header.Difficulty,
			Nonce:         blk.Header.Nonce,
			Hash:          blk.Hash(),
			Transactions:  trans,
		}
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// Status returns the chain height, validity and seal condition.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.Status(), http.StatusOK)
}

// SignalMining signals the worker to start a mining operation.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.State.Worker != nil {
		h.State.Worker.SignalStartMining()
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signaled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
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

// =============================================================================

// toTxModel resolves account names for a transaction.
func toTxModel(tran database.Tx, ns *nameservice.NameService) tx {
	return tx{
		ID:        tran.ID,
		From:      tran.FromID,
		FromName:  ns.Lookup(tran.FromID),
		To:        tran.ToID,
		ToName:    ns.Lookup(tran.ToID),
		Value:     tran.Value,
		TimeStamp: tran.TimeStamp,
	}
}
