// Package privgrp maintains the group of handlers for node administration.
package privgrp

import (
	"context"
	"errors"
	"net/http"

	"github.com/aielonchain/ledger/business/web/errs"
	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/state"
	"github.com/aielonchain/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node administration endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Status returns the node's view of the chain.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.Status(), http.StatusOK)
}

// Mine performs a synchronous mining operation and returns the mined
// block. An empty mempool produces a reward-only block.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.Log.Infow("mine requested", "traceid", v.TraceID)

	block, err := h.State.MineNewBlock(ctx)
	if err != nil {
		if errors.Is(err, state.ErrChainSealed) {
			return errs.NewTrusted(err, http.StatusConflict)
		}
		return err
	}

	resp := struct {
		Status string             `json:"status"`
		Block  database.BlockData `json:"block"`
	}{
		Status: "block mined",
		Block:  database.NewBlockData(block),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Seal performs the terminal lock of the chain. Sealing twice fails with
// a conflict, a chain that no longer validates fails with the integrity
// violation surfaced.
func (h Handlers) Seal(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.Log.Infow("seal requested", "traceid", v.TraceID)

	seal, err := h.State.Seal()
	if err != nil {
		switch {
		case errors.Is(err, state.ErrAlreadySealed):
			return errs.NewTrusted(err, http.StatusConflict)
		default:
			var cie *database.ChainIntegrityError
			if errors.As(err, &cie) {
				return errs.NewTrusted(err, http.StatusInternalServerError)
			}
			return err
		}
	}

	return web.Respond(ctx, w, seal, http.StatusOK)
}
