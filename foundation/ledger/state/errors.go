package state

import "errors"

// ErrChainSealed is returned when a mutation is attempted after the chain
// has been sealed.
var ErrChainSealed = errors.New("chain is sealed, no further blocks can be appended")

// ErrAlreadySealed is returned from Seal when the chain was already sealed.
var ErrAlreadySealed = errors.New("chain is already sealed")

// ErrSealCompromised is returned when the recorded seal digest no longer
// matches the chain it is supposed to cover.
var ErrSealCompromised = errors.New("seal digest does not match the chain")
