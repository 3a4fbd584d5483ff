package database

import "fmt"

// ChainIntegrityError is returned when a block fails validation during an
// append or a full chain walk. It reports the first block that broke the
// chain's hash or linkage invariants.
type ChainIntegrityError struct {
	Number uint64
	Err    error
}

// NewChainIntegrityError wraps the reason a block failed validation.
func NewChainIntegrityError(number uint64, err error) error {
	return &ChainIntegrityError{
		Number: number,
		Err:    err,
	}
}

// Error implements the error interface.
func (cie *ChainIntegrityError) Error() string {
	return fmt.Sprintf("chain integrity violation at block %d: %s", cie.Number, cie.Err)
}

// Unwrap provides the underlying validation failure.
func (cie *ChainIntegrityError) Unwrap() error {
	return cie.Err
}
