package database

// SealData represents the terminal lock applied to the chain. Once written
// with Sealed set, it never changes again.
type SealData struct {
	Sealed   bool   `json:"sealed"`
	SealHash string `json:"seal_hash,omitempty"`
	SealedAt uint64 `json:"sealed_at,omitempty"`
}
