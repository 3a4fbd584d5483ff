package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aielonchain/ledger/foundation/ledger/digest"
	"github.com/aielonchain/ledger/foundation/ledger/genesis"
)

// BlockHeader represents common information required for each block.
type BlockHeader struct {
	Number        uint64    `json:"number"`          // Block number in the chain.
	PrevBlockHash string    `json:"prev_block_hash"` // Hash of the previous block in the chain.
	TimeStamp     uint64    `json:"timestamp"`       // Time the block was mined.
	BeneficiaryID AccountID `json:"beneficiary"`     // The account receiving the mining reward.
	Difficulty    uint      `json:"difficulty"`      // Number of leading 0's needed to solve the hash.
	Nonce         uint64    `json:"nonce"`           // Value identified to solve the hash solution.
}

// Block represents a group of transactions batched together.
type Block struct {
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"trans"`
}

// GenesisBlock constructs the implicit first block of the chain. Its hash
// is the zero hash sentinel and it carries no transactions.
func GenesisBlock(gen genesis.Genesis) Block {
	return Block{
		Header: BlockHeader{
			Number:        0,
			PrevBlockHash: digest.ZeroHash,
			TimeStamp:     uint64(gen.Date.UTC().Unix()),
			Difficulty:    gen.Difficulty,
		},
	}
}

// POW constructs a new Block and performs the work to find a nonce that
// solves the cryptographic POW puzzle. If a mining reward is configured, the
// reward transaction is added to the set before any hashing takes place so
// the block hash covers it.
func POW(ctx context.Context, beneficiaryID AccountID, gen genesis.Genesis, prevBlock Block, trans []Tx, evHandler func(v string, args ...any)) (Block, error) {
	if gen.MiningReward > 0 {
		reward := NewTx(RewardAccountID, beneficiaryID, gen.MiningReward)
		trans = append(trans, reward)
	}

	nb := Block{
		Header: BlockHeader{
			Number:        prevBlock.Header.Number + 1,
			PrevBlockHash: prevBlock.Hash(),
			TimeStamp:     uint64(time.Now().UTC().Unix()),
			BeneficiaryID: beneficiaryID,
			Difficulty:    gen.Difficulty,
			Nonce:         0, // Will be identified by the POW algorithm.
		},
		Trans: trans,
	}

	if err := nb.performPOW(ctx, evHandler); err != nil {
		return Block{}, err
	}

	return nb, nil
}

// performPOW does the work of mining to find a valid hash for a specified
// block. Pointer semantics are being used since a nonce is being discovered.
func (b *Block) performPOW(ctx context.Context, ev func(v string, args ...any)) error {
	ev("database: performPOW: MINING: started: block[%d]", b.Header.Number)
	defer ev("database: performPOW: MINING: completed: block[%d]", b.Header.Number)

	for _, tx := range b.Trans {
		ev("database: performPOW: MINING: tx[%s]", tx)
	}

	// The nonce starts at zero and is incremented until the puzzle is
	// solved. The first satisfying nonce wins.
	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: performPOW: MINING: attempts[%d]", attempts)
		}

		if ctx.Err() != nil {
			ev("database: performPOW: MINING: CANCELLED")
			return ctx.Err()
		}

		hash := b.Hash()
		if !isHashSolved(b.Header.Difficulty, hash) {
			b.Header.Nonce++
			continue
		}

		ev("database: performPOW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]", b.Header.PrevBlockHash, hash)
		ev("database: performPOW: MINING: attempts[%d]", attempts)

		return nil
	}
}

// Hash returns the unique hash for the Block. The genesis block hashes to
// the zero hash sentinel.
func (b Block) Hash() string {
	if b.Header.Number == 0 {
		return digest.ZeroHash
	}

	return digest.Hash(b)
}

// ValidateBlock takes a block and validates it to be the next block in
// the chain after the specified previous block.
func (b Block) ValidateBlock(prevBlock Block, evHandler func(v string, args ...any)) error {
	evHandler("database: ValidateBlock: blk[%d]: check: block hash has been solved", b.Header.Number)

	hash := b.Hash()
	if !isHashSolved(b.Header.Difficulty, hash) {
		return NewChainIntegrityError(b.Header.Number, fmt.Errorf("%s invalid block hash", hash))
	}

	evHandler("database: ValidateBlock: blk[%d]: check: block number is the next number", b.Header.Number)

	nextNumber := prevBlock.Header.Number + 1
	if b.Header.Number != nextNumber {
		return NewChainIntegrityError(b.Header.Number, fmt.Errorf("this block is not the next number, got %d, exp %d", b.Header.Number, nextNumber))
	}

	evHandler("database: ValidateBlock: blk[%d]: check: parent hash does match parent block", b.Header.Number)

	if b.Header.PrevBlockHash != prevBlock.Hash() {
		return NewChainIntegrityError(b.Header.Number, fmt.Errorf("parent block hash doesn't match our known parent, got %s, exp %s", b.Header.PrevBlockHash, prevBlock.Hash()))
	}

	return nil
}

// isHashSolved checks the hash to make sure it complies with
// the POW rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "0x00000000000000000"

	if len(hash) != 66 {
		return false
	}

	return hash[2:2+difficulty] == match[2:2+difficulty]
}

// =============================================================================

// BlockData represents what can be serialized to disk and over the network.
type BlockData struct {
	Hash   string      `json:"hash"`
	Header BlockHeader `json:"block"`
	Trans  []Tx        `json:"trans"`
}

// NewBlockData constructs block data from a block.
func NewBlockData(block Block) BlockData {
	blockData := BlockData{
		Hash:   block.Hash(),
		Header: block.Header,
		Trans:  block.Trans,
	}

	return blockData
}

// ToBlock converts a storage block into a database block and re-checks the
// stored hash against the block's contents. A mismatch means the stored
// record was tampered with.
func ToBlock(blockData BlockData) (Block, error) {
	nb := Block{
		Header: blockData.Header,
		Trans:  blockData.Trans,
	}

	if hash := nb.Hash(); hash != blockData.Hash {
		return Block{}, NewChainIntegrityError(nb.Header.Number, errors.New("stored block hash doesn't match block contents"))
	}

	return nb, nil
}
