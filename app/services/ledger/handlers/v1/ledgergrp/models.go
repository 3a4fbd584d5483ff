package ledgergrp

import "github.com/aielonchain/ledger/foundation/ledger/database"

// newTx is what a client submits to record a transfer.
type newTx struct {
	From  string `json:"from" validate:"required"`
	To    string `json:"to" validate:"required"`
	Value uint   `json:"value" validate:"required,gt=0"`
}

// tx represents a transaction with resolved account names.
type tx struct {
	ID        string             `json:"id"`
	From      database.AccountID `json:"from"`
	FromName  string             `json:"from_name"`
	To        database.AccountID `json:"to"`
	ToName    string             `json:"to_name"`
	Value     uint               `json:"value"`
	TimeStamp uint64             `json:"timestamp"`
}

// block represents a block with resolved transactions.
type block struct {
	Number        uint64             `json:"number"`
	PrevBlockHash string             `json:"prev_block_hash"`
	TimeStamp     uint64             `json:"timestamp"`
	Beneficiary   database.AccountID `json:"beneficiary"`
	Difficulty    uint               `json:"difficulty"`
	Nonce         uint64             `json:"nonce"`
	Hash          string             `json:"hash"`
	Transactions  []tx               `json:"transactions"`
}

// balance represents an account and its balance.
type balance struct {
	Account database.AccountID `json:"account"`
	Name    string             `json:"name"`
	Balance int                `json:"balance"`
}

// balances is the payload for the balance listing endpoint.
type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}
