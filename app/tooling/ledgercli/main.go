package main

import (
	"github.com/aielonchain/ledger/app/tooling/ledgercli/cmd"
)

func main() {
	cmd.Execute()
}
