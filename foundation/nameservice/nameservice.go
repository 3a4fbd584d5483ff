// Package nameservice reads the accounts folder and creates a name service
// lookup for the ledger's account addresses. Each account is a file whose
// name is the human name and whose contents hold the address.
package nameservice

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aielonchain/ledger/foundation/ledger/database"
)

// addrExtension marks the files holding an account address.
const addrExtension = ".addr"

// NameService maintains a map of accounts for name lookup.
type NameService struct {
	accounts map[database.AccountID]string
}

// New constructs a name service with accounts from the specified folder.
func New(root string) (*NameService, error) {
	ns := NameService{
		accounts: make(map[database.AccountID]string),
	}

	fn := func(fileName string, info fs.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walkdir failure: %w", err)
		}

		if path.Ext(fileName) != addrExtension {
			return nil
		}

		content, err := os.ReadFile(fileName)
		if err != nil {
			return err
		}

		accountID, err := database.ToAccountID(strings.TrimSpace(string(content)))
		if err != nil {
			return fmt.Errorf("account file %s: %w", fileName, err)
		}

		ns.accounts[accountID] = strings.TrimSuffix(path.Base(fileName), addrExtension)

		return nil
	}

	if err := filepath.Walk(root, fn); err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return &ns, nil
}

// Lookup returns the name for the specified account.
func (ns *NameService) Lookup(accountID database.AccountID) string {
	name, exists := ns.accounts[accountID]
	if !exists {
		return string(accountID)
	}
	return name
}

// Copy returns a copy of the map of names and accounts.
func (ns *NameService) Copy() map[database.AccountID]string {
	cpy := make(map[database.AccountID]string, len(ns.accounts))
	for accountID, name := range ns.accounts {
		cpy[accountID] = name
	}
	return cpy
}
