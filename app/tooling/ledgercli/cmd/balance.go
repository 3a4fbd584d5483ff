package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var account string

type balance struct {
	Account string `json:"account"`
	Name    string `json:"name,omitempty"`
	Balance int    `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print account balances",
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().StringVarP(&account, "account", "a", "", "Limit the query to this account.")
}

func balanceRun(cmd *cobra.Command, args []string) {
	endpoint := fmt.Sprintf("%s/v1/balances/list", url)
	if account != "" {
		endpoint = fmt.Sprintf("%s/v1/balances/list/%s", url, account)
	}

	resp, err := http.Get(endpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var balances balances
	if err := decoder.Decode(&balances); err != nil {
		log.Fatal(err)
	}

	for _, bal := range balances.Balances {
		fmt.Printf("%s: %d\n", bal.Account, bal.Balance)
	}
}
