package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type historyTx struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	FromName  string `json:"from_name"`
	To        string `json:"to"`
	ToName    string `json:"to_name"`
	Value     uint   `json:"value"`
	TimeStamp uint64 `json:"timestamp"`
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the transaction history for an account",
	Run:   historyRun,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&account, "account", "a", "", "Account to query.")
	historyCmd.MarkFlagRequired("account")
}

func historyRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/tx/history/%s", url, account))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var history []historyTx
	if err := decoder.Decode(&history); err != nil {
		log.Fatal(err)
	}

	for _, tx := range history {
		fmt.Printf("%s  %s -> %s  %d\n", tx.ID[:8], tx.From, tx.To, tx.Value)
	}
}
