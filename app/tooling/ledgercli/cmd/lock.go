package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type sealRecord struct {
	Sealed   bool   `json:"sealed"`
	SealHash string `json:"seal_hash"`
	SealedAt uint64 `json:"sealed_at"`
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Permanently seal the chain against new blocks",
	Run:   lockRun,
}

func init() {
	rootCmd.AddCommand(lockCmd)
}

func lockRun(cmd *cobra.Command, args []string) {
	resp, err := http.Post(fmt.Sprintf("%s/v1/node/seal", privateURL), "application/json", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Fatalf("status %d: %s", resp.StatusCode, body)
	}

	decoder := json.NewDecoder(resp.Body)
	var seal sealRecord
	if err := decoder.Decode(&seal); err != nil {
		log.Fatal(err)
	}

	fmt.Println("chain sealed")
	fmt.Println("seal hash:", seal.SealHash)
}
