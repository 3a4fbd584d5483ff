package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type chainStatus struct {
	BlockHeight uint64 `json:"block_height"`
	LatestHash  string `json:"latest_hash"`
	IsValid     bool   `json:"is_valid"`
	IsSealed    bool   `json:"is_sealed"`
	SealHash    string `json:"seal_hash,omitempty"`
	Uncommitted int    `json:"uncommitted"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the chain status",
	Run:   statusRun,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/status", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var status chainStatus
	if err := decoder.Decode(&status); err != nil {
		log.Fatal(err)
	}

	fmt.Println("height:     ", status.BlockHeight)
	fmt.Println("latest hash:", status.LatestHash)
	fmt.Println("valid:      ", status.IsValid)
	fmt.Println("sealed:     ", status.IsSealed)
	if status.IsSealed {
		fmt.Println("seal hash:  ", status.SealHash)
	}
	fmt.Println("uncommitted:", status.Uncommitted)
}
