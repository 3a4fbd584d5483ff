package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type minedBlock struct {
	Status string `json:"status"`
	Block  struct {
		Hash  string `json:"hash"`
		Block struct {
			Number uint64 `json:"number"`
			Nonce  uint64 `json:"nonce"`
		} `json:"block"`
	} `json:"block"`
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the next block synchronously",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) {
	resp, err := http.Post(fmt.Sprintf("%s/v1/node/mine", privateURL), "application/json", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Fatalf("status %d: %s", resp.StatusCode, body)
	}

	decoder := json.NewDecoder(resp.Body)
	var mined minedBlock
	if err := decoder.Decode(&mined); err != nil {
		log.Fatal(err)
	}

	fmt.Println("block:", mined.Block.Block.Number)
	fmt.Println("nonce:", mined.Block.Block.Nonce)
	fmt.Println("hash: ", mined.Block.Hash)
}
