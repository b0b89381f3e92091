// main is the entry point for the curricula CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dietmarja/curricula/cmd"
	"github.com/dietmarja/curricula/internal/catstore"
)

func main() {
	cmd.SetStoreManager(catstore.Manager)
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
