// Command mcp exposes the job scorer to MCP clients over stdio.
package main

import (
	"fmt"
	"os"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/domain/matching"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	_ = godotenv.Load()

	w, err := config.LoadWeights(strings.TrimSpace(os.Getenv("MATCH_WEIGHTS_FILE")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Weights error: %v\n", err)
		os.Exit(1)
	}
	scorer, err := matching.NewScorer(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Weights error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer("jobmatch", "1.0.0")
	registerTools(s, scorer)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
