package main

import (
	"os"

	"github.com/yungbote/recipegraph-backend/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
