package main

import (
	"os"

	"github.com/smallbiznis/feefeefee/cmd/feefeefee/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
