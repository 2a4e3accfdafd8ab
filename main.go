package main

import (
	"os"

	"github.com/deffiedeff2/event-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
