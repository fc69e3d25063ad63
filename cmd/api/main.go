package main

import (
	"log"
	"os"

	"github.com/ethiocal/core/cmd/api/commands"
)

// @title Ethiopian Calendar API
// @version 1.0
// @description Converts Gregorian dates to the Ethiopian calendar

// @license.name MIT

// @BasePath /

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
