package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "toolserver",
		Usage: "Serve calendar and task functions to an agent over stdin/stdout.",
		Commands: []*cli.Command{
			calendarCommand(),
			tasksCommand(),
			mcpCommand(),
			gcalAuthCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "toolserver: %v\n", err)
		os.Exit(1)
	}
}
