package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"assistant-tools/config"
	"assistant-tools/internal/app"
	"assistant-tools/internal/mcpserver"
	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/gcalendar"
	"assistant-tools/pkg/log"

	"github.com/urfave/cli/v2"
)

func setup(c *cli.Context) (log.Logger, app.Registries, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, app.Registries{}, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg)

	regs, err := app.NewRegistries(c.Context, logger, cfg)
	if err != nil {
		return nil, app.Registries{}, err
	}
	return logger, regs, nil
}

func calendarCommand() *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Serve calendar functions as line-delimited JSON on stdin/stdout.",
		Action: func(c *cli.Context) error {
			logger, regs, err := setup(c)
			if err != nil {
				return err
			}
			return rpc.NewServer(logger, regs.Calendar, os.Stdin, os.Stdout).Serve(c.Context)
		},
	}
}

func tasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Serve task functions as line-delimited JSON on stdin/stdout.",
		Action: func(c *cli.Context) error {
			logger, regs, err := setup(c)
			if err != nil {
				return err
			}
			return rpc.NewServer(logger, regs.Tasks, os.Stdin, os.Stdout).Serve(c.Context)
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve calendar and task functions as Model Context Protocol tools.",
		Action: func(c *cli.Context) error {
			logger, regs, err := setup(c)
			if err != nil {
				return err
			}
			srv, err := mcpserver.New(logger, regs.Calendar, regs.Tasks)
			if err != nil {
				return err
			}
			return srv.ServeStdio()
		},
	}
}

func gcalAuthCommand() *cli.Command {
	return &cli.Command{
		Name:      "gcal-auth",
		Usage:     "Authorize Google Calendar access and save " + gcalendar.TokenFile + ".",
		ArgsUsage: "[credentials.json]",
		Action: func(c *cli.Context) error {
			credsPath := "google-credentials.json"
			if c.Args().Present() {
				credsPath = c.Args().First()
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			config, err := gcalendar.NewAuthConfig(data)
			if err != nil {
				return err
			}

			fmt.Printf("Open this URL in your browser and sign in:\n\n%s\n\n", gcalendar.AuthCodeURL(config))
			fmt.Print("Paste the authorization code and press Enter: ")

			code, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("authorization code is required")
			}

			if err := gcalendar.ExchangeAndSave(c.Context, config, code, gcalendar.TokenFile); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", gcalendar.TokenFile)
			return nil
		},
	}
}
