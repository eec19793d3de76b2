package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ganttlabs/ganttlog/internal/cli"
	"github.com/ganttlabs/ganttlog/internal/config"
	"github.com/ganttlabs/ganttlog/internal/constants"
	"github.com/ganttlabs/ganttlog/internal/logger"
	"github.com/ganttlabs/ganttlog/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/ganttlog/config.yaml"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize the ganttlog database."`
	Serve cli.ServeCmd `cmd:"" help:"Run the HTTP server." default:"1"`

	Sessions struct {
		Prune cli.SessionsPruneCmd `cmd:"" help:"Delete expired sessions."`
	} `cmd:"" help:"Manage login sessions."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Project tracker with a calendar, gantt timeline and daily check-ins"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Log.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Store:  sqlite.NewStore(cfg.Database.Path),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
