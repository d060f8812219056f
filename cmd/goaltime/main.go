package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/goaltime/goaltime/internal/cli"
	"github.com/goaltime/goaltime/internal/logger"
	"github.com/goaltime/goaltime/internal/record"
	"github.com/goaltime/goaltime/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/goaltime/goaltime.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd   `cmd:"" help:"Initialize goaltime storage."`
	Tui       cli.TuiCmd    `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Day       cli.DayCmd    `cmd:"" help:"Show one day's record."`
	Month     cli.MonthCmd  `cmd:"" help:"Show a month grid."`
	Log       cli.LogCmd    `cmd:"" help:"Log hours and checklist items for a day."`
	Doctor    cli.DoctorCmd `cmd:"" help:"Run storage diagnostics."`
	DebugInfo cli.DebugCmd  `cmd:"" name:"debug" help:"Inspect storage internals."`
	Goal      struct {
		Add    cli.GoalAddCmd    `cmd:"" help:"Add an additional goal to a day."`
		Done   cli.GoalDoneCmd   `cmd:"" help:"Mark an additional goal done."`
		Remove cli.GoalRemoveCmd `cmd:"" help:"Remove an additional goal."`
		List   cli.GoalListCmd   `cmd:"" help:"List a day's additional goals."`
	} `cmd:"" help:"Manage additional goals."`
	Sig struct {
		Add    cli.SigAddCmd    `cmd:"" help:"Add a significance note to a day."`
		Remove cli.SigRemoveCmd `cmd:"" help:"Remove a significance note."`
		List   cli.SigListCmd   `cmd:"" help:"List a day's significance notes."`
	} `cmd:"" help:"Manage significance notes."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a storage backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("goaltime"),
		kong.Description("Daily goal & calendar tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}

	// The primary backend follows the storage path extension; the file and
	// in-memory backends trail as redundant fallbacks so a failing primary
	// degrades instead of losing data.
	var primary storage.Backend
	if strings.HasSuffix(CLI.Config, ".json") {
		primary = storage.NewFileBackend(CLI.Config)
	} else {
		primary = storage.NewSQLiteBackend(CLI.Config)
	}
	chain := storage.NewChain(
		primary,
		storage.NewFileBackend(fallbackPath(CLI.Config)),
		storage.NewMemoryBackend(),
	)
	defer chain.Close()

	appCtx := &cli.Context{
		Store:      record.New(chain),
		Chain:      chain,
		ConfigPath: CLI.Config,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fallbackPath derives the secondary JSON file written alongside the primary
// store.
func fallbackPath(configPath string) string {
	ext := filepath.Ext(configPath)
	return strings.TrimSuffix(configPath, ext) + ".fallback.json"
}
