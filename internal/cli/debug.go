package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	Path       *DebugPathCmd       `cmd:"" help:"Show storage path."`
	DumpRecord *DebugDumpRecordCmd `cmd:"" help:"Dump a day record as JSON."`
	Info       *DebugInfoCmd       `cmd:"" help:"Show store metadata."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.ConfigPath,
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpRecordCmd struct {
	Date string `arg:"" help:"Date of the record to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpRecordCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	date, err := parseDate(cmd.Date)
	if err != nil {
		return err
	}

	if !ctx.Store.Has(date) {
		return fmt.Errorf("no record found for date: %s", date)
	}

	jsonBytes, err := json.MarshalIndent(ctx.Store.Get(date), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugInfoCmd struct{}

func (cmd *DebugInfoCmd) Run(ctx *Context) error {
	ctx.Store.LoadAll()

	settings := ctx.Store.Settings()
	output := map[string]interface{}{
		"path":       ctx.ConfigPath,
		"install_id": settings.InstallID,
		"created_at": settings.CreatedAt,
		"records":    ctx.Store.Len(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
