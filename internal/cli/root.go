package cli

import (
	"fmt"
	"time"

	"github.com/goaltime/goaltime/internal/backup"
	"github.com/goaltime/goaltime/internal/constants"
	"github.com/goaltime/goaltime/internal/logger"
	"github.com/goaltime/goaltime/internal/record"
	"github.com/goaltime/goaltime/internal/storage"
)

// Context carries the shared dependencies into every command's Run.
type Context struct {
	Store      *record.Store
	Chain      *storage.Chain
	ConfigPath string
}

// parseDate resolves a "YYYY-MM-DD or 'today'" argument to a record key.
func parseDate(s string) (string, error) {
	if s == "" || s == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t.Format(constants.DateFormat), nil
}

// PerformAutomaticBackup snapshots the storage file on startup. Failures are
// logged only; a missing backup never blocks the app.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.ConfigPath)
	if path, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	} else {
		logger.Debug("automatic backup created", "path", path)
	}
}
