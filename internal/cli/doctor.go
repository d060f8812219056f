package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/goaltime/goaltime/internal/backup"
	"github.com/goaltime/goaltime/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: every storage backend reachable
	ctx.Store.LoadAll()
	for _, status := range ctx.Chain.Status() {
		if status.Healthy {
			fmt.Printf("✓ Backend %s: OK\n", status.Name)
		} else {
			fmt.Printf("❌ Backend %s: FAIL\n", status.Name)
			hasError = true
		}
	}

	// Check 2: storage file present
	if _, err := os.Stat(ctx.ConfigPath); err != nil {
		fmt.Printf("⚠ Storage file: not initialized (run '%s init')\n", constants.AppName)
	} else {
		fmt.Printf("✓ Storage file: OK (%d records)\n", ctx.Store.Len())
	}

	// Check 3: no concurrent process writing the same store. The store is
	// single-writer; a second instance can silently drop saves.
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func checkConcurrentProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range procs {
		name := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if name == constants.AppName && p.Pid() != self {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d other %s process(es) running; concurrent writes to the same storage can lose data", count, constants.AppName)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.ConfigPath)
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("could not list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run '%s backup create'", constants.AppName)
	}
	return nil
}
