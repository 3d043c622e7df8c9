package system

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/keyring"
	"github.com/julianstephens/momentum/internal/migration"
	"github.com/julianstephens/momentum/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(ctx *cli.Context) error
	warning bool
	needsDB bool
}

// The first check gates every needsDB check
var checks = []check{
	{name: "Storage reachable", run: checkStorageReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Stored data decodes", run: checkKeysDecode, needsDB: true},
	{name: "Orphaned logs", run: checkOrphanedLogs, warning: true, needsDB: true},
	{name: "Keyring available", run: checkKeyring, warning: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true
	for i, c := range checks {
		if c.needsDB && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}

		if i == 0 && err != nil {
			reachable = false
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	if ctx.State != nil && !ctx.State.Loaded() {
		if err := ctx.State.Load(); err != nil {
			return fmt.Errorf("failed to read stored data: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	versioned, ok := ctx.Store.(storage.Versioned)
	if !ok {
		// file and memory stores have no schema
		return nil
	}

	current, latest, err := versioned.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("%w: database is at version %d, this build knows up to %d", migration.ErrSchemaTooNew, current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

// checkKeysDecode reports stored values that would be replaced by defaults on load
func checkKeysDecode(ctx *cli.Context) error {
	var bad []string
	for _, key := range constants.StorageKeys {
		raw, ok, err := ctx.Store.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			bad = append(bad, key)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("malformed data in %s (defaults will be used)", strings.Join(bad, ", "))
	}
	return nil
}

func checkOrphanedLogs(ctx *cli.Context) error {
	if ctx.State == nil || !ctx.State.Loaded() {
		return nil
	}

	habits := make(map[string]bool)
	for _, h := range ctx.State.Habits() {
		habits[h.ID] = true
	}
	wins := make(map[string]bool)
	for _, w := range ctx.State.MicroWins() {
		wins[w.ID] = true
	}

	orphanedLogs := 0
	for _, l := range ctx.State.Logs() {
		if !habits[l.HabitID] {
			orphanedLogs++
		}
	}
	orphanedWinLogs := 0
	for _, l := range ctx.State.MicroWinLogs() {
		if !wins[l.WinID] {
			orphanedWinLogs++
		}
	}

	if orphanedLogs+orphanedWinLogs > 0 {
		return fmt.Errorf("%d habit logs and %d micro-win logs reference missing items", orphanedLogs, orphanedWinLogs)
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available; pass the AI key with --api-key or MOMENTUM_AI_API_KEY")
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if ctx.Backups == nil {
		return fmt.Errorf("backups are not configured")
	}
	backups, err := ctx.Backups.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'momentum backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if ctx.Now().Location() == time.UTC {
		ctx.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
