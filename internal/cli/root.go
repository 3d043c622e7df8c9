package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/momentum/internal/backup"
	"github.com/julianstephens/momentum/internal/insight"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/state"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/utils"
)

type Context struct {
	Store   storage.Provider
	State   *state.Store
	Backups *backup.Manager
	Coach   *insight.Coach

	// APIKey is the key supplied by flag or environment; the keyring is consulted when empty
	APIKey string

	Out         io.Writer
	Interactive func() bool
	Confirmer   func(title string) (bool, error)
}

// Now returns the reference time for the current command
func (c *Context) Now() time.Time {
	return c.State.Now()
}

// Today returns the current date in the configured timezone
func (c *Context) Today() string {
	return utils.FormatDate(c.Now())
}

// Writer returns the command output destination, stdout by default
func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes command output
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Writer(), format, args...)
}

// Println writes command output followed by a newline
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Writer(), args...)
}

// Commit persists pending state changes. It is a no-op when nothing changed.
func (c *Context) Commit() error {
	if !c.State.Dirty() {
		return nil
	}
	if err := c.State.Commit(); err != nil {
		return fmt.Errorf("failed to save changes: %w", err)
	}
	return nil
}

// PerformSafetyBackup snapshots current state before a destructive operation
func (c *Context) PerformSafetyBackup() (string, error) {
	if c.Backups == nil {
		return "", nil
	}
	path, err := c.Backups.CreateSafetyBackup(backup.Export(c.State.Snapshot(), c.Now()), c.Now())
	if err != nil {
		logger.Warn("Safety backup failed", "error", err)
		return "", err
	}
	return path, nil
}
