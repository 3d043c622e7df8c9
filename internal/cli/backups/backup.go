package backups

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/momentum/internal/backup"
	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/constants"
	apperrors "github.com/julianstephens/momentum/internal/errors"
	"github.com/julianstephens/momentum/internal/logger"
)

type BackupCmd struct {
	Create BackupCreateCmd `cmd:"" help:"Create a backup in the backup directory."`
	List   BackupListCmd   `cmd:"" help:"List available backups."`
	Export BackupExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import BackupImportCmd `cmd:"" help:"Import data from an exported JSON file."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	backupPath, err := ctx.Backups.CreateBackup(backup.Export(ctx.State.Snapshot(), now), now)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	backups, err := ctx.Backups.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", ctx.Backups.GetBackupDir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		ctx.Printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	ctx.Printf("\nBackup directory: %s\n", ctx.Backups.GetBackupDir())
	return nil
}

type BackupExportCmd struct {
	Output string `help:"Output file ('-' for stdout). Defaults to momentum-backup-<date>.json in the current directory." short:"o" type:"path"`
}

func (c *BackupExportCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	doc := backup.Export(ctx.State.Snapshot(), now)

	if c.Output == "-" {
		return backup.Encode(ctx.Writer(), doc)
	}

	path := c.Output
	if path == "" {
		path = backup.FileName(now)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := backup.Encode(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	logger.Info("Exported data", "path", path)
	ctx.Printf("✓ Exported to %s\n", path)
	return nil
}

type BackupImportCmd struct {
	File string `arg:"" help:"Path or filename of the file to import."`
	Yes  bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *BackupImportCmd) Run(ctx *cli.Context) error {
	path := c.resolvePath(ctx)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", path)
	}

	doc, err := backup.ReadFile(path)
	if errors.Is(err, backup.ErrInvalidFormat) {
		apperrors.Alert(ctx.Writer(), backup.ErrInvalidFormat)
		return nil
	}
	if err != nil {
		return err
	}

	collections := doc.Collections()
	if len(collections) == 0 {
		ctx.Println("Nothing to import.")
		return nil
	}

	ctx.Printf("Import from: %s\n", filepath.Base(path))
	ctx.Printf("Replaces: %s\n", strings.Join(collections, ", "))
	ok, err := ctx.Confirm("Replace current data with the imported collections?", c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Import cancelled.")
		return nil
	}

	if safety, err := ctx.PerformSafetyBackup(); err == nil && safety != "" {
		logger.Info("Created safety backup before import", "path", safety)
	}

	ctx.State.Import(doc.Partial())
	if err := ctx.Commit(); err != nil {
		return err
	}
	logger.Info("Imported data", "path", path, "collections", collections)
	ctx.Println("✓ Data imported successfully!")
	return nil
}

// resolvePath prefers a file of that name inside the backup directory for relative paths
func (c *BackupImportCmd) resolvePath(ctx *cli.Context) string {
	if filepath.IsAbs(c.File) || ctx.Backups == nil {
		return c.File
	}
	possible := filepath.Join(ctx.Backups.GetBackupDir(), c.File)
	if _, err := os.Stat(possible); err == nil {
		return possible
	}
	return c.File
}
