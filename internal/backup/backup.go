package backup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/logger"
)

const (
	dayStamp    = "2006-01-02"
	secondStamp = "2006-01-02-150405"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup files in a single directory
type Manager struct {
	backupDir string
}

// NewManager creates a manager for <configDir>/backups
func NewManager(configDir string) *Manager {
	return &Manager{backupDir: filepath.Join(configDir, constants.BackupDirName)}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// FileName returns the conventional export filename for the given time
func FileName(t time.Time) string {
	return constants.BackupFilePrefix + t.Format(dayStamp) + constants.BackupFileSuffix
}

// CreateBackup writes doc to a new backup file and rotates old backups
func (m *Manager) CreateBackup(doc Document, now time.Time) (string, error) {
	return m.createBackup(doc, now, false)
}

// CreateSafetyBackup writes doc without rotating, so the backup taken right
// before an import can never evict itself.
func (m *Manager) CreateSafetyBackup(doc Document, now time.Time) (string, error) {
	return m.createBackup(doc, now, true)
}

func (m *Manager) createBackup(doc Document, now time.Time, skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.uniquePath(now)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	logger.Info("Backup created", "path", path, "bytes", buf.Len())

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// Rotation failure does not fail the backup itself
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}
	return path, nil
}

// uniquePath tries a day-precision name, then seconds, then a counter
func (m *Manager) uniquePath(now time.Time) (string, error) {
	path := filepath.Join(m.backupDir, FileName(now))
	if !exists(path) {
		return path, nil
	}

	stamp := now.Format(secondStamp)
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for counter := 1; exists(path); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, constants.BackupFileSuffix))
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// parseStamp extracts the timestamp from a backup filename stem
func parseStamp(stem string) (time.Time, bool) {
	if t, err := time.Parse(secondStamp, stem); err == nil {
		return t, true
	}
	if t, err := time.Parse(dayStamp, stem); err == nil {
		return t, true
	}
	// Strip a trailing collision counter
	if i := strings.LastIndex(stem, "-"); i > 0 {
		if t, err := time.Parse(secondStamp, stem[:i]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ListBackups returns all available backups, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		stem := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
		timestamp, ok := parseStamp(stem)
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for _, b := range backups[constants.MaxBackups:] {
		if err := os.Remove(b.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", b.Path, err)
		}
		logger.Debug("Rotated backup", "path", b.Path)
	}
	return nil
}

// ReadFile decodes the backup document at path
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
