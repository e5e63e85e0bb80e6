package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daybook/internal/constants"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles journal backup operations
type Manager struct {
	dataPath  string
	backupDir string
	suffix    string
}

// NewManager creates a backup manager for the journal at dataPath. Backups
// keep the journal's file format, so a .db journal produces .db backups
// and a .json journal produces .json backups.
func NewManager(dataPath string) *Manager {
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(filepath.Dir(dataPath), constants.BackupDirName),
		suffix:    filepath.Ext(dataPath),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// ensureBackupDir creates the backup directory if it doesn't exist
func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup creates a new backup of the journal
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup creates a new backup of the journal
// skipRotation is used to prevent recursive backup creation during restore
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dataPath); os.IsNotExist(err) {
		return "", fmt.Errorf("journal does not exist: %s", m.dataPath)
	}

	// Generate backup filename with timestamp
	// Try with minute precision first
	timestamp := time.Now().Format("20060102-1504")
	backupName := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, timestamp, m.suffix)
	backupPath := filepath.Join(m.backupDir, backupName)

	// If a backup with the same name exists, add seconds
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupName = fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, timestamp, m.suffix)
		backupPath = filepath.Join(m.backupDir, backupName)

		// If still exists, add a counter
		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupName = fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix)
			backupPath = filepath.Join(m.backupDir, backupName)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := m.backupJournal(backupPath); err != nil {
		return "", fmt.Errorf("failed to backup journal: %w", err)
	}

	// Rotate old backups (unless this is part of a restore operation)
	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// Log error but don't fail the backup operation
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// backupJournal copies the journal to destPath using a method appropriate
// for its format.
func (m *Manager) backupJournal(destPath string) error {
	if m.suffix != ".db" {
		return copyFile(m.dataPath, destPath)
	}

	// Open source database in read-only mode
	srcDB, err := sql.Open("sqlite", m.dataPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	// Verify source database is valid
	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	// VACUUM INTO produces a clean copy and requires SQLite 3.27.0 or later
	_, err = srcDB.Exec("VACUUM INTO ?", destPath)
	if err != nil {
		// Fall back to file copy when VACUUM INTO is unavailable
		srcDB.Close()
		return copyFile(m.dataPath, destPath)
	}

	return nil
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
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
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		// Parse timestamp from filename
		timestampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)

		// Remove counter suffix if present (format: YYYYMMDD-HHMM-N or YYYYMMDD-HHMMSS-N)
		// Counter is always after the last hyphen and is all digits
		parts := strings.Split(timestampStr, "-")
		if len(parts) > 2 {
			// Check if last part is a counter (all digits, not 4 or 6 chars which would be time)
			lastPart := parts[len(parts)-1]
			if len(lastPart) != 4 && len(lastPart) != 6 {
				isCounter := true
				for _, c := range lastPart {
					if c < '0' || c > '9' {
						isCounter = false
						break
					}
				}
				if isCounter {
					timestampStr = strings.Join(parts[:len(parts)-1], "-")
				}
			}
		}

		var timestamp time.Time
		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				// Skip files with invalid timestamp format
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	// Sort by timestamp, newest first
	sort.Slice(backups, func(i, j int) bool {
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

	// Delete oldest backups
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup restores the journal from a backup file
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	// A .db backup cannot be restored over a .json journal or vice versa
	if filepath.Ext(backupPath) != m.suffix {
		return fmt.Errorf("backup format %s does not match journal format %s", filepath.Ext(backupPath), m.suffix)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	// Back up the current journal before overwriting it
	if _, err := os.Stat(m.dataPath); err == nil {
		// skipRotation=true to prevent infinite recursion
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to backup current journal before restore: %w", err)
		}
		fmt.Printf("Created backup of current journal: %s\n", filepath.Base(currentBackup))
	}

	// Copy backup into place via a temporary file and atomic rename
	tempPath := m.dataPath + ".restore.tmp"

	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.dataPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore journal: %w", err)
	}

	return nil
}

// verifyBackup checks that a backup file is readable in the journal's format
func (m *Manager) verifyBackup(path string) error {
	if m.suffix != ".db" {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(content) {
			return fmt.Errorf("not a valid JSON document")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	// Query sqlite_master to verify it's a valid database
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return err
	}

	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
