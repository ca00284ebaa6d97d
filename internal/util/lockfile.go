package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nakachan-ing/kanban-cli/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrLocked means another live process owns the data directory.
var ErrLocked = errors.New("board is locked by another process")

func LockPath(dataDir string) string {
	return filepath.Join(dataDir, "kanban.lock")
}

// alive reports whether pid is a running process.
var alive = processAlive

// CreateLockFile claims dataDir for this process. A lock left behind by a
// process that no longer exists is taken over.
func CreateLockFile(dataDir string) error {
	return createLock(dataDir, os.Getpid())
}

func createLock(dataDir string, pid int) error {
	lockFileName := LockPath(dataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	info, err := yaml.Marshal(newLockFile(dataDir, pid))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// One retry covers a stale lock removed below or a lock released
	// between the failed create and the read.
	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(lockFileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			_, werr := f.Write(info)
			if cerr := f.Close(); werr == nil {
				werr = cerr
			}
			if werr != nil {
				os.Remove(lockFileName)
				return fmt.Errorf("failed to write lock file: %w", werr)
			}
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}

		existing, err := ReadLockFile(lockFileName)
		switch {
		case os.IsNotExist(err):
			continue
		case err != nil:
			return fmt.Errorf("%w: unreadable lock file %s: %v", ErrLocked, lockFileName, err)
		case existing.Pid <= 0:
			// the owner has created the file but not written it yet
			return fmt.Errorf("%w: lock file %s is being written", ErrLocked, lockFileName)
		case existing.Pid == pid:
			return nil
		case alive(existing.Pid):
			return fmt.Errorf("%w: pid %d (%s) since %s", ErrLocked, existing.Pid, existing.User, existing.TimeStamp)
		}

		if err := removeStaleLock(lockFileName, existing); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: lock file %s was re-created by another process", ErrLocked, lockFileName)
}

// removeStaleLock deletes the lock only if it still holds stale.
func removeStaleLock(lockFileName string, stale model.LockFile) error {
	current, err := ReadLockFile(lockFileName)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil || current != stale {
		return fmt.Errorf("%w: lock file %s changed while taking it over", ErrLocked, lockFileName)
	}
	if err := os.Remove(lockFileName); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	return nil
}

func newLockFile(dataDir string, pid int) model.LockFile {
	t := time.Now()
	id := fmt.Sprintf("%d%02d%02d%02d%02d%02d",
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second())

	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		user = "unknown"
	}

	return model.LockFile{
		ID:        id,
		User:      user,
		Pid:       pid,
		DataDir:   dataDir,
		TimeStamp: t.UTC().Format(time.RFC3339),
	}
}

func ReadLockFile(lockFileName string) (model.LockFile, error) {
	var lockFile model.LockFile
	data, err := os.ReadFile(lockFileName)
	if err != nil {
		return lockFile, err
	}
	if err := yaml.Unmarshal(data, &lockFile); err != nil {
		return lockFile, fmt.Errorf("failed to parse lock file: %w", err)
	}
	return lockFile, nil
}

// RemoveLockFile releases dataDir if this process holds it.
func RemoveLockFile(dataDir string) error {
	lockFileName := LockPath(dataDir)
	existing, err := ReadLockFile(lockFileName)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.Pid != os.Getpid() {
		return nil
	}
	if err := os.Remove(lockFileName); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}
