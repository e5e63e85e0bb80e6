// Package lockfile guards the journal against concurrent daybook
// processes. A lockfile holding the owner's PID lives beside the data
// file; stale locks left behind by dead processes are reclaimed.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/daybook/internal/constants"
)

// findProcessFunc is a variable so tests can mock process lookup
var findProcessFunc = ps.FindProcess

// Lock represents an acquired hold on a journal's lockfile.
type Lock struct {
	path string
}

// Acquire claims the lockfile beside the given data file for the current
// process. It fails when another live daybook process already holds it.
// Malformed lockfiles and locks owned by dead or unrelated processes are
// treated as stale and overwritten.
func Acquire(dataPath string) (*Lock, error) {
	lockPath := filepath.Join(filepath.Dir(dataPath), constants.LockfileName)

	if pid, held := liveHolder(lockPath); held {
		return nil, fmt.Errorf("journal is in use by another daybook process (pid %d)", pid)
	}

	if err := os.MkdirAll(filepath.Dir(lockPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(lockPath, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: lockPath}, nil
}

// Holder reports the PID of the live daybook process currently holding the
// lock for the given data file, if any.
func Holder(dataPath string) (int, bool) {
	return liveHolder(filepath.Join(filepath.Dir(dataPath), constants.LockfileName))
}

// Release removes the lockfile. Safe to call on a nil lock.
func (l *Lock) Release() {
	if l == nil {
		return
	}
	os.Remove(l.path)
}

// Path returns the location of the lockfile.
func (l *Lock) Path() string {
	return l.path
}

// liveHolder reports the PID recorded in the lockfile when it belongs to
// a live daybook process other than our own.
func liveHolder(lockPath string) (int, bool) {
	content, err := os.ReadFile(lockPath)
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 {
		return 0, false
	}

	if pid == os.Getpid() {
		// Our own leftover lock from an earlier run in this process
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, false
	}

	// The PID may have been recycled by an unrelated process
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return 0, false
	}

	return pid, true
}
