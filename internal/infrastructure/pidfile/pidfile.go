package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// ErrRunInProgress is returned by Acquire while another live process holds the file
type ErrRunInProgress struct {
	PID int
}

func (e *ErrRunInProgress) Error() string {
	return fmt.Sprintf("a production run is already in progress (PID %d)", e.PID)
}

// PIDFile keeps a single production run per host
type PIDFile struct {
	path string
	pid  int
}

// New creates a PIDFile for the current process
func New(path string) *PIDFile {
	return &PIDFile{path: path, pid: os.Getpid()}
}

// Path returns the file location
func (p *PIDFile) Path() string {
	return p.path
}

// Acquire writes the current PID to the file. A stale or unreadable file is
// replaced; a file naming a live process fails with *ErrRunInProgress.
func (p *PIDFile) Acquire() error {
	data, err := os.ReadFile(p.path)
	switch {
	case err == nil:
		if pid, convErr := strconv.Atoi(strings.TrimSpace(string(data))); convErr == nil && pid != p.pid && isProcessRunning(pid) {
			return &ErrRunInProgress{PID: pid}
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	if err := os.WriteFile(p.path, []byte(fmt.Sprintf("%d\n", p.pid)), 0o644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Release removes the file if it still names this process
func (p *PIDFile) Release() error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read PID file: %w", err)
	}
	if pid, convErr := strconv.Atoi(strings.TrimSpace(string(data))); convErr == nil && pid != p.pid {
		return nil
	}
	if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// isProcessRunning sends signal 0 to pid
func isProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return true
	case errors.Is(err, syscall.EPERM):
		// exists, owned by someone else
		return true
	default:
		return false
	}
}
