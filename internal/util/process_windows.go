//go:build windows

package util

import "os"

// FindProcess opens a handle on Windows and fails for pids that are gone.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	p.Release()
	return true
}
