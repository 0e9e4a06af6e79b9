// Package browse opens a directory in the host's file browser.
package browse

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a directory for the user to look at.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(path string) error

// Open calls f(path).
func (f OpenerFunc) Open(path string) error { return f(path) }

// System opens directories with the platform's default handler. The command
// is started and not waited on.
type System struct {
	// GOOS selects the platform command; empty means runtime.GOOS.
	GOOS string

	// start runs the command; nil means starting it detached.
	start func(*exec.Cmd) error
}

// Command returns the command that would open path on the configured
// platform.
func (s System) Command(path string) (*exec.Cmd, error) {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "darwin":
		return exec.Command("open", path), nil
	case "windows":
		return exec.Command("explorer", path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Open starts the platform command for path.
func (s System) Open(path string) error {
	cmd, err := s.Command(path)
	if err != nil {
		return err
	}
	if s.start != nil {
		return s.start(cmd)
	}
	return startDetached(cmd)
}

// startDetached starts cmd and releases the child so a long-lived caller
// does not keep it around once the file browser exits.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
