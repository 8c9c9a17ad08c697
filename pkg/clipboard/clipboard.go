// Package clipboard places text on the system clipboard without blocking
// the interactive session. On some platforms the process that sets a
// clipboard selection has to stay alive to answer requests for it, so the
// session spawns a detached copy of its own executable that claims the
// clipboard and lives on its own; the session never waits for it.
package clipboard

import (
	"errors"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
)

// daemonEnv marks a process as the clipboard child. An environment
// variable cannot collide with a legitimately typed first CLI argument,
// unlike an argv sentinel.
const daemonEnv = "ISSUEBOX_CLIPBOARD_DAEMON"

// ErrUnavailable is reported whenever the hand-off cannot be performed.
var ErrUnavailable = errors.New("clipboard is not available")

// DaemonPayload reports whether this process was started as the clipboard
// child, and if so returns the payload text it should claim. Must be
// checked before any argument parsing.
func DaemonPayload() (string, bool) {
	if os.Getenv(daemonEnv) == "" {
		return "", false
	}
	if len(os.Args) < 2 {
		return "", false
	}
	return os.Args[1], true
}

// Spawn hands text to a detached copy of the current executable. The
// child gets no access to the session's standard streams and runs from
// the filesystem root so it cannot inherit a deleted working directory.
// Best effort: a failure to spawn is reported once and never retried.
func Spawn(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	exe, err := os.Executable()
	if err != nil {
		return ErrUnavailable
	}

	cmd := exec.Command(exe, text)
	cmd.Env = append(os.Environ(), daemonEnv+"=1")
	cmd.Dir = "/"
	if err := cmd.Start(); err != nil {
		return ErrUnavailable
	}
	// The child is unsupervised from here on.
	_ = cmd.Process.Release()
	return nil
}

// RunDaemon is the child side of the hand-off: claim the clipboard with
// the payload and return. The underlying platform tool keeps serving the
// selection where that is required.
func RunDaemon(text string) error {
	return clipboard.WriteAll(text)
}
