package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Global flags (set from the cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags wires the persistent cobra flags into this package.
func SetGlobalFlags(q, nc, yes bool) {
	quiet = q
	noColor = nc
	skipConfirm = yes
}

// Confirm asks a yes/no question on stdin, defaulting to no. The --yes
// flag answers every prompt.
func Confirm(prompt string) bool {
	if skipConfirm {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func status(w *os.File, mark, plain, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", plain, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", mark, msg)
}

// PrintSuccess reports a completed action unless quiet mode is on.
func PrintSuccess(format string, args ...any) {
	if quiet {
		return
	}
	status(os.Stdout, "✓", "OK", format, args...)
}

// PrintInfo reports a neutral note unless quiet mode is on.
func PrintInfo(format string, args ...any) {
	if quiet {
		return
	}
	status(os.Stdout, "ℹ", "INFO", format, args...)
}

// PrintError reports a failure on stderr.
func PrintError(format string, args ...any) {
	status(os.Stderr, "✗", "ERROR", format, args...)
}
