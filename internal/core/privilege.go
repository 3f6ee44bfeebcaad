package core

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/sys/unix"
)

// IsRoot reports whether the process runs with elevated privileges.
func IsRoot() bool {
	return unix.Geteuid() == 0
}

// InvokerHome resolves the home directory of the user who started the
// process. Under sudo this is the original user's home (via SUDO_USER),
// not root's, so user-cache cleanup targets the right account.
func InvokerHome() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && IsRoot() {
		u, err := user.Lookup(sudoUser)
		if err == nil && u.HomeDir != "" {
			return u.HomeDir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return home, nil
}
