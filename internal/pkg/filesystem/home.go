package filesystem

import "os"

// UserHome returns the user's home directory, falling back to the current
// directory when it cannot be resolved.
func UserHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
