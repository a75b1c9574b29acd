//go:build !linux

package utils

import "os"

// IsTerminal always reports false outside Linux; color must be forced on there.
func IsTerminal(*os.File) bool {
	return false
}
