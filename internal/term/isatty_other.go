//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package term

func isTerminal(fd uintptr) bool {
	return false
}
