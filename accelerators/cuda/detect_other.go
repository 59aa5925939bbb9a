//go:build !linux

package cuda

func available() bool { return false }
