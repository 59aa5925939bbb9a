//go:build !linux

package rocm

func available() bool { return false }
