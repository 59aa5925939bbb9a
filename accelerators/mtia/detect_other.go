//go:build !linux

package mtia

func available() bool { return false }
