//go:build !linux

package xpu

func available() bool { return false }
