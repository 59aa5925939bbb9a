//go:build !darwin

// No-op stub: the MPS backend is not registered outside darwin.

package mps
