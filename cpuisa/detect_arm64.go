//go:build arm64

package cpuisa

// NEON is always available on ARM64 processors.
func detect() []VecISA {
	return []VecISA{NEON}
}
