//go:build amd64

package cpuisa

import "golang.org/x/sys/cpu"

func detect() []VecISA {
	var isas []VecISA
	// The AVX-512 kernels need the F/VL/BW/DQ subsets together, matching the
	// server-class cores that ship all four.
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512DQ {
		isas = append(isas, AVX512)
	}
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		isas = append(isas, AVX2)
	}
	return isas
}
