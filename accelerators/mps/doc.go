// Package mps registers the MPS (Apple Metal Performance Shaders) backend
// presence hook.
//
//	import _ "github.com/mengph/pytorch/accelerators/mps"
//
// The backend is only registered on darwin; on other platforms importing this
// package is a no-op.
package mps
