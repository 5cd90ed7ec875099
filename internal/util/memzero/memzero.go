// Package memzero wipes sensitive byte slices such as private scalars.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. b is kept alive past the copy so the write
// cannot be elided.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
