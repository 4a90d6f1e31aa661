//go:build linux && !cgo
// +build linux,!cgo

// File: affinity/affinity_linux_nocgo.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for Linux builds with CGO disabled. The CGO-based
// implementation in affinity_linux.go is excluded from the build in this
// configuration, so this file supplies setAffinityPlatform to keep the
// package buildable in pure-Go environments.

package affinity

import "errors"

// setAffinityPlatform is a stub for Linux builds without CGO.
func setAffinityPlatform(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}
