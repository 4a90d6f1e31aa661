// Package pool
// Author: momentics <momentics@gmail.com>
//
// Byte-slice pooling, reused here for the offload core's response-channel
// scratch buffer. See bytepool.go.
package pool
