// Package id generates process-unique prefixed identifiers.
// IDs combine a prefix, a unix-millisecond time component and a
// monotonically increasing process-local counter, e.g. "wo-18f2c4a1b20-0042".
// They are unique within a process lifetime only; they are neither
// cryptographically unpredictable nor unique across processes.
package id

import (
	"strconv"
	"sync/atomic"
	"time"
)

var counter atomic.Uint64

// New returns a fresh identifier for the given entity prefix.
func New(prefix string) string {
	n := counter.Add(1)
	ts := strconv.FormatInt(time.Now().UnixMilli(), 16)
	return prefix + "-" + ts + "-" + pad(n)
}

// pad renders the counter as a fixed-width decimal so ids sort naturally
// within a single millisecond.
func pad(n uint64) string {
	s := strconv.FormatUint(n, 10)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
