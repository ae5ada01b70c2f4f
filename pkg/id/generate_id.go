package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var dealSeq uint64

// NewDealID returns a pipeline deal identifier of the form
// {prefix}-{unixMillis}-{seq}. The process-wide sequence keeps IDs minted in
// the same millisecond distinguishable.
func NewDealID(prefix string) string {
	n := atomic.AddUint64(&dealSeq, 1)
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), n)
}

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
