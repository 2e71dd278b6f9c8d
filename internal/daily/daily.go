// internal/daily/daily.go
//
// Deterministic board selection for the daily puzzle: every player sees the
// same grid on the same UTC date. The seed is HMAC(salt, YYYY-MM-DD), so a
// server-side salt keeps tomorrow's board unpredictable to clients.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// GridSeed returns the deterministic board seed for a date:
// the first 8 bytes of HMAC-SHA256(salt, YYYY-MM-DD).
func GridSeed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
