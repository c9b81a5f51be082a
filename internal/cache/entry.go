package cache

import (
	"encoding/json"
	"time"
)

// Entry is a transformed payload as it sits in a Store.
type Entry struct {
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"storedAt"`
}

// Fresh reports whether the entry is still inside the ttl window at now.
func (e *Entry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.StoredAt) < ttl
}
