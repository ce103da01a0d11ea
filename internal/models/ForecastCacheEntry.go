package models

import (
	"encoding/json"
	"time"
)

// ForecastCacheEntry is one stored forecast, keyed by (mountain, band).
// Payload keeps the exact marshaled bytes so fresh reads return the payload
// byte for byte.
type ForecastCacheEntry struct {
	MountainID string
	Band       string
	Payload    json.RawMessage
	FetchedAt  time.Time
	TTLSeconds int
}
