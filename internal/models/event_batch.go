package models

import "time"

// EventBatch is one accepted POST of events, kept to reject replays of the same idempotency key.
type EventBatch struct {
	BatchID    string    `json:"batchId"`
	ReceivedAt time.Time `json:"receivedAt"`
	Events     []IoEvent `json:"events"`
}
