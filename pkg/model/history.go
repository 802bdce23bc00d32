package model

// HistoryEntry pairs a remembered entity with the moment it was recorded.
// ID is derived from the entity's natural key and is unique within a list.
type HistoryEntry[T any] struct {
	ID        string `json:"id"`
	Item      T      `json:"item"`
	Timestamp string `json:"timestamp"`
}
