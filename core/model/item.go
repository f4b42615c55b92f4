package model

import "encoding/json"

// Category tags attached to collected items. The traffic collector applies
// all three because a published road restriction can relate to any of them.
const (
	TagImperial = "imperial"
	TagPM       = "pm"
	TagState    = "state"
)

// Item is a single announced event or traffic restriction in the feed.
// Field names are the wire contract consumed by the frontend; startAt and
// endAt are RFC3339 strings carrying the fixed +09:00 offset so that
// lexicographic order equals chronological order.
type Item struct {
	ID        string          `json:"id" validate:"required"`
	Title     string          `json:"title"`
	Purpose   string          `json:"purpose"`
	Desc      string          `json:"desc"`
	Authority string          `json:"authority"`
	Area      string          `json:"area"`
	StartAt   string          `json:"startAt" validate:"required"`
	EndAt     string          `json:"endAt"`
	Geometry  json.RawMessage `json:"geometry"`
	Roads     []string        `json:"roads"`
	Tags      []string        `json:"tags"`
	SourceURL string          `json:"sourceUrl"`
	NewsURL   string          `json:"newsUrl,omitempty"`
}
