package domain

// EventInterval is one start/end range on the same integer clock
// sections use.
type EventInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// EventTimes maps a lowercase weekday name ("monday".."sunday") to the
// intervals the event occupies on that day. Stored as JSONB; custom
// events keep this per-day shape while sections use a single bitmask,
// and the two are only unified at aggregation time.
type EventTimes map[string][]EventInterval

type CustomEvent struct {
	ID     int        `db:"id" json:"id"`
	UserID int        `db:"user_id" json:"user_id"`
	Title  string     `db:"title" json:"title"`
	Times  EventTimes `db:"times" json:"times"`
}

type CreateEventRequest struct {
	Title string     `json:"title" validate:"required,max=100"`
	Times EventTimes `json:"times" validate:"required"`
}

type UpdateEventRequest struct {
	Title *string     `json:"title" validate:"omitempty,max=100"`
	Times *EventTimes `json:"times"`
}
