package http

// Error is the uniform error body returned by every failing endpoint.
// Field is set for validation errors so the client knows what to ask
// the customer about next.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Session is returned when a new conversation session is opened.
type Session struct {
	SessionID string `json:"session_id"`
}

// OrderUpdate carries one turn's worth of extracted attributes. Absent
// fields are left untouched; present fields overwrite previous values.
type OrderUpdate struct {
	ItemType      *string   `json:"item_type,omitempty"`
	Size          *string   `json:"size,omitempty"`
	Modifier      *string   `json:"modifier,omitempty"`
	Extras        *[]string `json:"extras,omitempty"`
	SubmitterName *string   `json:"submitter_name,omitempty"`
}

// OrderDraft is the raw, unvalidated view of a session's in-progress order.
type OrderDraft struct {
	ItemType      string   `json:"item_type"`
	Size          string   `json:"size"`
	Modifier      string   `json:"modifier"`
	Extras        []string `json:"extras"`
	SubmitterName string   `json:"submitter_name"`
	IsComplete    bool     `json:"is_complete"`
	State         string   `json:"state"`
}

// CommittedOrder is the normalized, immutable record of a committed order.
type CommittedOrder struct {
	OrderID       string   `json:"order_id"`
	ItemType      string   `json:"item_type"`
	Size          string   `json:"size"`
	Modifier      string   `json:"modifier"`
	Extras        []string `json:"extras"`
	SubmitterName string   `json:"submitter_name"`
	Timestamp     string   `json:"timestamp"`
}
