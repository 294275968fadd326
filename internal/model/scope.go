package model

// Scope carries the authenticated request identity through use cases.
type Scope struct {
	UserID string
}
