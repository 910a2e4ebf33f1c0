package models

// LogVisitRequest defines the request body for recording a page visit
type LogVisitRequest struct {
	Path string `json:"path" validate:"omitempty,max=200"`
}

// VisitorStats holds the unique-visitor counts for today and yesterday
type VisitorStats struct {
	Today     int64 `json:"today"`
	Yesterday int64 `json:"yesterday"`
}
