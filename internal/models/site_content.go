package models

import "encoding/json"

// SiteContentSection represents one editable block of site content.
// Content is an opaque JSON document interpreted by the frontend.
type SiteContentSection struct {
	SectionKey string          `json:"section"`
	Content    json.RawMessage `json:"content"`
}

// SiteContentUpsertRequest represents a wholesale upsert of one section
type SiteContentUpsertRequest struct {
	Section string          `json:"section"`
	Data    json.RawMessage `json:"data"`
}
