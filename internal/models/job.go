package models

import "time"

// Job represents a job posting on the careers page
type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Experience  string    `json:"experience"`
	JobType     string    `json:"job_type"`
	Description string    `json:"description"`
	FormURL     string    `json:"form_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobRequest represents a request to create or fully replace a job posting
type JobRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Experience  string `json:"experience"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
	FormURL     string `json:"form_url,omitempty"`
}
