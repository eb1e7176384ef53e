package models

import (
	"io"
)

// AuthorApplication is a prospective-author submission. It is never
// persisted as a queryable entity; the stored resume and the outbound
// notification are its only durable traces.
type AuthorApplication struct {
	Name   string
	Email  string
	Mobile string
	Bio    string
	Resume *ResumeFile
}

// ResumeFile carries the uploaded resume payload
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmissionStatus is the outcome of an application submission
type SubmissionStatus string

const (
	// SubmissionAccepted means the resume was stored and staff were notified
	SubmissionAccepted SubmissionStatus = "accepted"
	// SubmissionPartial means the resume was stored but the notification
	// failed; the application counts as received
	SubmissionPartial SubmissionStatus = "partial"
)

// SubmissionResult is returned on a stored application
type SubmissionResult struct {
	Status     SubmissionStatus `json:"status"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Mobile     string           `json:"mobile"`
	ResumePath string           `json:"resume_path"`
}
