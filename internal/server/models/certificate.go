package models

import "time"

// Certificate is immutable after issuance. CourseID and UserID are opaque
// foreign keys; they are not validated against live records at issue time.
type Certificate struct {
	ID        uint64    `json:"id"`
	CourseID  uint64    `json:"course_id"`
	UserID    uint64    `json:"user_id"`
	IssueDate time.Time `json:"issue_date"`
}
