package models

import "time"

// Lesson belongs to exactly one course for its whole life; CourseID is never
// reassigned.
type Lesson struct {
	ID        uint64     `json:"id"`
	CourseID  uint64     `json:"course_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
