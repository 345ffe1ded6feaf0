package model

import "time"

// Course is a global catalog entry shared across all accounts.
type Course struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateCourseRequest is the payload for updating a course.
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
