package model

import "time"

// Student is owned exclusively by one account. Reads and writes are
// always filtered by OwnerAccountID; a student belonging to another
// account is indistinguishable from a missing one.
type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	CourseID       int       `json:"course_id"`
	CourseName     string    `json:"course_name"`
	OwnerAccountID int       `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	CourseID int    `json:"course_id" binding:"required"`
}

// UpdateStudentRequest is the payload for updating a student.
type UpdateStudentRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	CourseID int    `json:"course_id" binding:"required"`
}

// StudentFilter narrows student listings. Name matches as a
// case-insensitive substring; CourseID matches exactly when non-nil.
type StudentFilter struct {
	Name     string
	CourseID *int
}
