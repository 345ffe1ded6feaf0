package model

import "time"

// MarkEntry is one recorded assessment score. Entries are append-only;
// several entries per subject are separate assessments.
type MarkEntry struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	Subject   string    `json:"subject"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// AddMarkRequest is the payload for recording a mark.
// Score is a pointer so that a zero score survives the required check.
type AddMarkRequest struct {
	Subject string `json:"subject" binding:"required,min=1,max=100"`
	Score   *int   `json:"score" binding:"required,min=0,max=100"`
}

// SubjectSummary aggregates a student's marks for one subject.
type SubjectSummary struct {
	Average float64 `json:"average"`
	Highest int     `json:"highest"`
	Lowest  int     `json:"lowest"`
	Count   int     `json:"count"`
}
