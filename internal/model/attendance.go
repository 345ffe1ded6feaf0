package model

import "time"

// AttendanceRecord stores one presence flag per (student, date).
// Marking the same date twice overwrites the flag, it never duplicates
// the row.
type AttendanceRecord struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	Date      string    `json:"date"` // ISO calendar date, YYYY-MM-DD
	Present   bool      `json:"present"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkAttendanceRequest is the payload for recording attendance.
// Present is a pointer so that `false` survives the required check.
type MarkAttendanceRequest struct {
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Present *bool  `json:"present" binding:"required"`
}

// AttendanceSummary aggregates a student's attendance records.
type AttendanceSummary struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}
