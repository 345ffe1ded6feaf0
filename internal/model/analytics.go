package model

// AccountStats is the dashboard snapshot for one account.
type AccountStats struct {
	TotalStudents  int            `json:"total_students"`
	ByCourse       map[string]int `json:"by_course"`
	AttendanceRate float64        `json:"attendance_rate"` // trailing 30 days, percent
}

// TrendPoint is one day in an attendance trend series.
type TrendPoint struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Present int    `json:"present"`
}

// PerformerRow ranks one student by average score across all subjects.
type PerformerRow struct {
	StudentName  string  `json:"student_name"`
	CourseName   string  `json:"course_name"`
	AverageScore float64 `json:"average_score"`
}

// SubjectRow aggregates marks for one subject across an account's students.
type SubjectRow struct {
	Subject      string  `json:"subject"`
	AverageScore float64 `json:"average_score"`
	EntryCount   int     `json:"entry_count"`
}
