package domain

import "time"

// EntryTimeLayout is the layout of Entry.CreatedAt, always in UTC.
const EntryTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the layout of Grade.Date.
const DateLayout = "2006-01-02"

type Entry struct {
	ID        uint
	Service   string
	Username  string
	Hint      string
	CreatedAt string
}

type Subject struct {
	ID   uint
	Name string
}

type Grade struct {
	ID        uint
	SubjectID uint
	Value     float64
	Date      string
}

// GradeRow is a grade joined with its subject name.
type GradeRow struct {
	Subject string  `json:"subject"`
	Value   float64 `json:"grade"`
	Date    string  `json:"date"`
}

type GradeReport struct {
	Rows        []GradeRow
	Average     float64
	HasAverage  bool
	GeneratedAt time.Time
}

// DefaultSubjects is the subject list seeded when none is configured.
var DefaultSubjects = []string{
	"Fachenglisch",
	"Gesellschaft",
	"Sport",
	"Sprache und Kommunikation",
	"122 Abläufe mit Scriptsprache",
}
