// Package validate holds the input checks applied before anything is stored.
// None of them prompt or loop; callers decide whether to ask again.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

var (
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	gradeRegex = regexp.MustCompile(`^[1-6](\.0|\.5)?$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func Email(value string) bool {
	return emailRegex.MatchString(value)
}

// Username requires a non-empty value and, only when it contains '@', a
// well-formed email address.
func Username(value string) error {
	if value == "" {
		return domain.ValidationError{Field: "username", Value: value, Message: "username is required"}
	}
	if strings.Contains(value, "@") && !Email(value) {
		return domain.ValidationError{
			Field:   "username",
			Value:   value,
			Message: "not a valid email address",
			Err:     domain.ErrInvalidEmail,
		}
	}
	return nil
}

// Grade parses a grade like "4", "4.5" or "5.0".
func Grade(input string) (float64, error) {
	value := strings.TrimSpace(input)
	if !gradeRegex.MatchString(value) {
		return 0, gradeError(value, "allowed are 1 to 6 in steps of .5")
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, gradeError(value, err.Error())
	}
	if err := GradeValue(parsed); err != nil {
		return 0, err
	}
	return parsed, nil
}

// GradeValue checks an already numeric grade against the half-point domain.
func GradeValue(value float64) error {
	if value < 1.0 || value > 6.0 {
		return gradeError(value, "must be between 1 and 6")
	}
	if value*2 != float64(int(value*2)) {
		return gradeError(value, "must be a whole or half grade")
	}
	return nil
}

func gradeError(value interface{}, message string) error {
	return domain.ValidationError{Field: "grade", Value: value, Message: message, Err: domain.ErrInvalidGrade}
}

// Date returns input when it has the YYYY-MM-DD shape and today otherwise.
// fellBack reports a non-empty input that had to be replaced.
func Date(input string, today time.Time) (value string, fellBack bool) {
	value = strings.TrimSpace(input)
	if value == "" {
		return today.Format(domain.DateLayout), false
	}
	if dateRegex.MatchString(value) {
		return value, false
	}
	return today.Format(domain.DateLayout), true
}
