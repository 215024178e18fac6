package services

import "fmt"

// FormatRollNumber builds a roll number from the configured prefix, the
// admission year and the application id. Ids shorter than four digits are
// zero padded; longer ids widen the number instead of being truncated, so
// the format stays collision free at any scale.
func FormatRollNumber(prefix string, year int, applicationID int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, applicationID)
}
