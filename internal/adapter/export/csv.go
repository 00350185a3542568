// Package export renders task results as CSV, terminal tables or JSON.
package export

import (
	"strconv"
	"strings"

	"classroom/internal/domain"
)

// ColdCallCSV renders a "name" column, one selected name per line.
func ColdCallCSV(names []string) string {
	lines := make([]string, 0, len(names)+1)
	lines = append(lines, "name")
	lines = append(lines, names...)
	return strings.Join(lines, "\n")
}

// AssignmentsCSV renders "name,group" rows with 1-based group numbers.
func AssignmentsCSV(rows []domain.Assignment) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "name,group")
	for _, r := range rows {
		lines = append(lines, r.Name+","+strconv.Itoa(r.Group))
	}
	return strings.Join(lines, "\n")
}

// PairsCSV renders "reviewer,reviewee" rows.
func PairsCSV(pairs []domain.Pair) string {
	lines := make([]string, 0, len(pairs)+1)
	lines = append(lines, "reviewer,reviewee")
	for _, p := range pairs {
		lines = append(lines, p.Reviewer+","+p.Reviewee)
	}
	return strings.Join(lines, "\n")
}
