// Package roster turns pasted or uploaded roster text into entries. Rows it
// cannot use are dropped rather than reported.
package roster

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"classroom/internal/domain"
)

var namesHeader = regexp.MustCompile(`(?i)^"?names?"?$`)

// SplitRows splits text on newline runs, trims each line and drops blank ones.
func SplitRows(text string) []string {
	lines := strings.Split(text, "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// ParseColdCall reads "name,excused" rows. The first row is always treated as
// a header.
func ParseColdCall(text string) []domain.RosterEntry {
	rows := SplitRows(text)
	if len(rows) <= 1 {
		return nil
	}

	entries := make([]domain.RosterEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := strings.Split(row, ",")
		name := cleanName(fields[0])
		if name == "" {
			continue
		}
		excused := false
		if len(fields) > 1 {
			excused = strings.EqualFold(strings.TrimSpace(fields[1]), "true")
		}
		entries = append(entries, domain.RosterEntry{Name: name, Excused: excused})
	}
	return entries
}

// ParseNames reads one bare name per row, skipping a leading "name" or
// "names" header. Commas inside a row are part of the name.
func ParseNames(text string) []string {
	rows := SplitRows(text)
	if len(rows) == 0 {
		return nil
	}
	if namesHeader.MatchString(rows[0]) {
		rows = rows[1:]
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, cleanName(row))
	}
	return names
}

// ParsePreferences reads "name,preferences..." rows, splitting on the first
// comma only. A first row mentioning both "name" and "preference" is a header.
func ParsePreferences(text string) []domain.PreferenceEntry {
	rows := SplitRows(text)
	if len(rows) == 0 {
		return nil
	}
	if isPreferenceHeader(rows[0]) {
		rows = rows[1:]
	}

	entries := make([]domain.PreferenceEntry, 0, len(rows))
	for _, row := range rows {
		name, prefs, _ := strings.Cut(row, ",")
		name = cleanName(name)
		if name == "" {
			continue
		}
		entries = append(entries, domain.PreferenceEntry{
			Name:        name,
			Preferences: strings.TrimSpace(prefs),
		})
	}
	return entries
}

func isPreferenceHeader(row string) bool {
	lower := strings.ToLower(row)
	return strings.Contains(lower, "name") && strings.Contains(lower, "preference")
}

func cleanName(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}
