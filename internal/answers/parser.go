// Package answers decomposes the multi-line free-text answers column into
// named columns, handling repeated keys and grade translation.
package answers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skolat/bewerberlisten/internal/config"
)

// Entry is one decomposed (column name, value) pair.
type Entry struct {
	Column string
	Value  string
}

// keySeparator splits a line into key and value. Lines without it carry no
// answer and are dropped.
const keySeparator = ": "

// Parse decomposes a record's answers field into ordered entries.
//
// Each non-blank line of the form "Schlüssel: Wert" yields one entry.
// Repeated keys within the same record are numbered in line order:
//
//	Kunst: 3            -> {"Kunst", "3"}
//	Bewertung: gut      -> {"Bewertung", "gut"}
//	Bewertung: sehr gut -> {"Bewertung (2)", "sehr gut"}
//
// The recognized assessment key is renamed to the configured first/second
// labels (AV/SV) for its first two occurrences, and its value is replaced by
// the numeric grade code when it matches a scale phrase exactly.
func Parse(content string, grading *config.GradingConfig) []Entry {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var entries []Entry
	seen := make(map[string]int)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		idx := strings.Index(line, keySeparator)
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+len(keySeparator):])

		seen[key]++
		count := seen[key]

		var column string
		if key == grading.Key {
			column = gradeColumn(grading, count)
			if code, ok := grading.GradeCode(value); ok {
				value = strconv.Itoa(code)
			}
		} else if count == 1 {
			column = key
		} else {
			column = fmt.Sprintf("%s (%d)", key, count)
		}

		entries = append(entries, Entry{Column: column, Value: value})
	}

	return entries
}

// gradeColumn names the nth occurrence of the assessment key: the configured
// labels for the first two, the short label with a counter beyond that.
func gradeColumn(grading *config.GradingConfig, count int) string {
	switch count {
	case 1:
		return grading.FirstLabel
	case 2:
		return grading.SecondLabel
	default:
		return fmt.Sprintf("%s (%d)", grading.ShortLabel, count)
	}
}
