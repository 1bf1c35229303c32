package priority

import (
	"regexp"
	"strconv"
)

const (
	// DefaultPriority is the lowest urgency, used whenever no usable
	// annotation is found.
	DefaultPriority = 10

	// MinPriority and MaxPriority bound the derived urgency value.
	MinPriority = 1
	MaxPriority = 10

	// Annotation pattern: "PRIORITY:<integer>" embedded anywhere in a
	// comment, case-insensitive, optional leading minus.
	// Example: "urgent! PRIORITY:2 set by supervisor" → "2"
	annotationPattern = `(?i)PRIORITY:(-?\d+)`
)

var annotationRe = regexp.MustCompile(annotationPattern)

// FromComments derives a task's priority from its free-text annotations.
// Comments are scanned in order; the first PRIORITY:<n> match wins and
// later matches are ignored, even when the first value needed clamping.
// Nil, empty or unannotated comment lists yield DefaultPriority.
func FromComments(comments []string) int {
	for _, c := range comments {
		m := annotationRe.FindStringSubmatch(c)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Out-of-int64-range digits and the like. Treated as
			// no usable value, same as an unannotated task.
			return DefaultPriority
		}
		return clamp(n)
	}
	return DefaultPriority
}

func clamp(n int) int {
	if n < MinPriority {
		return MinPriority
	}
	if n > MaxPriority {
		return MaxPriority
	}
	return n
}
