package parser

import (
	"regexp"
	"strings"
	"time"
)

// ParsedTask is a task line parsed from natural syntax.
type ParsedTask struct {
	Title    string
	Priority int // 0 = not specified
	DueDate  *time.Time
	Errors   []string
}

var (
	priorityRegex = regexp.MustCompile(`(^|\s)!(low|medium|med|high|[1-3])\b`)
	dueRegex      = regexp.MustCompile(`(^|\s)due:(\S+)`)
	spaceRegex    = regexp.MustCompile(`\s+`)
)

// ParseTaskLine extracts metadata from a task line using inline syntax:
//
//	"Past paper Q1-Q3 !high due:tomorrow"
//
// !1..!3 (or !low/!medium/!high) sets priority; due:<spec> accepts the
// same formats as ParseDueDate. Remaining text is the title.
func ParseTaskLine(input string, today time.Time) ParsedTask {
	result := ParsedTask{Errors: []string{}}

	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 2 {
		result.Priority = ParsePriority(matches[2])
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 2 {
		due, err := ParseDueDate(matches[2], today)
		if err != nil {
			result.Errors = append(result.Errors, "invalid due date: "+matches[2])
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	result.Title = strings.TrimSpace(spaceRegex.ReplaceAllString(input, " "))
	return result
}

// ParsePriority converts a priority word or digit to 1..3, or 0 when it
// is empty or unrecognized.
func ParsePriority(p string) int {
	switch strings.ToLower(p) {
	case "low", "1":
		return 1
	case "medium", "med", "2":
		return 2
	case "high", "3":
		return 3
	}
	return 0
}
