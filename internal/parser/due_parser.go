package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDueDate parses a due date relative to today. Supported formats:
// - yyyy-mm-dd (e.g. "2026-09-15")
// - dd/mm/yyyy (e.g. "15/09/2026")
// - "today", "tomorrow"
// - X days / X weeks (e.g. "3 days", "2weeks")
//
// The result is a calendar date at UTC midnight; due dates carry no time
// of day.
func ParseDueDate(input string, today time.Time) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)
	today = midnightUTC(today)

	switch strings.ToLower(input) {
	case "today":
		return &today, nil
	case "tomorrow":
		d := today.AddDate(0, 0, 1)
		return &d, nil
	}

	if due, err := parseISODate(input); err == nil {
		return due, nil
	}
	if due, err := parseSlashDate(input); err == nil {
		return due, nil
	}
	if due, err := parseRelative(input, today); err == nil {
		return due, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, or X weeks")
}

func parseISODate(input string) (*time.Time, error) {
	t, err := time.Parse(time.DateOnly, input)
	if err != nil {
		return nil, err
	}
	due := midnightUTC(t)
	return &due, nil
}

var slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

func parseSlashDate(input string) (*time.Time, error) {
	matches := slashDateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	due := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// Rejects impossible dates that time.Date would roll over (e.g. 31/02).
	if due.Day() != day || due.Month() != time.Month(month) || due.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}
	return &due, nil
}

var relativeRegex = regexp.MustCompile(`^(\d+)\s*(day|days|week|weeks)$`)

func parseRelative(input string, today time.Time) (*time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("amount must be a positive number")
	}

	var due time.Time
	switch matches[2] {
	case "day", "days":
		due = today.AddDate(0, 0, amount)
	case "week", "weeks":
		due = today.AddDate(0, 0, amount*7)
	}
	return &due, nil
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
