package models

// Status is the kanban-style stage shared by topics and tasks.
type Status string

const (
	StatusTodo  Status = "TODO"
	StatusDoing Status = "DOING"
	StatusDone  Status = "DONE"
)

// OpenStatuses are the statuses that count as pending work.
var OpenStatuses = []Status{StatusTodo, StatusDoing}

// Valid reports whether s is one of the known stages.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}
