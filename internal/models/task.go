package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var ErrInvalidPriority = errors.New("priority must be 'high', 'medium', or 'low'")

type Task struct {
	ID          string
	Title       string
	Description string
	Priority    string
	Completed   bool
	CreatedAt   time.Time
}

// NewTask validates and normalizes the priority to lowercase,
// then assigns the task a fresh UUID and a creation timestamp.
//
// It returns ErrInvalidPriority if the lowercased priority
// is not one of PriorityLow, PriorityMedium or PriorityHigh.
func NewTask(title, description, priority string) (*Task, error) {
	priority = strings.ToLower(priority)
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return nil, ErrInvalidPriority
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:          taskUUID.String(),
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}, nil
}

// MarkComplete is idempotent. There is no way to mark
// a completed task as incomplete again.
func (t *Task) MarkComplete() {
	t.Completed = true
}

func (t *Task) String() string {
	status := "○"
	if t.Completed {
		status = "✓"
	}

	return fmt.Sprintf("[%s] %s (Priority: %s) - %s", status, t.Title, t.Priority, t.Description)
}

// FormatTasks renders tasks as a numbered list between horizontal
// rules, suitable for printing to a terminal.
func FormatTasks(tasks []*Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	border := strings.Repeat("=", 60)

	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(border)
	sb.WriteByte('\n')
	for i, task := range tasks {
		_, _ = fmt.Fprintf(&sb, "%d. %s\n", i+1, task)
	}
	sb.WriteString(border)
	sb.WriteString("\n\n")

	return sb.String()
}
