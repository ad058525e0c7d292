package models

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTask_NormalizesPriority(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"high", "high"},
		{"High", "high"},
		{"HIGH", "high"},
		{"MEDIUM", "medium"},
		{"mEdIuM", "medium"},
		{"low", "low"},
		{"LOW", "low"},
	}

	for _, tc := range cases {
		task, err := NewTask("Title", "Description", tc.input)
		if err != nil {
			t.Fatalf("NewTask(%q): %v", tc.input, err)
		}
		if task.Priority != tc.want {
			t.Errorf("Priority = %q, want %q", task.Priority, tc.want)
		}
	}
}

func TestNewTask_InvalidPriority(t *testing.T) {
	for _, priority := range []string{"urgent", "", "hig", "critical", " high"} {
		task, err := NewTask("Title", "Description", priority)
		if !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("NewTask(%q) error = %v, want ErrInvalidPriority", priority, err)
		}
		if task != nil {
			t.Errorf("NewTask(%q) returned a task on invalid priority", priority)
		}
	}
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("Title", "Description", "medium")
	if err != nil {
		t.Fatal(err)
	}

	if task.Completed {
		t.Error("Completed = true, want false at creation")
	}
	if task.ID == "" {
		t.Error("ID is empty, want a generated identifier")
	}
	if task.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want the creation timestamp")
	}

	other, err := NewTask("Title", "Description", "medium")
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == task.ID {
		t.Errorf("two tasks share the ID %q", task.ID)
	}
}

func TestMarkComplete_Idempotent(t *testing.T) {
	task, err := NewTask("Title", "Description", "low")
	if err != nil {
		t.Fatal(err)
	}

	task.MarkComplete()
	if !task.Completed {
		t.Fatal("Completed = false after MarkComplete")
	}

	task.MarkComplete()
	if !task.Completed {
		t.Error("Completed = false after second MarkComplete")
	}
}

func TestString_StatusGlyph(t *testing.T) {
	task, err := NewTask("Write report", "Quarterly report", "high")
	if err != nil {
		t.Fatal(err)
	}

	pending := task.String()
	if !strings.Contains(pending, "○") {
		t.Errorf("String() = %q, want pending glyph ○", pending)
	}
	if !strings.Contains(pending, "Write report") || !strings.Contains(pending, "high") {
		t.Errorf("String() = %q, want title and priority", pending)
	}

	task.MarkComplete()
	completed := task.String()
	if !strings.Contains(completed, "✓") {
		t.Errorf("String() = %q, want completed glyph ✓", completed)
	}
	if completed == pending {
		t.Error("completed and pending renderings are identical")
	}
}

func TestFormatTasks(t *testing.T) {
	if got := FormatTasks(nil); got != "No tasks found.\n" {
		t.Errorf("FormatTasks(nil) = %q, want %q", got, "No tasks found.\n")
	}

	first, err := NewTask("First", "Desc 1", "high")
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewTask("Second", "Desc 2", "low")
	if err != nil {
		t.Fatal(err)
	}

	got := FormatTasks([]*Task{first, second})
	if !strings.Contains(got, "1. "+first.String()) {
		t.Errorf("FormatTasks() = %q, want numbered first task", got)
	}
	if !strings.Contains(got, "2. "+second.String()) {
		t.Errorf("FormatTasks() = %q, want numbered second task", got)
	}
}
