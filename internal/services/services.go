package services

import (
	"github.com/adanyl0v/go-task-manager/internal/models"
)

type TaskService interface {
	// AddTask validates the priority, creates a task and
	// appends it to the collection.
	//
	// It returns models.ErrInvalidPriority if the priority
	// is not a valid priority level in any letter case.
	AddTask(params AddTaskParams) (*models.Task, error)

	// ListAllTasks returns every task in insertion order.
	//
	// The returned slice is a copy, appending to it or removing
	// from it doesn't affect the collection. The tasks themselves
	// are shared.
	ListAllTasks() []*models.Task

	// MarkComplete marks the task with the given ID as completed.
	//
	// It reports whether a task with that ID was found. An unknown
	// ID is an expected outcome, not an error.
	MarkComplete(taskID string) bool

	// DeleteTask removes the task with the given ID, preserving
	// the relative order of the remaining tasks.
	//
	// It reports whether a task with that ID was found.
	DeleteTask(taskID string) bool

	// FilterByPriority returns all tasks with the given priority,
	// compared case-insensitively, in insertion order.
	//
	// The priority is not validated. An unrecognized
	// value simply matches nothing.
	FilterByPriority(priority string) []*models.Task

	// SearchByKeyword returns all tasks whose title or description
	// contains the keyword, compared case-insensitively, in
	// insertion order.
	//
	// An empty keyword matches every task.
	SearchByKeyword(keyword string) []*models.Task
}

type AddTaskParams struct {
	Title       string
	Description string
	Priority    string
}
