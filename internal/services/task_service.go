package services

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger

	// A single mutex guards every read and mutation. The collection
	// makes no ordering or atomicity guarantees beyond that.
	mu    sync.Mutex
	tasks []*models.Task
}

func NewTaskService(logger zerolog.Logger) TaskService {
	return &taskServiceImpl{
		logger: logger,
	}
}

func (s *taskServiceImpl) AddTask(params AddTaskParams) (*models.Task, error) {
	task, err := models.NewTask(params.Title, params.Description, params.Priority)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("priority", params.Priority).
			Msg("failed to create task")
		return nil, err
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.logger.Debug().
		Str("task_id", task.ID).
		Str("priority", task.Priority).
		Msg("appended task")

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("added task")
	return task, nil
}

func (s *taskServiceImpl) ListAllTasks() []*models.Task {
	s.mu.Lock()
	tasks := make([]*models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("listed all tasks")
	return tasks
}

func (s *taskServiceImpl) MarkComplete(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == taskID {
			task.MarkComplete()
			s.logger.Info().
				Str("task_id", taskID).
				Msg("marked task complete")
			return true
		}
	}

	s.logger.Info().
		Str("task_id", taskID).
		Msg("task not found")
	return false
}

func (s *taskServiceImpl) DeleteTask(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.logger.Info().
				Str("task_id", taskID).
				Msg("deleted task")
			return true
		}
	}

	s.logger.Info().
		Str("task_id", taskID).
		Msg("task not found")
	return false
}

func (s *taskServiceImpl) FilterByPriority(priority string) []*models.Task {
	priority = strings.ToLower(priority)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stored priorities are already lowercase, see models.NewTask.
	var matched []*models.Task
	for _, task := range s.tasks {
		if task.Priority == priority {
			matched = append(matched, task)
		}
	}

	s.logger.Debug().
		Int("count", len(matched)).
		Str("priority", priority).
		Msg("filtered tasks by priority")
	return matched
}

func (s *taskServiceImpl) SearchByKeyword(keyword string) []*models.Task {
	keyword = strings.ToLower(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()

	// An empty keyword is a substring of everything
	// and therefore matches every task.
	var matched []*models.Task
	for _, task := range s.tasks {
		if strings.Contains(strings.ToLower(task.Title), keyword) ||
			strings.Contains(strings.ToLower(task.Description), keyword) {
			matched = append(matched, task)
		}
	}

	s.logger.Debug().
		Int("count", len(matched)).
		Str("keyword", keyword).
		Msg("searched tasks by keyword")
	return matched
}
