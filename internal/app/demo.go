package app

import (
	"fmt"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

// RunDemo walks through every task manager feature: adding tasks
// with different priorities, listing, filtering, searching and
// completing them.
func RunDemo() {
	taskService := services.NewTaskService(globalLogger)

	sampleTasks := []services.AddTaskParams{
		{Title: "Complete project", Description: "Finish the task manager project", Priority: models.PriorityHigh},
		{Title: "Review code", Description: "Review pull requests", Priority: models.PriorityMedium},
		{Title: "Update docs", Description: "Update documentation", Priority: models.PriorityLow},
		{Title: "Bug fix", Description: "Fix critical bug in payment system", Priority: models.PriorityHigh},
	}
	for _, params := range sampleTasks {
		_, err := taskService.AddTask(params)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Str("title", params.Title).
				Msg("failed to add sample task")
			panic(err)
		}
	}

	fmt.Println("All Tasks:")
	fmt.Print(models.FormatTasks(taskService.ListAllTasks()))

	fmt.Println("High Priority Tasks:")
	fmt.Print(models.FormatTasks(taskService.FilterByPriority(models.PriorityHigh)))

	fmt.Println("Search results for 'project':")
	fmt.Print(models.FormatTasks(taskService.SearchByKeyword("project")))

	firstTask := taskService.ListAllTasks()[0]
	taskService.MarkComplete(firstTask.ID)

	fmt.Println("After marking first task as complete:")
	fmt.Print(models.FormatTasks(taskService.ListAllTasks()))
}
