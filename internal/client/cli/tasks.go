package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// ListTasks prints every task, checkbox style.
func (a *App) ListTasks(ctx context.Context) error {
	tasks := a.store.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks. Try 'addtask' or 'plan'.")
		return nil
	}
	for _, t := range tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s (%s)", box, t.ID, t.Title, t.Priority)
		if t.Subject != "" {
			line += " #" + t.Subject
		}
		if t.DueDate != nil {
			line += " due " + t.DueDate.Format("2006-01-02")
		}
		fmt.Println(line)
	}
	return nil
}

// AddTask interactively creates a task.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Println("Nothing to add.")
		return nil
	}

	priority, err := getSimpleText(a.reader, "Priority (LOW/MEDIUM/HIGH, default MEDIUM)", os.Stdout)
	if err != nil {
		return err
	}

	task := models.Task{
		Title:    title,
		Priority: models.Priority(strings.ToUpper(priority)),
	}

	created, err := a.store.CreateTask(ctx, task)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Printf("Added task %s\n", created.ID)
	return nil
}

// ToggleTask flips a task's completion. The checkbox flips immediately and
// flips back if the collaborator rejects the change.
func (a *App) ToggleTask(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Task id to toggle", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.ToggleTask(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// DeleteTask removes a task; on collaborator failure the list is refetched.
func (a *App) DeleteTask(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Task id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeleteTask(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// Plan asks the AI planner to break a study goal into tasks and saves each
// suggested task through the synchronizer.
func (a *App) Plan(ctx context.Context) error {
	goal, err := getSimpleText(a.reader, "What do you want to learn or achieve?", os.Stdout)
	if err != nil {
		return err
	}
	if goal == "" {
		return nil
	}

	timeframe, err := getSimpleText(a.reader, "Timeframe (e.g. '2 weeks')", os.Stdout)
	if err != nil {
		return err
	}

	gen, err := a.generator(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	plan, err := gen.GenerateStudyPlan(ctx, goal, timeframe)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	if len(plan.Tasks) == 0 {
		fmt.Println("The planner came back empty, try rephrasing the goal.")
		return nil
	}

	for _, st := range plan.Tasks {
		task := models.Task{Title: st.Title, Priority: st.Priority, Subject: st.Subject}
		created, err := a.store.CreateTask(ctx, task)
		if err != nil {
			log.Printf("Error saving %q: %s", st.Title, err.Error())
			continue
		}
		fmt.Printf("Added %s: %s\n", created.ID, created.Title)
	}
	return nil
}
