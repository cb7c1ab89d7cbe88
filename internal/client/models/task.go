package models

import "time"

// Priority is the enumerated task priority.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// SubTask is one step of a decomposed task.
type SubTask struct {
	ID               string `json:"id,omitempty"`
	Title            string `json:"title"`
	Completed        bool   `json:"completed"`
	EstimatedMinutes int    `json:"estimatedMinutes,omitempty"`
}

// Task is a to-do item, optionally produced by the study planner.
type Task struct {
	ID        string     `json:"id,omitempty"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Priority  Priority   `json:"priority"`
	Subject   string     `json:"subject,omitempty"`
	Subtasks  []SubTask  `json:"subtasks,omitempty"`
}
