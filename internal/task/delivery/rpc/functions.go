package rpc

import "assistant-tools/internal/rpc"

const (
	FuncCreateTask     = "create_task"
	FuncGetTasks       = "get_tasks"
	FuncGetTask        = "get_task"
	FuncUpdateTask     = "update_task"
	FuncDeleteTask     = "delete_task"
	FuncMarkCompleted  = "mark_completed"
	FuncGetTaskSummary = "get_task_summary"
)

const (
	typeString  = "string"
	typeBoolean = "boolean"
	dueDateFmt  = "YYYY-MM-DD, or 'today', 'tomorrow', 'next week'"
)

// RegisterFunctions adds the task functions to r.
func RegisterFunctions(r *rpc.Registry, h *handler) {
	r.Register(
		rpc.Function{
			Name:        FuncCreateTask,
			Description: "Create a task. Priority defaults to medium.",
			Params: []rpc.Param{
				{Name: "title", Type: typeString, Description: "Task title", Required: true},
				{Name: "description", Type: typeString, Description: "Task description"},
				{Name: "due_date", Type: typeString, Description: "Due date: " + dueDateFmt},
				{Name: "priority", Type: typeString, Description: "high, medium or low"},
				{Name: "completed", Type: typeBoolean, Description: "Initial completion state"},
				{Name: "assignee", Type: typeString, Description: "Person responsible"},
				{Name: "tags", Type: typeString, Description: "Comma separated tags"},
			},
			Handler: h.CreateTask,
		},
		rpc.Function{
			Name:        FuncGetTasks,
			Description: "List tasks with optional filters and sorting.",
			Params: []rpc.Param{
				{Name: "completed", Type: typeBoolean, Description: "Filter by completion"},
				{Name: "priority", Type: typeString, Description: "Filter by priority"},
				{Name: "assignee", Type: typeString, Description: "Filter by assignee"},
				{Name: "tag", Type: typeString, Description: "Filter by tag"},
				{Name: "due_date_before", Type: typeString, Description: "Due on or before: " + dueDateFmt},
				{Name: "due_date_after", Type: typeString, Description: "Due on or after: " + dueDateFmt},
				{Name: "sort_by", Type: typeString, Description: "due_date, priority or created_at (default)"},
				{Name: "sort_dir", Type: typeString, Description: "asc or desc (default)"},
			},
			Handler: h.GetTasks,
		},
		rpc.Function{
			Name:        FuncGetTask,
			Description: "Get a single task by ID.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Task ID", Required: true},
			},
			Handler: h.GetTask,
		},
		rpc.Function{
			Name:        FuncUpdateTask,
			Description: "Update the supplied fields of a task.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Task ID", Required: true},
				{Name: "title", Type: typeString, Description: "New title"},
				{Name: "description", Type: typeString, Description: "New description"},
				{Name: "due_date", Type: typeString, Description: "New due date: " + dueDateFmt},
				{Name: "priority", Type: typeString, Description: "New priority"},
				{Name: "completed", Type: typeBoolean, Description: "New completion state"},
				{Name: "assignee", Type: typeString, Description: "New assignee"},
				{Name: "tags", Type: typeString, Description: "Comma separated tags"},
			},
			Handler: h.UpdateTask,
		},
		rpc.Function{
			Name:        FuncDeleteTask,
			Description: "Delete a task by ID.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Task ID", Required: true},
			},
			Handler: h.DeleteTask,
		},
		rpc.Function{
			Name:        FuncMarkCompleted,
			Description: "Mark a task as completed.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Task ID", Required: true},
			},
			Handler: h.MarkCompleted,
		},
		rpc.Function{
			Name:        FuncGetTaskSummary,
			Description: "Summarize tasks by completion, priority and due date.",
			Handler:     h.GetTaskSummary,
		},
	)
}
