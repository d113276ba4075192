package rpc

import (
	"assistant-tools/internal/model"
	"assistant-tools/internal/rpc"
	"assistant-tools/internal/task"
)

// processCreateReq decodes create_task arguments. A missing title is left
// for the use case to reject.
func (h *handler) processCreateReq(args rpc.Args) (task.CreateTaskInput, error) {
	var in task.CreateTaskInput
	var err error

	if in.Title, _, err = args.NonEmptyString("title"); err != nil {
		return in, err
	}
	if in.Description, err = args.NullableString("description"); err != nil {
		return in, err
	}
	if in.DueDate, _, err = args.NonEmptyString("due_date"); err != nil {
		return in, err
	}
	if in.Priority, _, err = args.NonEmptyString("priority"); err != nil {
		return in, err
	}
	if args.Has("completed") && !args.IsNull("completed") {
		if in.Completed, err = args.Bool("completed"); err != nil {
			return in, err
		}
	}
	if in.Assignee, err = args.NullableString("assignee"); err != nil {
		return in, err
	}
	if in.Tags, err = args.StringList("tags"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *handler) processListReq(args rpc.Args) (task.ListTasksInput, error) {
	var in task.ListTasksInput
	var err error

	if args.Has("completed") && !args.IsNull("completed") {
		completed, err := args.Bool("completed")
		if err != nil {
			return in, err
		}
		in.Completed = model.Some(completed)
	}
	for key, dst := range map[string]*model.Optional[string]{
		"priority": &in.Priority,
		"tag":      &in.Tag,
	} {
		if !args.Has(key) || args.IsNull(key) {
			continue
		}
		v, err := args.String(key)
		if err != nil {
			return in, err
		}
		*dst = model.Some(v)
	}
	if args.Has("assignee") {
		assignee, err := args.NullableString("assignee")
		if err != nil {
			return in, err
		}
		in.Assignee = model.Some(assignee)
	}

	if in.DueDateBefore, _, err = args.NonEmptyString("due_date_before"); err != nil {
		return in, err
	}
	if in.DueDateAfter, _, err = args.NonEmptyString("due_date_after"); err != nil {
		return in, err
	}
	if in.SortBy, _, err = args.NonEmptyString("sort_by"); err != nil {
		return in, err
	}
	if in.SortDir, _, err = args.NonEmptyString("sort_dir"); err != nil {
		return in, err
	}
	return in, nil
}

// processUpdateReq keeps only the keys present in args. A null due_date
// clears it.
func (h *handler) processUpdateReq(args rpc.Args) (task.UpdateTaskInput, error) {
	in := task.UpdateTaskInput{ID: args.Text("id")}

	for key, dst := range map[string]*model.Optional[string]{
		"title":    &in.Title,
		"priority": &in.Priority,
	} {
		if !args.Has(key) {
			continue
		}
		v, err := args.String(key)
		if err != nil {
			return in, err
		}
		*dst = model.Some(v)
	}

	for key, dst := range map[string]*model.Optional[*string]{
		"description": &in.Description,
		"assignee":    &in.Assignee,
	} {
		if !args.Has(key) {
			continue
		}
		v, err := args.NullableString(key)
		if err != nil {
			return in, err
		}
		*dst = model.Some(v)
	}

	if args.Has("due_date") {
		due, _, err := args.NonEmptyString("due_date")
		if err != nil {
			return in, err
		}
		in.DueDate = model.Some(due)
	}
	if args.Has("completed") && !args.IsNull("completed") {
		completed, err := args.Bool("completed")
		if err != nil {
			return in, err
		}
		in.Completed = model.Some(completed)
	}
	if args.Has("tags") {
		tags, err := args.StringList("tags")
		if err != nil {
			return in, err
		}
		in.Tags = model.Some(tags)
	}

	return in, nil
}
