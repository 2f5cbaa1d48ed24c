package views

import (
	"context"
	"fmt"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

// TasksView.Original maps task id to the completed state
// the tasks form is rendered from.
type TasksView struct {
	Failed   bool
	Tasks    []backend.DailyTask
	Stats    aggregate.TaskStats
	Original map[int]bool
}

// TaskChange is a task as submitted by the tasks form,
// Was holds the state the form was rendered with.
type TaskChange struct {
	ID   int
	Task string
	Was  bool
	Now  bool
}

type Tasks struct {
	backend   Backend
	observers []SubmissionObserver
}

func NewTasks(b Backend, observers ...SubmissionObserver) *Tasks {
	return &Tasks{
		backend:   b,
		observers: observers,
	}
}

func (t *Tasks) Load(ctx context.Context, pc *PageContext) TasksView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.tasks.load")
	defer span.End()

	tasks, _ := t.backend.Tasks(ctx, pc.Notices)
	original := make(map[int]bool, len(tasks))
	for _, task := range tasks {
		original[task.ID] = task.Completed
	}

	return TasksView{
		Tasks:    tasks,
		Stats:    aggregate.TaskCompletion(tasks),
		Original: original,
	}
}

// Update patches every task whose state changed. All changed tasks are
// attempted; the submission fails if any of them fails.
func (t *Tasks) Update(ctx context.Context, pc *PageContext, changes []TaskChange) (TasksView, bool) {
	var view TasksView
	ok := NewSubmission(PageTasks, t.observers...).Run(ctx, pc, MsgTasksUpdated,
		func(ctx context.Context, n backend.Notifier) bool {
			return t.patchChanged(ctx, n, changes)
		},
		func(ctx context.Context) {
			view = t.Load(ctx, pc)
		},
	)
	if !ok {
		view = t.failedView(ctx, pc, changes)
	}

	return view, ok
}

// failedView shows the tasks as the backend holds them, with the checkboxes
// as submitted. Original stays the backend state, so submitting again only
// patches what still differs.
func (t *Tasks) failedView(ctx context.Context, pc *PageContext, changes []TaskChange) TasksView {
	view := t.Load(ctx, pc)
	view.Failed = true

	if len(view.Tasks) == 0 {
		for _, c := range changes {
			view.Tasks = append(view.Tasks, backend.DailyTask{ID: c.ID, Task: c.Task, Completed: c.Now})
			view.Original[c.ID] = c.Was
		}
		return view
	}

	submitted := make(map[int]bool, len(changes))
	for _, c := range changes {
		submitted[c.ID] = c.Now
	}
	for i := range view.Tasks {
		if completed, ok := submitted[view.Tasks[i].ID]; ok {
			view.Tasks[i].Completed = completed
		}
	}

	return view
}

func (t *Tasks) patchChanged(ctx context.Context, n backend.Notifier, changes []TaskChange) bool {
	changed, updated := 0, 0
	for _, c := range changes {
		if c.Was == c.Now {
			continue
		}
		changed++
		if t.backend.SetTaskCompleted(ctx, n, c.ID, c.Now) {
			updated++
		}
	}

	if updated < changed {
		if updated > 0 {
			n.Notify(backend.InfoNotice(fmt.Sprintf("Updated %d of %d changed tasks.", updated, changed)))
		}
		return false
	}

	return true
}
