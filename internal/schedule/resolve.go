package schedule

// Resolver decides whether a task is visible for the selected day.
type Resolver struct {
	Mode MatchMode
}

// Resolve returns task and true when it belongs to selected. Absence is
// a normal outcome, not an error.
func (r Resolver) Resolve(selected DayDescriptor, task Task) (Task, bool) {
	switch r.Mode {
	case MatchFullDate:
		if !task.HasDate() || selected.Date.IsZero() {
			return Task{}, false
		}
		if SameDay(selected.Date, task.Date) {
			return task, true
		}
	default:
		if selected.Day == task.Day {
			return task, true
		}
	}
	return Task{}, false
}

// Plan maps day keys to tasks. Keys are unique under the plan's match mode.
type Plan struct {
	mode  MatchMode
	tasks map[string]Task
	order []string
}

// NewPlan builds a plan from tasks. Two tasks with the same key are
// rejected with ErrDuplicateTask.
func NewPlan(mode MatchMode, tasks ...Task) (*Plan, error) {
	p := &Plan{
		mode:  mode,
		tasks: make(map[string]Task, len(tasks)),
	}

	for _, t := range tasks {
		key, err := taskKey(mode, t)
		if err != nil {
			return nil, err
		}
		if _, exists := p.tasks[key]; exists {
			return nil, &duplicateTaskError{key: key}
		}
		p.tasks[key] = t
		p.order = append(p.order, key)
	}

	return p, nil
}

// Mode returns the plan's match mode.
func (p *Plan) Mode() MatchMode {
	return p.mode
}

// Len returns the number of tasks in the plan.
func (p *Plan) Len() int {
	return len(p.tasks)
}

// Tasks returns the tasks in insertion order.
func (p *Plan) Tasks() []Task {
	out := make([]Task, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, p.tasks[k])
	}
	return out
}

// Lookup returns the task for the selected day, if any.
func (p *Plan) Lookup(selected DayDescriptor) (Task, bool) {
	if p == nil {
		return Task{}, false
	}
	t, ok := p.tasks[dayKey(p.mode, selected)]
	if !ok {
		return Task{}, false
	}
	// Same rule as Resolve so the two can never disagree.
	return Resolver{Mode: p.mode}.Resolve(selected, t)
}

// HasTask reports whether any task falls on day.
func (p *Plan) HasTask(day DayDescriptor) bool {
	_, ok := p.Lookup(day)
	return ok
}

type duplicateTaskError struct {
	key string
}

func (e *duplicateTaskError) Error() string {
	return ErrDuplicateTask.Error() + " " + e.key
}

func (e *duplicateTaskError) Unwrap() error {
	return ErrDuplicateTask
}
