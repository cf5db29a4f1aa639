package workers

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers collects the given workers into one runnable aggregate.
func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
