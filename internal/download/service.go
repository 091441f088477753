package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/deeptube/internal/model"
)

// eventBuffer is the capacity of a task's event channel
const eventBuffer = 16

// Service runs background fetch tasks on top of an Engine
type Service struct {
	engine     Engine
	tasks      map[string]*model.FetchTask
	tasksMutex sync.RWMutex
	log        *zap.SugaredLogger
}

// NewService creates a new download service
func NewService(engine Engine, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.S()
	}
	return &Service{
		engine: engine,
		tasks:  make(map[string]*model.FetchTask),
		log:    log.Named("download"),
	}
}

// Start launches one fetch in its own goroutine and returns its event stream.
// The stream carries progress events in engine order, then exactly one
// FinishedEvent, then closes. There is no way to stop a started task.
func (s *Service) Start(url string, cfg FetchConfig) <-chan Event {
	task := &model.FetchTask{
		ID:         generateTaskID(),
		URL:        url,
		Status:     model.TaskStatusPending,
		OutputPath: cfg.OutputTemplate,
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	events := make(chan Event, eventBuffer)
	go s.runTask(task, cfg, events)
	return events
}

// GetTask returns a task record by ID
func (s *Service) GetTask(id string) (*model.FetchTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// ActiveCount returns the number of tasks that have not produced an outcome yet
func (s *Service) ActiveCount() int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	count := 0
	for _, task := range s.tasks {
		if task.Status.IsActive() {
			count++
		}
	}
	return count
}

// runTask performs the engine call and emits the task's events
func (s *Service) runTask(task *model.FetchTask, cfg FetchConfig, events chan<- Event) {
	defer close(events)

	log := s.log.With("task_id", task.ID, "url", task.URL, "output", cfg.OutputTemplate)

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusDownloading
	task.StartedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Infow("fetch started", "format", cfg.Format)

	// finished guards against progress callbacks arriving after the outcome
	var emitMutex sync.Mutex
	finished := false

	onProgress := func(sample Sample) {
		emitMutex.Lock()
		defer emitMutex.Unlock()
		if finished {
			return
		}
		if percent, ok := sample.Percent(); ok {
			s.tasksMutex.Lock()
			task.Percent = percent
			s.tasksMutex.Unlock()
		}
		events <- ProgressEvent{ID: task.ID, Sample: sample}
	}

	outcome := s.fetch(task.URL, cfg, onProgress)

	emitMutex.Lock()
	finished = true
	emitMutex.Unlock()

	s.tasksMutex.Lock()
	task.FinishedAt = time.Now()
	if outcome.Succeeded() {
		task.Status = model.TaskStatusCompleted
		task.Percent = 100
		if outcome.OutputPath != "" {
			task.OutputPath = outcome.OutputPath
		}
	} else {
		task.Status = model.TaskStatusError
		task.LastError = outcome.Message
	}
	duration := task.Duration()
	s.tasksMutex.Unlock()

	if outcome.Succeeded() {
		log.Infow("fetch completed", "duration", duration, "file", outcome.OutputPath)
	} else {
		log.Errorw("fetch failed", "duration", duration, "error", outcome.Message)
	}

	events <- FinishedEvent{ID: task.ID, Outcome: outcome}
}

// fetch calls the engine and normalizes every failure, panics included,
// into an error outcome
func (s *Service) fetch(url string, cfg FetchConfig, onProgress ProgressFunc) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Failure(fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	output, err := s.engine.Fetch(context.Background(), url, cfg, onProgress)
	if err != nil {
		return Failure(err.Error())
	}
	if output == "" {
		output = cfg.OutputTemplate
	}
	return Success(output)
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
