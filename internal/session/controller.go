package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/deeptube/internal/download"
	"github.com/ytget/deeptube/internal/model"
)

var (
	ErrBusy          = errors.New("a download is already in progress")
	ErrEmptyURL      = errors.New("no URL entered")
	ErrNoDestination = errors.New("no destination chosen")
)

// TaskLookup is implemented by fetchers that keep task records
type TaskLookup interface {
	GetTask(id string) (*model.FetchTask, bool)
}

// Form is a snapshot of the user's current selections
type Form struct {
	URL         string
	Mode        model.Mode
	Quality     string
	AudioFormat string
	VideoFormat string
}

// Notice identifies a user-facing message; the view renders it in the active language
type Notice string

const (
	NoticeEnterURL         Notice = "enter_url"
	NoticePathNotSpecified Notice = "path_not_specified"
	NoticeBusy             Notice = "busy"
)

// View is the interactive surface driven by the controller. All methods are
// called on the UI thread.
type View interface {
	// Form returns the current selections
	Form() Form
	// ChooseDestination prompts for a save path and calls back with it
	// ("" when the prompt was cancelled)
	ChooseDestination(callback func(path string))
	// SetVideoControlsEnabled toggles the quality and video-container selectors
	SetVideoControlsEnabled(enabled bool)
	// SetBusy disables the download action while a fetch is running
	SetBusy(busy bool)
	ShowProgress(percent float64)
	HideProgress()
	ShowWarning(notice Notice)
	ShowSuccess(outputPath string)
	ShowError(message string)
	// Do runs fn on the UI thread
	Do(fn func())
}

// Controller turns form state into one fetch at a time and reflects its events
type Controller struct {
	view           View
	fetcher        download.Fetcher
	ffmpegLocation string
	log            *zap.SugaredLogger

	mutex sync.Mutex
	state model.SessionState
	wg    sync.WaitGroup
}

// NewController creates a controller. ffmpegLocation is passed to every fetch.
func NewController(view View, fetcher download.Fetcher, ffmpegLocation string, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.S()
	}
	return &Controller{
		view:           view,
		fetcher:        fetcher,
		ffmpegLocation: ffmpegLocation,
		log:            log.Named("session"),
		state:          model.SessionIdle,
	}
}

// State returns the current session state
func (c *Controller) State() model.SessionState {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

// SetMode reacts to the mode toggle
func (c *Controller) SetMode(mode model.Mode) {
	c.view.SetVideoControlsEnabled(mode != model.ModeAudioOnly)
}

// Submit reads the form, asks for a destination and starts a fetch.
// The returned error reports synchronous rejections; a cancelled destination
// prompt is reported to the user from the prompt callback.
func (c *Controller) Submit() error {
	c.mutex.Lock()
	if c.state != model.SessionIdle {
		c.mutex.Unlock()
		c.log.Warnw("submission rejected while busy", "state", c.state)
		c.view.ShowWarning(NoticeBusy)
		return ErrBusy
	}
	c.state = model.SessionConfiguring
	c.mutex.Unlock()

	form := c.view.Form()
	form.URL = strings.TrimSpace(form.URL)
	if form.URL == "" {
		c.setState(model.SessionIdle)
		c.view.ShowWarning(NoticeEnterURL)
		return ErrEmptyURL
	}

	c.view.ChooseDestination(func(path string) {
		if err := c.begin(form, path); err != nil {
			c.log.Infow("submission not started", "error", err)
		}
	})
	return nil
}

// begin builds the request and configuration and starts the fetch
func (c *Controller) begin(form Form, destination string) error {
	if strings.TrimSpace(destination) == "" {
		c.setState(model.SessionIdle)
		c.view.ShowWarning(NoticePathNotSpecified)
		return ErrNoDestination
	}

	req := model.Request{
		URL:         form.URL,
		Mode:        form.Mode,
		Quality:     form.Quality,
		AudioFormat: form.AudioFormat,
		VideoFormat: form.VideoFormat,
		Destination: destination,
	}

	cfg, err := download.BuildFetchConfig(req, c.ffmpegLocation)
	if err != nil {
		c.setState(model.SessionIdle)
		c.view.ShowError(err.Error())
		return err
	}

	c.setState(model.SessionRunning)
	c.view.SetBusy(true)
	c.view.ShowProgress(0)

	c.log.Infow("starting fetch",
		"url", req.URL,
		"mode", req.Mode,
		"format", cfg.Format,
		"output", cfg.OutputTemplate,
	)

	events := c.fetcher.Start(req.URL, cfg)
	c.wg.Add(1)
	go c.relay(events)
	return nil
}

// relay forwards task events to the UI thread in the order they arrive
func (c *Controller) relay(events <-chan download.Event) {
	defer c.wg.Done()
	for event := range events {
		switch e := event.(type) {
		case download.ProgressEvent:
			c.view.Do(func() { c.OnProgress(e.Sample) })
		case download.FinishedEvent:
			c.logTask(e.TaskID())
			c.view.Do(func() { c.OnFinished(e.Outcome) })
		default:
			c.log.Warnw("unexpected task event", "event", fmt.Sprintf("%T", event))
		}
	}
}

// logTask records the finished task when the fetcher keeps task records
func (c *Controller) logTask(id string) {
	lookup, ok := c.fetcher.(TaskLookup)
	if !ok {
		return
	}
	task, ok := lookup.GetTask(id)
	if !ok || !task.Status.IsFinished() {
		return
	}
	c.log.Infow("task finished",
		"task_id", task.ID,
		"file", task.GetDisplayName(),
		"status", task.Status,
		"duration", task.Duration(),
	)
}

// OnProgress updates the indicator; samples that cannot be read are ignored
func (c *Controller) OnProgress(sample download.Sample) {
	if c.State() != model.SessionRunning {
		return
	}
	percent, ok := sample.Percent()
	if !ok {
		c.log.Debugw("ignoring malformed progress sample", "text", sample.Text)
		return
	}
	c.view.ShowProgress(percent)
}

// OnFinished reflects the terminal outcome and returns to Idle
func (c *Controller) OnFinished(outcome download.Outcome) {
	if c.State() != model.SessionRunning {
		c.log.Warnw("outcome received while not running", "status", outcome.Status)
		return
	}

	c.view.HideProgress()
	if outcome.Succeeded() {
		c.setState(model.SessionSucceeded)
		c.view.ShowSuccess(outcome.OutputPath)
	} else {
		c.setState(model.SessionFailed)
		c.view.ShowError(outcome.Message)
	}

	c.setState(model.SessionIdle)
	c.view.SetBusy(false)
}

// Wait blocks until every started fetch has delivered its outcome
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) setState(next model.SessionState) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if !c.state.CanTransition(next) {
		c.log.Warnw("unexpected state transition", "from", c.state, "to", next)
	}
	c.state = next
}
