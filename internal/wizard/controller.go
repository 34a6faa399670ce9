package wizard

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/onboard/internal/models"
)

// Recorder receives the selections each time a session reaches the summary.
type Recorder interface {
	Record(topics, newsletters []string) error
}

// Controller owns one session: its [State] and the two read-only datasets.
type Controller struct {
	state       *State
	topics      models.Dataset
	newsletters models.Dataset
	recorder    Recorder
	logger      *log.Logger
}

// Option configures a [Controller].
type Option func(*Controller)

// WithRecorder records a submission on every transition into the summary.
// Recording errors are logged to logger and otherwise ignored.
func WithRecorder(r Recorder, logger *log.Logger) Option {
	return func(c *Controller) {
		c.recorder = r
		c.logger = logger
	}
}

// NewController starts a session at the first step with empty selections.
func NewController(topics, newsletters models.Dataset, opts ...Option) *Controller {
	c := &Controller{
		state:       NewState(),
		topics:      topics,
		newsletters: newsletters,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() *State               { return c.state }
func (c *Controller) Step() Step                  { return c.state.Step() }
func (c *Controller) Topics() models.Dataset      { return c.topics }
func (c *Controller) Newsletters() models.Dataset { return c.newsletters }

// Dataset returns the dataset shown on step, if it has one.
func (c *Controller) Dataset(step Step) (models.Dataset, bool) {
	switch step {
	case StepTopics:
		return c.topics, true
	case StepNewsletters:
		return c.newsletters, true
	default:
		return models.Dataset{}, false
	}
}

// Next advances one step and reports whether it moved.
func (c *Controller) Next() bool {
	if !c.state.Next() {
		return false
	}
	if c.state.Step() == StepSummary {
		c.submit()
	}
	return true
}

// Back retreats one step and reports whether it moved.
func (c *Controller) Back() bool { return c.state.Back() }

// Toggle flips id on the current step. See [State.Toggle].
func (c *Controller) Toggle(id string) bool { return c.state.Toggle(id) }

// Known reports whether id names a choice on the current step.
func (c *Controller) Known(id string) bool {
	d, ok := c.Dataset(c.state.Step())
	if !ok {
		return false
	}
	_, ok = d.Lookup(id)
	return ok
}

// Reset starts the session over.
func (c *Controller) Reset() { c.state.Reset() }

// View renders the current state.
func (c *Controller) View() View {
	return Render(c.state, c.topics, c.newsletters)
}

func (c *Controller) submit() {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(c.state.Topics(), c.state.Newsletters()); err != nil && c.logger != nil {
		c.logger.Warn("failed to record submission", "error", err)
	}
}
