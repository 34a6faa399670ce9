package wizard

import "fmt"

// Step is the 1-based position in the wizard.
type Step int

const (
	StepTopics Step = iota + 1
	StepNewsletters
	StepSummary
)

// StepCount is the number of steps in the wizard.
const StepCount = int(StepSummary)

func (s Step) String() string {
	switch s {
	case StepTopics:
		return "topics"
	case StepNewsletters:
		return "newsletters"
	case StepSummary:
		return "summary"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Valid reports whether s is one of the three steps.
func (s Step) Valid() bool { return s >= StepTopics && s <= StepSummary }

// First and Last mark the ends of the flow.
func (s Step) First() bool { return s == StepTopics }
func (s Step) Last() bool  { return s == StepSummary }

// Selectable reports whether the step owns a selection set.
func (s Step) Selectable() bool { return s == StepTopics || s == StepNewsletters }
