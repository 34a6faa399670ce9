package wizard

// State is the complete mutable state of one wizard session.
type State struct {
	step        Step
	topics      SelectionSet
	newsletters SelectionSet
}

// NewState returns a state at [StepTopics] with empty selections.
func NewState() *State {
	return &State{step: StepTopics}
}

func (s *State) Step() Step { return s.step }

func (s *State) CanNext() bool { return s.step < StepSummary }
func (s *State) CanBack() bool { return s.step > StepTopics }

// Next advances one step. It is a no-op on the summary and reports whether the step changed.
func (s *State) Next() bool {
	if !s.CanNext() {
		return false
	}
	s.step++
	return true
}

// Back retreats one step. It is a no-op on the first step and reports whether the step changed.
func (s *State) Back() bool {
	if !s.CanBack() {
		return false
	}
	s.step--
	return true
}

// Selection returns the set owned by step, or nil for the summary.
func (s *State) Selection(step Step) *SelectionSet {
	switch step {
	case StepTopics:
		return &s.topics
	case StepNewsletters:
		return &s.newsletters
	default:
		return nil
	}
}

// Topics and Newsletters expose the two selection sets read-only.
func (s *State) Topics() []string      { return s.topics.IDs() }
func (s *State) Newsletters() []string { return s.newsletters.IDs() }

// Toggle flips id in the set owned by the current step and returns its new membership.
// On the summary nothing changes and false is returned.
func (s *State) Toggle(id string) bool {
	set := s.Selection(s.step)
	if set == nil {
		return false
	}
	return set.Toggle(id)
}

// Reset returns to the first step and clears both selections.
func (s *State) Reset() {
	s.step = StepTopics
	s.topics.Clear()
	s.newsletters.Clear()
}
