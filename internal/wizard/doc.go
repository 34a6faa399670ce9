// Package wizard implements the three-step onboarding flow.
//
// The flow is a linear state machine over [Step]:
//  1. [StepTopics] : toggle topics
//  2. [StepNewsletters] : toggle newsletters
//  3. [StepSummary] : read-only list of both selections
//
// [State] holds the step and one [SelectionSet] per selection step.
// [Controller] owns a State together with both datasets and is the only thing adapters talk to.
// All output is derived by [Render], a pure function from the controller's state to a serializable [View],
// which the terminal (internal/ui) and web (internal/web) adapters paint.
package wizard
