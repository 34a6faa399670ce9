// Package ui implements the onboarding wizard as a terminal interface using bubbletea's Elm architecture.
//
// The [Model] wraps a wizard.Controller and paints the wizard.View it renders:
//  1. Topics : a checkable card per topic
//  2. Newsletters : a checkable card per newsletter, with a frequency badge
//  3. Summary : the titles chosen on both steps
//
// [Model.Init] loads both datasets through a [Loader] while a spinner is shown; this is the only asynchronous work.
// Every key press afterwards is handled synchronously in [Model.Update].
//
// Keyboard navigation uses vim-style bindings (j/k, h/l, space/enter, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
