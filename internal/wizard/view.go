package wizard

import (
	"fmt"
	"math"

	"github.com/desertthunder/onboard/internal/models"
)

const (
	SummaryTitle    = "Thanks for your submission"
	SummarySubtitle = "Lorem ipsum dolor sit amet consectetur adipisicing elit. Mollitia et."

	TopicsPanelLabel      = "Your topics"
	NewslettersPanelLabel = "Your newsletters"
	NoTopicsMessage       = "No topics selected"
	NoNewslettersMessage  = "No newsletters selected"
)

// View is everything an adapter needs to paint one screen.
//
// Exactly one of Selection or Summary is set.
type View struct {
	Nav       Nav            `json:"nav"`
	Selection *SelectionPage `json:"selection,omitempty"`
	Summary   *SummaryPage   `json:"summary,omitempty"`
}

// Nav is the navigation chrome recomputed on every transition.
type Nav struct {
	Step     int    `json:"step"`
	Total    int    `json:"total"`
	Label    string `json:"label"`
	Percent  int    `json:"percent"`
	ShowBack bool   `json:"show_back"`
	ShowNext bool   `json:"show_next"`
}

// SelectionPage renders a step with one card per choice.
type SelectionPage struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Cards    []Card `json:"cards"`
}

// Card is a single checkable choice. Badge is empty when the choice has no frequency.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge,omitempty"`
	Checked     bool   `json:"checked"`
}

type SummaryPage struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Panels   []SummaryPanel `json:"panels"`
}

// SummaryPanel lists the selected titles for one category. Empty is set only when Items is empty.
type SummaryPanel struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
	Empty string   `json:"empty,omitempty"`
}

// Render derives the view for state. It does not modify its arguments.
func Render(state *State, topics, newsletters models.Dataset) View {
	step := state.Step()
	v := View{Nav: RenderNav(step)}

	switch step {
	case StepTopics:
		v.Selection = RenderSelection(topics, state.Selection(StepTopics))
	case StepNewsletters:
		v.Selection = RenderSelection(newsletters, state.Selection(StepNewsletters))
	default:
		v.Summary = RenderSummary(state.Selection(StepTopics), topics, state.Selection(StepNewsletters), newsletters)
	}
	return v
}

// RenderNav builds the step label, progress percentage and button visibility.
func RenderNav(step Step) Nav {
	return Nav{
		Step:     int(step),
		Total:    StepCount,
		Label:    fmt.Sprintf("Step %d of %d", int(step), StepCount),
		Percent:  Percent(step),
		ShowBack: !step.First(),
		ShowNext: !step.Last(),
	}
}

// Percent is round(step/3*100): 33, 67, 100.
func Percent(step Step) int {
	return int(math.Round(float64(step) / float64(StepCount) * 100))
}

// RenderSelection builds one card per choice, in dataset order.
func RenderSelection(d models.Dataset, selected *SelectionSet) *SelectionPage {
	cards := make([]Card, 0, len(d.Choices))
	for _, c := range d.Choices {
		cards = append(cards, Card{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Badge:       string(c.Frequency),
			Checked:     selected != nil && selected.Has(c.ID),
		})
	}
	return &SelectionPage{Title: d.Title, Subtitle: d.Subtitle, Cards: cards}
}

// RenderSummary lists the titles of both selections.
func RenderSummary(topicIDs *SelectionSet, topics models.Dataset, newsletterIDs *SelectionSet, newsletters models.Dataset) *SummaryPage {
	return &SummaryPage{
		Title:    SummaryTitle,
		Subtitle: SummarySubtitle,
		Panels: []SummaryPanel{
			summaryPanel(TopicsPanelLabel, NoTopicsMessage, topicIDs, topics),
			summaryPanel(NewslettersPanelLabel, NoNewslettersMessage, newsletterIDs, newsletters),
		},
	}
}

// SummaryItems returns the titles of selected ids in selection order. Ids missing from the dataset are skipped.
func SummaryItems(selected *SelectionSet, d models.Dataset) []string {
	items := []string{}
	if selected == nil {
		return items
	}
	for _, id := range selected.IDs() {
		if c, ok := d.Lookup(id); ok {
			items = append(items, c.Title)
		}
	}
	return items
}

func summaryPanel(label, empty string, selected *SelectionSet, d models.Dataset) SummaryPanel {
	p := SummaryPanel{Label: label, Items: SummaryItems(selected, d)}
	if len(p.Items) == 0 {
		p.Empty = empty
	}
	return p
}
