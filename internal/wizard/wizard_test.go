package wizard

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/desertthunder/onboard/internal/models"
	tu "github.com/desertthunder/onboard/internal/testing"
)

func testTopics() models.Dataset {
	return models.Dataset{
		Title:    "What interests you?",
		Subtitle: "Pick topics",
		Choices: []models.Choice{
			{ID: "news", Title: "News & Current Affairs", Description: "Politics"},
			{ID: "sports", Title: "Sports", Description: "Football"},
			{ID: "arts", Title: "Arts & Culture", Description: "Books"},
		},
	}
}

func testNewsletters() models.Dataset {
	return models.Dataset{
		Title:    "Newsletters",
		Subtitle: "Pick newsletters",
		Choices: []models.Choice{
			{ID: "politics", Title: "Politics", Frequency: models.Daily},
			{ID: "travel", Title: "Travel", Frequency: models.Weekly},
			{ID: "plain", Title: "Plain"},
		},
	}
}

func TestSelectionSet(t *testing.T) {
	t.Run("Zero Value is Empty", func(t *testing.T) {
		var s SelectionSet
		if s.Len() != 0 || s.Has("a") || len(s.IDs()) != 0 {
			t.Error("expected zero value to be an empty set")
		}
	})

	t.Run("Toggle Inserts Then Removes", func(t *testing.T) {
		s := NewSelectionSet()
		if !s.Toggle("sports") {
			t.Error("first toggle should report membership")
		}
		if !s.Has("sports") {
			t.Error("expected sports to be selected")
		}
		if s.Toggle("sports") {
			t.Error("second toggle should report removal")
		}
		if s.Has("sports") || s.Len() != 0 {
			t.Error("expected sports to be removed")
		}
	})

	t.Run("Double Toggle Restores Membership", func(t *testing.T) {
		tc := []struct {
			name    string
			initial []string
			id      string
		}{
			{"Absent Id on Empty Set", nil, "a"},
			{"Absent Id on Populated Set", []string{"b", "c"}, "a"},
			{"Present Id", []string{"a", "b"}, "a"},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				s := NewSelectionSet(tt.initial...)
				before := s.Has(tt.id)
				s.Toggle(tt.id)
				s.Toggle(tt.id)
				if s.Has(tt.id) != before {
					t.Errorf("membership of %q changed after double toggle", tt.id)
				}
				if s.Len() != len(tt.initial) {
					t.Errorf("expected %d members, got %d", len(tt.initial), s.Len())
				}
			})
		}
	})

	t.Run("IDs Keeps Selection Order", func(t *testing.T) {
		s := NewSelectionSet()
		for _, id := range []string{"c", "a", "b"} {
			s.Toggle(id)
		}
		s.Toggle("a")
		s.Toggle("a")

		want := []string{"c", "b", "a"}
		if got := s.IDs(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("IDs Returns a Copy", func(t *testing.T) {
		s := NewSelectionSet("a")
		ids := s.IDs()
		ids[0] = "z"
		if !s.Has("a") || s.IDs()[0] != "a" {
			t.Error("mutating IDs() result should not affect the set")
		}
	})

	t.Run("NewSelectionSet Drops Duplicates", func(t *testing.T) {
		s := NewSelectionSet("a", "b", "a")
		if s.Len() != 2 {
			t.Errorf("expected 2 members, got %d", s.Len())
		}
	})
}

func TestState(t *testing.T) {
	t.Run("Starts at Topics with Empty Selections", func(t *testing.T) {
		s := NewState()
		if s.Step() != StepTopics {
			t.Errorf("expected step 1, got %d", s.Step())
		}
		if len(s.Topics()) != 0 || len(s.Newsletters()) != 0 {
			t.Error("expected empty selections")
		}
	})

	t.Run("Boundaries", func(t *testing.T) {
		s := NewState()
		if s.Back() {
			t.Error("back at step 1 should be a no-op")
		}
		if s.Step() != StepTopics {
			t.Errorf("expected step 1, got %d", s.Step())
		}

		s.Next()
		s.Next()
		if s.Step() != StepSummary {
			t.Fatalf("expected step 3, got %d", s.Step())
		}
		if s.Next() {
			t.Error("next at step 3 should be a no-op")
		}
		if s.Step() != StepSummary {
			t.Errorf("expected step 3, got %d", s.Step())
		}
	})

	t.Run("Random Navigation Stays in Bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		s := NewState()

		for i := 0; i < 1000; i++ {
			before := s.Step()
			forward := rng.Intn(2) == 0

			var moved bool
			if forward {
				moved = s.Next()
			} else {
				moved = s.Back()
			}

			after := s.Step()
			if !after.Valid() {
				t.Fatalf("step %d out of range after call %d", after, i)
			}

			switch {
			case forward && before < StepSummary:
				if !moved || after != before+1 {
					t.Fatalf("next from %d: got %d (moved=%v)", before, after, moved)
				}
			case !forward && before > StepTopics:
				if !moved || after != before-1 {
					t.Fatalf("back from %d: got %d (moved=%v)", before, after, moved)
				}
			default:
				if moved || after != before {
					t.Fatalf("boundary call from %d changed step to %d", before, after)
				}
			}
		}
	})

	t.Run("Toggle Only Touches the Active Step", func(t *testing.T) {
		s := NewState()
		s.Toggle("sports")
		if !reflect.DeepEqual(s.Topics(), []string{"sports"}) {
			t.Errorf("expected topics [sports], got %v", s.Topics())
		}
		if len(s.Newsletters()) != 0 {
			t.Error("newsletters should be untouched at step 1")
		}

		s.Next()
		s.Toggle("politics")
		if !reflect.DeepEqual(s.Newsletters(), []string{"politics"}) {
			t.Errorf("expected newsletters [politics], got %v", s.Newsletters())
		}
		if !reflect.DeepEqual(s.Topics(), []string{"sports"}) {
			t.Error("topics should be untouched at step 2")
		}
	})

	t.Run("Summary is Read-only", func(t *testing.T) {
		s := NewState()
		s.Next()
		s.Next()
		if s.Toggle("sports") {
			t.Error("toggle on the summary should report false")
		}
		if len(s.Topics()) != 0 || len(s.Newsletters()) != 0 {
			t.Error("toggle on the summary should not change selections")
		}
		if s.Selection(StepSummary) != nil {
			t.Error("summary should own no selection set")
		}
	})

	t.Run("Selections Persist Across Navigation", func(t *testing.T) {
		s := NewState()
		s.Toggle("arts")
		s.Next()
		s.Toggle("travel")
		s.Back()
		s.Next()
		s.Next()
		s.Back()
		s.Back()

		if !reflect.DeepEqual(s.Topics(), []string{"arts"}) || !reflect.DeepEqual(s.Newsletters(), []string{"travel"}) {
			t.Errorf("selections lost: topics=%v newsletters=%v", s.Topics(), s.Newsletters())
		}
	})

	t.Run("Reset", func(t *testing.T) {
		s := NewState()
		s.Toggle("arts")
		s.Next()
		s.Toggle("travel")
		s.Reset()

		if s.Step() != StepTopics || len(s.Topics()) != 0 || len(s.Newsletters()) != 0 {
			t.Error("expected reset to return to an empty first step")
		}
	})
}

func TestStep(t *testing.T) {
	tt := []struct {
		step       Step
		name       string
		valid      bool
		selectable bool
	}{
		{StepTopics, "topics", true, true},
		{StepNewsletters, "newsletters", true, true},
		{StepSummary, "summary", true, false},
		{Step(0), "Step(0)", false, false},
		{Step(4), "Step(4)", false, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.step.String() != tc.name {
				t.Errorf("String() = %s, want %s", tc.step.String(), tc.name)
			}
			if tc.step.Valid() != tc.valid {
				t.Errorf("Valid() = %v, want %v", tc.step.Valid(), tc.valid)
			}
			if tc.step.Selectable() != tc.selectable {
				t.Errorf("Selectable() = %v, want %v", tc.step.Selectable(), tc.selectable)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("Nav", func(t *testing.T) {
		tt := []struct {
			step     Step
			label    string
			percent  int
			showBack bool
			showNext bool
		}{
			{StepTopics, "Step 1 of 3", 33, false, true},
			{StepNewsletters, "Step 2 of 3", 67, true, true},
			{StepSummary, "Step 3 of 3", 100, true, false},
		}

		for _, tc := range tt {
			t.Run(tc.label, func(t *testing.T) {
				nav := RenderNav(tc.step)
				if nav.Label != tc.label {
					t.Errorf("expected label %q, got %q", tc.label, nav.Label)
				}
				if nav.Percent != tc.percent {
					t.Errorf("expected percent %d, got %d", tc.percent, nav.Percent)
				}
				if nav.ShowBack != tc.showBack || nav.ShowNext != tc.showNext {
					t.Errorf("expected back=%v next=%v, got back=%v next=%v",
						tc.showBack, tc.showNext, nav.ShowBack, nav.ShowNext)
				}
				if nav.Total != 3 {
					t.Errorf("expected total 3, got %d", nav.Total)
				}
			})
		}
	})

	t.Run("Selection Page", func(t *testing.T) {
		s := NewState()
		s.Toggle("sports")

		v := Render(s, testTopics(), testNewsletters())
		if v.Summary != nil || v.Selection == nil {
			t.Fatal("expected a selection page at step 1")
		}
		if v.Selection.Title != "What interests you?" || v.Selection.Subtitle != "Pick topics" {
			t.Errorf("unexpected heading %+v", v.Selection)
		}
		if len(v.Selection.Cards) != 3 {
			t.Fatalf("expected one card per choice, got %d", len(v.Selection.Cards))
		}
		for _, c := range v.Selection.Cards {
			if c.Checked != (c.ID == "sports") {
				t.Errorf("card %s checked=%v", c.ID, c.Checked)
			}
			if c.Badge != "" {
				t.Errorf("topic card %s should have no badge", c.ID)
			}
		}
	})

	t.Run("Badges Follow Frequency", func(t *testing.T) {
		s := NewState()
		s.Next()

		v := Render(s, testTopics(), testNewsletters())
		badges := map[string]string{}
		for _, c := range v.Selection.Cards {
			badges[c.ID] = c.Badge
		}
		want := map[string]string{"politics": "DAILY", "travel": "WEEKLY", "plain": ""}
		if !reflect.DeepEqual(badges, want) {
			t.Errorf("expected badges %v, got %v", want, badges)
		}
	})

	t.Run("Summary Lists Titles in Selection Order", func(t *testing.T) {
		s := NewState()
		s.Toggle("arts")
		s.Toggle("news")
		s.Toggle("ghost")
		s.Next()
		s.Next()

		v := Render(s, testTopics(), testNewsletters())
		if v.Summary == nil || v.Selection != nil {
			t.Fatal("expected the summary page at step 3")
		}
		if v.Summary.Title != SummaryTitle {
			t.Errorf("unexpected title %q", v.Summary.Title)
		}

		topics, newsletters := v.Summary.Panels[0], v.Summary.Panels[1]
		if !reflect.DeepEqual(topics.Items, []string{"Arts & Culture", "News & Current Affairs"}) {
			t.Errorf("unexpected topic items %v", topics.Items)
		}
		if topics.Empty != "" {
			t.Error("topics panel should not show the empty message")
		}
		if len(newsletters.Items) != 0 || newsletters.Empty != NoNewslettersMessage {
			t.Errorf("expected newsletters empty state, got %+v", newsletters)
		}
	})

	t.Run("Summary Empty State for Both", func(t *testing.T) {
		s := NewState()
		s.Next()
		s.Next()

		v := Render(s, testTopics(), testNewsletters())
		if v.Summary.Panels[0].Empty != NoTopicsMessage || v.Summary.Panels[1].Empty != NoNewslettersMessage {
			t.Errorf("expected both empty messages, got %+v", v.Summary.Panels)
		}
	})

	t.Run("Render is Pure", func(t *testing.T) {
		s := NewState()
		s.Toggle("sports")
		topics := testTopics()

		first := Render(s, topics, testNewsletters())
		second := Render(s, topics, testNewsletters())
		if !reflect.DeepEqual(first, second) {
			t.Error("rendering the same state twice should give the same view")
		}
		if s.Step() != StepTopics || !reflect.DeepEqual(s.Topics(), []string{"sports"}) {
			t.Error("render should not modify the state")
		}
	})
}

func TestController(t *testing.T) {
	t.Run("Worked Example", func(t *testing.T) {
		c := NewController(testTopics(), testNewsletters())

		c.Toggle("sports")
		if !reflect.DeepEqual(c.State().Topics(), []string{"sports"}) {
			t.Fatalf("expected topics [sports], got %v", c.State().Topics())
		}
		c.Next()
		if c.Step() != StepNewsletters {
			t.Fatalf("expected step 2, got %d", c.Step())
		}
		c.Toggle("politics")
		if !reflect.DeepEqual(c.State().Newsletters(), []string{"politics"}) {
			t.Fatalf("expected newsletters [politics], got %v", c.State().Newsletters())
		}
		c.Next()
		if c.Step() != StepSummary {
			t.Fatalf("expected step 3, got %d", c.Step())
		}

		v := c.View()
		if !reflect.DeepEqual(v.Summary.Panels[0].Items, []string{"Sports"}) {
			t.Errorf("expected topics [Sports], got %v", v.Summary.Panels[0].Items)
		}
		if !reflect.DeepEqual(v.Summary.Panels[1].Items, []string{"Politics"}) {
			t.Errorf("expected newsletters [Politics], got %v", v.Summary.Panels[1].Items)
		}
	})

	t.Run("Known", func(t *testing.T) {
		c := NewController(testTopics(), testNewsletters())
		if !c.Known("sports") || c.Known("politics") {
			t.Error("step 1 should only know topic ids")
		}
		c.Next()
		if !c.Known("politics") || c.Known("sports") {
			t.Error("step 2 should only know newsletter ids")
		}
		c.Next()
		if c.Known("sports") || c.Known("politics") {
			t.Error("the summary knows no ids")
		}
	})

	t.Run("Records on Entering the Summary", func(t *testing.T) {
		rec := &tu.MockRecorder{}
		c := NewController(testTopics(), testNewsletters(), WithRecorder(rec, nil))

		c.Toggle("arts")
		c.Next()
		if len(rec.Submissions) != 0 {
			t.Fatal("should not record before the summary")
		}
		c.Toggle("travel")
		c.Next()
		c.Next()

		if len(rec.Submissions) != 1 {
			t.Fatalf("expected exactly one submission, got %d", len(rec.Submissions))
		}
		got := rec.Submissions[0]
		if !reflect.DeepEqual(got.Topics(), []string{"arts"}) || !reflect.DeepEqual(got.Newsletters(), []string{"travel"}) {
			t.Errorf("unexpected submission %v / %v", got.Topics(), got.Newsletters())
		}

		c.Back()
		c.Next()
		if len(rec.Submissions) != 2 {
			t.Errorf("re-entering the summary should record again, got %d", len(rec.Submissions))
		}
	})

	t.Run("Recorder Errors Are Ignored", func(t *testing.T) {
		rec := &tu.MockRecorder{Err: errors.New("disk full")}
		c := NewController(testTopics(), testNewsletters(), WithRecorder(rec, nil))

		c.Next()
		if !c.Next() || c.Step() != StepSummary {
			t.Error("a failing recorder must not block navigation")
		}
	})

	t.Run("Dataset", func(t *testing.T) {
		c := NewController(testTopics(), testNewsletters())
		if d, ok := c.Dataset(StepNewsletters); !ok || d.Title != "Newsletters" {
			t.Errorf("unexpected newsletters dataset %+v", d)
		}
		if _, ok := c.Dataset(StepSummary); ok {
			t.Error("summary has no dataset")
		}
	})
}
