package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/onboard/internal/models"
)

// Loader supplies both datasets. It must not fail; see services.Provider.
type Loader interface {
	Load(ctx context.Context) (topics, newsletters models.Dataset)
}

// datasetsLoadedMsg carries the result of [Loader.Load] back into the update loop.
type datasetsLoadedMsg struct {
	topics      models.Dataset
	newsletters models.Dataset
}

var _ tea.Msg = datasetsLoadedMsg{}

// loadDatasets is the [tea.Cmd] run by [Model.Init].
func loadDatasets(ctx context.Context, l Loader) tea.Cmd {
	return func() tea.Msg {
		topics, newsletters := l.Load(ctx)
		return datasetsLoadedMsg{topics: topics, newsletters: newsletters}
	}
}
