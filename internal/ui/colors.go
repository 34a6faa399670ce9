package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	label    lipgloss.Style
	card     lipgloss.Style
	focused  lipgloss.Style
	checked  lipgloss.Style
	badge    lipgloss.Style
	muted    lipgloss.Style
	panel    lipgloss.Style
	help     lipgloss.Style
}

// NewPalette builds the stylesheet from accent, ok, warn and muted colors.
func NewPalette(accent, ok, warn, muted string) *Palette {
	return &Palette{
		title:    NewBold(accent).MarginBottom(1),
		subtitle: NewEm(muted).MarginBottom(1),
		label:    NewBold(muted),
		card:     lipgloss.NewStyle().PaddingLeft(2),
		focused:  lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color(accent)),
		checked:  NewBold(ok),
		badge:    NewBold(warn),
		muted:    NewStyle(muted),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(muted)).Padding(0, 1).MarginRight(1),
		help:     NewEm(muted),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
