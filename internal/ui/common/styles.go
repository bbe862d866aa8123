// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/game-101/internal/card"
)

// Icon constants
const (
	BotIcon     = "🤖"
	HumanIcon   = "🧑"
	TurnIcon    = "👉"
	WinnerIcon  = "🏆"
	WarningIcon = "⚠️"
)

// Lipgloss Styles
var (
	DocStyle       = lipgloss.NewStyle().Margin(1, 2)
	RedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	ActiveBoxStyle = BoxStyle.BorderForeground(lipgloss.Color("220"))
	PromptStyle    = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	HintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// CardStyle 按花色选择颜色，不可出的牌置灰
func CardStyle(c card.Card, playable bool) lipgloss.Style {
	switch {
	case !playable:
		return GrayStyle
	case c.Suit.IsRed():
		return RedStyle
	default:
		return BlackStyle
	}
}

// SuitStyle 花色颜色
func SuitStyle(s card.Suit) lipgloss.Style {
	if s.IsRed() {
		return RedStyle
	}
	return BlackStyle
}
