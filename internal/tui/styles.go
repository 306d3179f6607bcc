package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dieStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2)
	rollingDieStyle   = dieStyle.BorderForeground(lipgloss.Color("241"))
	riskStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	activePlayerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	playerStyle       = lipgloss.NewStyle()
	logStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	disabledStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bannerStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 2).Align(lipgloss.Center)
)
