package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hirose30/screen-logger/internal/analyze"
)

const hourBarWidth = 30

// Terminal renders the styled single-day view for the report command
func Terminal(r *analyze.Result) string {
	return renderView(r, newStyles())
}

func renderView(r *analyze.Result, s styles) string {
	lines := []string{
		s.title.Render("Daily Work Report " + r.Date),
	}

	if r.NoData() {
		lines = append(lines, s.empty.Render(r.Error))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	summary := r.ActivitySummary
	lines = append(lines, s.header.Render(fmt.Sprintf(
		"captures: %d  active: %.1f%%  work: %s",
		summary.TotalCaptures, summary.ActiveRate, summary.TotalWorkDisplay)))

	lines = append(lines, s.section.Render(renderWorkItems(r, s)))
	lines = append(lines, s.section.Render(renderHourBars(r, s)))
	if len(r.IdlePeriods) > 0 {
		lines = append(lines, s.section.Render(renderIdle(r, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWorkItems(r *analyze.Result, s styles) string {
	if len(r.AggregatedWork) == 0 {
		return s.empty.Render("No work sessions.")
	}

	parts := []string{s.work.Render("Work")}
	for i, w := range r.AggregatedWork {
		if i >= 10 {
			parts = append(parts, s.meta.Render(fmt.Sprintf("  +%d more", len(r.AggregatedWork)-i)))
			break
		}
		label := w.App
		if w.Description != "" {
			label = w.App + " " + w.Description
		}
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(fmt.Sprintf("  %-6s ", w.TotalDisplay)),
			s.detail.Render(label),
			" ",
			s.meta.Render(w.TimeSummary),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHourBars(r *analyze.Result, s styles) string {
	parts := []string{s.work.Render("Hours")}
	for _, h := range r.HourlyWorkMinutes {
		bar := renderMinutesBar(h.WorkMinutes, s)
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.hourLabel.Render("  "+h.Hour+" "),
			bar,
			s.meta.Render(fmt.Sprintf(" %2dm %s", h.WorkMinutes, h.MainApp)),
		)
		parts = append(parts, line)
	}
	if len(parts) == 1 {
		parts = append(parts, s.empty.Render("  (no active hours)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMinutesBar scales 0..60 work minutes onto a fixed-width bar
func renderMinutesBar(minutes int, s styles) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 60 {
		minutes = 60
	}
	filled := minutes * hourBarWidth / 60
	empty := hourBarWidth - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func renderIdle(r *analyze.Result, s styles) string {
	parts := []string{s.work.Render("Away")}
	for i, p := range r.IdlePeriods {
		if i >= 5 {
			parts = append(parts, s.meta.Render(fmt.Sprintf("  +%d more", len(r.IdlePeriods)-i)))
			break
		}
		parts = append(parts, s.idle.Render(fmt.Sprintf(
			"  %s - %s (%.1fm)",
			p.Start.Format("15:04"), p.End.Format("15:04"), p.DurationMinutes)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
