package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zikirmatik/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCounter:
		content = m.viewCounter()
	case StateZikhrs:
		content = m.viewZikhrs()
	case StateHistory:
		content = m.viewHistory()
	case StateStreak:
		content = m.viewStreak()
	case StateAddZikhr:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Counter", "Zikhrs", "History", "Streak"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCounter() string {
	item, ok := m.store.Selected()
	if !ok {
		return docStyle.Render(dimStyle.Render("No zikhr selected. Switch to the Zikhrs tab and press enter."))
	}

	count := m.store.Progress(item.Name)
	target := m.store.EffectiveCount(item.Name, item.Count)

	var lines []string
	lines = append(lines, titleStyle.Render(item.Name))
	if item.ArabicName != "" {
		lines = append(lines, arabicStyle.Render(item.ArabicName))
	}
	lines = append(lines, "")
	lines = append(lines, ledStyle.Render(fmt.Sprintf("%05d", count)))
	lines = append(lines, "")

	if m.store.Settings().AppearanceMode == constants.AppearanceBeads {
		lines = append(lines, m.viewBeads(count, target))
	} else {
		percent := 0.0
		if target > 0 {
			percent = float64(count) / float64(target)
			if percent > 1 {
				percent = 1
			}
		}
		lines = append(lines, m.progressBar.ViewAs(percent))
	}
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%d / %d", count, target)))

	if m.celebration != "" {
		lines = append(lines, "", doneStyle.Render(m.celebration))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewBeads renders a tasbih row: 33 beads filled in proportion to the
// progress toward the target.
func (m Model) viewBeads(count, target int) string {
	const beads = 33
	filled := 0
	if target > 0 {
		filled = count * beads / target
		if filled > beads {
			filled = beads
		}
	}
	return beadFullStyle.Render(strings.Repeat("●", filled)) +
		beadEmptyStyle.Render(strings.Repeat("○", beads-filled))
}

func (m Model) viewZikhrs() string {
	items := m.store.SortedItems()
	selected, hasSelected := m.store.Selected()
	favs := map[string]bool{}
	for _, name := range m.store.Favorites() {
		favs[name] = true
	}

	var lines []string
	for i, item := range items {
		star := " "
		if favs[item.Name] {
			star = "★"
		}
		marker := " "
		if hasSelected && item.Name == selected.Name {
			marker = "●"
		}

		count := m.store.Progress(item.Name)
		target := m.store.EffectiveCount(item.Name, item.Count)
		row := fmt.Sprintf("%s %s %-35s %4d/%d", marker, star, item.Name, count, target)

		if i == m.cursor {
			lines = append(lines, selectedRowStyle.Render("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("No zikhrs. Press a to add one."))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewHistory() string {
	completed := m.store.Completed()
	if len(completed) == 0 {
		return docStyle.Render(dimStyle.Render("No completed zikhrs yet."))
	}

	var lines []string
	lines = append(lines, titleStyle.Render("Completed"))
	for _, z := range completed {
		lines = append(lines, fmt.Sprintf("  %s  %-35s %5d", z.CompletedAt.Format("2006-01-02 15:04"), z.Name, z.Count))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewStreak() string {
	state := m.streak.State()

	var lines []string
	lines = append(lines, titleStyle.Render("🔥 Streak"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Current: %d day(s)", state.CurrentStreak))
	lines = append(lines, fmt.Sprintf("Longest: %d day(s)", state.LongestStreak))
	if state.LastCompletedDate != "" {
		lines = append(lines, fmt.Sprintf("Last completed: %s", state.LastCompletedDate))
	}
	lines = append(lines, "")
	if m.streak.IsTodayCompleted() {
		lines = append(lines, doneStyle.Render("Today's goal is done."))
	} else {
		lines = append(lines, dimStyle.Render("Today's goal is still open."))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and its progress?", m.deleteTarget)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
