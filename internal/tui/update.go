package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"zikirmatik/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progressBar.Width = min(msg.Width-8, 40)
	}

	switch m.state {
	case StateAddZikhr:
		return m.updateAddZikhr(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			switch m.state {
			case StateCounter:
				return m.updateCounter(msg)
			case StateZikhrs:
				return m.updateZikhrs(msg)
			}
		}
	}

	return m, nil
}

func (m Model) updateCounter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Count):
		_, completed, err := m.store.Increment()
		if err != nil {
			return m, nil
		}
		m.celebration = ""
		if completed {
			state := m.streak.OnDailyGoalCompleted()
			item, _ := m.store.Selected()
			m.celebration = fmt.Sprintf("🎉 %s completed! Streak: %d day(s)", item.Name, state.CurrentStreak)
		}
		m.widget.Publish(m.store.ActiveSnapshot())
	case key.Matches(msg, m.keys.Reset):
		if item, ok := m.store.Selected(); ok {
			m.store.ResetProgress(item.Name)
			m.celebration = ""
			m.widget.Publish(m.store.ActiveSnapshot())
		}
	}
	return m, nil
}

func (m Model) updateZikhrs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.store.SortedItems()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(items) {
			if err := m.store.SetSelected(items[m.cursor].Name); err == nil {
				m.widget.Publish(m.store.ActiveSnapshot())
				m.state = StateCounter
			}
		}
	case key.Matches(msg, m.keys.Favorite):
		if m.cursor < len(items) {
			m.store.ToggleFavorite(items[m.cursor].Name)
		}
	case key.Matches(msg, m.keys.Add):
		m.previousState = m.state
		m.zikhrForm = &ZikhrFormModel{Count: "33"}
		m.form = newZikhrForm(m.zikhrForm)
		m.state = StateAddZikhr
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(items) && m.store.IsCustom(items[m.cursor].Name) {
			m.deleteTarget = items[m.cursor].Name
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateAddZikhr(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		count, _ := strconv.Atoi(strings.TrimSpace(m.zikhrForm.Count))
		item := models.ZikhrItem{
			Name:        strings.TrimSpace(m.zikhrForm.Name),
			ArabicName:  m.zikhrForm.ArabicName,
			Description: m.zikhrForm.Description,
			Count:       count,
		}
		if err := m.store.AddItem(item); err == nil {
			m.widget.Publish(m.store.ActiveSnapshot())
		}
		m.state = m.previousState
		m.form = nil
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y":
		m.store.DeleteItem(m.deleteTarget)
		m.widget.Publish(m.store.ActiveSnapshot())
		m.deleteTarget = ""
		m.cursor = 0
		m.state = m.previousState
	case "n", "esc", "q":
		m.deleteTarget = ""
		m.state = m.previousState
	}
	return m, nil
}

func newZikhrForm(data *ZikhrFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&data.Name).Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
			huh.NewInput().Title("Arabic spelling (optional)").Value(&data.ArabicName),
			huh.NewInput().Title("Description (optional)").Value(&data.Description),
			huh.NewInput().Title("Target count").Value(&data.Count).Validate(func(s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || n < 1 {
					return fmt.Errorf("enter a positive number")
				}
				return nil
			}),
		),
	)
}
