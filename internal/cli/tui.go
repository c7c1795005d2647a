package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/allena90/plantsim/pkg/units"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// unitListModel - Interactive unit browser
// =============================================================================

// unitListModel is the bubbletea model for browsing the unit registry.
// Typing filters by symbol and name substring; arrows move the cursor.
type unitListModel struct {
	all      []units.Unit
	filtered []units.Unit
	filter   string
	cursor   int
	height   int
	offset   int
}

func newUnitListModel(list []units.Unit) unitListModel {
	return unitListModel{
		all:      list,
		filtered: list,
		height:   15,
	}
}

func (m unitListModel) Init() tea.Cmd {
	return nil
}

func (m unitListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		default:
			if len(msg.String()) == 1 {
				m.filter += msg.String()
				m.applyFilter()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *unitListModel) applyFilter() {
	m.cursor = 0
	m.offset = 0
	if m.filter == "" {
		m.filtered = m.all
		return
	}
	needle := strings.ToLower(m.filter)
	out := make([]units.Unit, 0, len(m.all))
	for _, u := range m.all {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Symbol), needle) {
			out = append(out, u)
		}
	}
	m.filtered = out
}

func (m unitListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Unit Registry"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  esc quit"))
	b.WriteString("\n")
	if m.filter != "" {
		b.WriteString(StyleHighlight.Render("filter: " + m.filter))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(listDimStyle.Render("  no units match"))
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		u := m.filtered[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, u.Symbol, u.Name, u.Dimension.String(), formatScale(u)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Symbol", "Name", "Dimension", "SI factor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 3 {
				return StyleDim
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.filtered))))

	return b.String()
}
