package preview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
)

// ViewMode represents the current view mode
type ViewMode int

// View modes for the preview TUI
const (
	ListViewMode ViewMode = iota
	DetailViewMode
	XMLViewMode
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Rows taken by the list header and footer.
const listChrome = 6

// Model represents the Bubble Tea model for the preview TUI
type Model struct {
	posts     []*feedtypes.Post
	generator *feed.Generator
	cursor    int
	viewMode  ViewMode
	width     int
	height    int
	now       func() time.Time
}

// NewModel creates a new preview model. generator renders the XML view.
func NewModel(posts []*feedtypes.Post, generator *feed.Generator) Model {
	return Model{
		posts:     posts,
		generator: generator,
		viewMode:  ListViewMode,
		now:       time.Now,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

		if m.viewMode == ListViewMode {
			m = m.updateList(msg)
		} else {
			m = m.updateDetail(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.posts)-1, 0)
	case "enter":
		m.viewMode = DetailViewMode
	case "x":
		m.viewMode = XMLViewMode
	}
	return m
}

func (m Model) updateDetail(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.viewMode = ListViewMode
	case "x":
		if m.viewMode == DetailViewMode {
			m.viewMode = XMLViewMode
		} else {
			m.viewMode = DetailViewMode
		}
	}
	return m
}

// View implements tea.Model
func (m Model) View() string {
	switch m.viewMode {
	case DetailViewMode:
		return m.renderDetailView()
	case XMLViewMode:
		return m.renderXMLView()
	default:
		return m.renderListView()
	}
}

// visibleRange returns the half-open window of list rows that fit on screen,
// keeping the cursor centered when possible.
func (m Model) visibleRange() (int, int) {
	total := len(m.posts)
	if m.height <= 0 {
		return 0, total
	}

	rows := m.height - listChrome
	if rows <= 0 || rows >= total {
		return 0, total
	}

	start := max(m.cursor-rows/2, 0)
	end := start + rows
	if end > total {
		end = total
		start = end - rows
	}
	return start, end
}

func (m Model) renderListView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s - %d posts", m.generator.Title, len(m.posts))))
	b.WriteString("\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		line := FormatCompactListItem(i, m.posts[i])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("→ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ or j/k: navigate • enter: details • x: XML • q: quit"))

	return b.String()
}

func (m Model) selected() *feedtypes.Post {
	if m.cursor < 0 || m.cursor >= len(m.posts) {
		return nil
	}
	return m.posts[m.cursor]
}

func (m Model) renderDetailView() string {
	post := m.selected()
	if post == nil {
		return "No item selected"
	}

	return FormatDetailedItem(post, m.now()) + "\n" +
		footerStyle.Render("esc: back to list • x: toggle XML view • q: quit")
}

func (m Model) renderXMLView() string {
	post := m.selected()
	if post == nil {
		return "No item selected"
	}

	return headerStyle.Render("RSS item preview") + "\n\n" +
		FormatXMLItem(post, m.generator) + "\n" +
		footerStyle.Render("esc: back to list • x: toggle detail view • q: quit")
}

// Run starts the Bubble Tea program
func Run(posts []*feedtypes.Post, generator *feed.Generator) error {
	if len(posts) == 0 {
		fmt.Println("No items to preview")
		return nil
	}

	p := tea.NewProgram(NewModel(posts, generator), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
