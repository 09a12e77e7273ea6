// Package review is a terminal browser over the record store: a list of
// persisted postings with a detail view for each.
package review

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobsift/jobsift/internal/model"
)

// Lines per record item in the list view (title + subtitle + blank separator).
const itemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	matchYesStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	matchNoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(12)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				MarginBottom(1)
)

type reviewModel struct {
	records []model.Record
	cursor  int
	offset  int // first visible item in the list
	width   int
	height  int
	ready   bool

	view           viewState
	detailViewport viewport.Model
}

// Run opens the browser over the given records and blocks until the user
// quits.
func Run(records []model.Record) error {
	m := reviewModel{records: records}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detailViewport = viewport.New(msg.Width-2, msg.Height-4)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.view == viewDetail {
				m.view = viewList
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.view == viewDetail {
				m.detailViewport.ScrollUp(1)
				return m, nil
			}
			if m.cursor > 0 {
				m.cursor--
				m.clampOffset()
			}
		case "down", "j":
			if m.view == viewDetail {
				m.detailViewport.ScrollDown(1)
				return m, nil
			}
			if m.cursor < len(m.records)-1 {
				m.cursor++
				m.clampOffset()
			}
		case "enter":
			if m.view == viewList && len(m.records) > 0 {
				m.view = viewDetail
				m.detailViewport.SetContent(m.detailContent(m.records[m.cursor]))
				m.detailViewport.GotoTop()
			}
		case "esc":
			m.view = viewList
		case "o":
			if len(m.records) > 0 {
				openBrowser(m.records[m.cursor].Link)
			}
		}
	}
	return m, nil
}

func (m *reviewModel) visibleItems() int {
	rows := (m.height - 3) / itemHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *reviewModel) clampOffset() {
	visible := m.visibleItems()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m reviewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	if len(m.records) == 0 {
		return headerStyle.Render("jobsift records") + "\n\n  no records yet — run `jobsift run` first\n"
	}
	if m.view == viewDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m reviewModel) listView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("jobsift records (%d)", len(m.records))))
	b.WriteString("\n")

	end := m.offset + m.visibleItems()
	if end > len(m.records) {
		end = len(m.records)
	}
	for i := m.offset; i < end; i++ {
		rec := m.records[i]
		match := matchNoStyle.Render("No ")
		if rec.Match == "Yes" {
			match = matchYesStyle.Render("Yes")
		}
		title := fmt.Sprintf("%s  %s — %s", match, rec.Title, rec.Company)
		subtitle := fmt.Sprintf("     %s · %s", rec.Location, rec.Date)

		if i == m.cursor {
			b.WriteString(selectedTitleStyle.Render(title) + "\n")
			b.WriteString(selectedSubtitleStyle.Render(subtitle) + "\n\n")
		} else {
			b.WriteString(titleStyle.Render(title) + "\n")
			b.WriteString(subtitleStyle.Render(subtitle) + "\n\n")
		}
	}

	b.WriteString(statusBarStyle.Render("↑/↓ move · enter details · o open link · q quit"))
	return b.String()
}

func (m reviewModel) detailView() string {
	header := headerStyle.Render(fmt.Sprintf("record %d of %d", m.cursor+1, len(m.records)))
	footer := statusBarStyle.Render("↑/↓ scroll · o open link · esc back · q quit")
	return header + "\n" + m.detailViewport.View() + "\n" + footer
}

func (m reviewModel) detailContent(rec model.Record) string {
	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(rec.Title) + "\n")

	row := func(label, value string) {
		b.WriteString(detailLabelStyle.Render(label) + value + "\n")
	}
	row("Company", rec.Company)
	row("Location", rec.Location)
	row("Date", rec.Date)
	row("Link", rec.Link)
	if rec.Match == "Yes" {
		row("Match", matchYesStyle.Render(rec.Match))
	} else {
		row("Match", matchNoStyle.Render(rec.Match))
	}
	row("Keywords", strings.Join(rec.Keywords, ", "))
	row("Experience", rec.YearsExp)
	row("Salary", rec.Salary)
	return b.String()
}

// openBrowser opens url with the platform's default browser. Errors are
// ignored; the link stays visible in the detail view either way.
func openBrowser(url string) {
	switch runtime.GOOS {
	case "darwin":
		exec.Command("open", url).Start()
	case "windows":
		exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		exec.Command("xdg-open", url).Start()
	}
}
