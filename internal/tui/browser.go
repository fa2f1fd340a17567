package tui

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/domain"
	"nathanbeddoewebdev/courseplan/internal/render"
	"nathanbeddoewebdev/courseplan/internal/tui/components"
	"nathanbeddoewebdev/courseplan/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Loader reads the catalog shown by the browser. It is called once on
// start and again on every refresh.
type Loader func() (*catalog.Catalog, catalog.Result, error)

// --- Messages ---

type browserLoadedMsg struct {
	cat *catalog.Catalog
	res catalog.Result
}

type browserErrorMsg struct {
	err error
}

// --- Browser model ---

type browserModel struct {
	load   Loader
	source string

	cat     *catalog.Catalog
	courses []domain.Course
	visible []domain.Course
	cursor  int

	filter    textinput.Model
	filtering bool
	showStats bool

	width  int
	height int

	loading       bool
	spinner       spinner.Model
	err           error
	status        string
	statusIsError bool
}

// RunBrowser starts the full-window catalog browser. source is shown in
// the header, usually the file name.
func RunBrowser(source string, load Loader) error {
	p := tea.NewProgram(newBrowserModel(source, load), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newBrowserModel(source string, load Loader) browserModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by number or title"
	ti.Width = 30

	return browserModel{
		load:    load,
		source:  source,
		filter:  ti,
		loading: true,
		spinner: s,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m browserModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		cat, res, err := m.load()
		if err != nil {
			return browserErrorMsg{err}
		}
		return browserLoadedMsg{cat: cat, res: res}
	}
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.visible)-1, 0)
		case "/":
			m.filtering = true
			m.showStats = false
			return m, m.filter.Focus()
		case "esc":
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
			}
		case "s":
			m.showStats = !m.showStats
		case "r":
			if !m.loading {
				m.loading = true
				m.status = ""
				m.statusIsError = false
				return m, tea.Batch(m.spinner.Tick, m.loadCmd())
			}
		}

	case browserLoadedMsg:
		m.loading = false
		m.err = nil
		m.cat = msg.cat
		m.courses = msg.cat.Courses()
		m.applyFilter()
		m.status = fmt.Sprintf("Loaded %d courses.", msg.res.Count)
		if n := len(msg.res.Skipped); n > 0 {
			m.status += fmt.Sprintf(" Skipped %d invalid line(s).", n)
		}
		m.statusIsError = false

	case browserErrorMsg:
		// A failed refresh keeps the previously loaded catalog on screen.
		m.loading = false
		m.err = msg.err
		m.status = msg.err.Error()
		m.statusIsError = true

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m browserModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *browserModel) applyFilter() {
	m.visible = filterCourses(m.courses, m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m browserModel) selected() (domain.Course, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.Course{}, false
	}
	return m.visible[m.cursor], true
}

func (m browserModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "browse", m.source)
	footer := components.Footer(m.width, m.bindings())
	statusBar := components.StatusBar(m.width, m.status, m.statusIsError)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	var content string
	switch {
	case m.loading && m.cat == nil:
		content = fmt.Sprintf("\n  %s Loading courses...", m.spinner.View())
	case m.cat == nil && m.err != nil:
		content = fmt.Sprintf("\n  %s", styles.ErrorText.Render(m.err.Error()))
	case m.showStats:
		content = m.renderStats()
	default:
		content = m.renderBrowse(contentH)
	}

	// Pad content to fill height
	lines := lipgloss.Height(content)
	if lines < contentH {
		content += lipgloss.NewStyle().Height(contentH - lines).Render("")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar, footer)
}

func (m browserModel) bindings() []components.KeyBinding {
	if m.filtering {
		return []components.KeyBinding{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "clear"},
		}
	}
	view := "stats"
	if m.showStats {
		view = "courses"
	}
	return []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "/", Desc: "filter"},
		{Key: "s", Desc: view},
		{Key: "r", Desc: "reload"},
		{Key: "q", Desc: "quit"},
	}
}

func (m browserModel) renderBrowse(height int) string {
	listWidth := max(m.width*2/5, 24)
	detailWidth := max(m.width-listWidth-2, 20)

	var top string
	if m.filtering || m.filter.Value() != "" {
		box := styles.InputBlurred
		if m.filtering {
			box = styles.InputFocused
		}
		top = box.Render(m.filter.View())
		height -= lipgloss.Height(top)
	}

	if len(m.visible) == 0 {
		msg := "No courses loaded."
		if len(m.courses) > 0 {
			msg = "No courses match the filter."
		}
		body := styles.CenterText(styles.MutedText.Render(msg), m.width)
		return lipgloss.JoinVertical(lipgloss.Left, top, "", body)
	}

	list := m.renderList(listWidth, max(height, 1))
	detail := m.renderDetail(detailWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
	if top == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

func (m browserModel) renderList(width, height int) string {
	// Header row plus one row per visible course.
	start, end := visibleRange(m.cursor, len(m.visible), height-1)

	rows := make([]string, 0, end-start+1)
	rows = append(rows, styles.TableHeader.Render(fmt.Sprintf("%-9s %s", "NUMBER", "TITLE")))
	for i := start; i < end; i++ {
		c := m.visible[i]
		line := ansi.Truncate(fmt.Sprintf("%-9s %s", c.ID, c.Title), width-2, "…")
		if i == m.cursor {
			rows = append(rows, styles.TableSelectedRow.Width(width).Render(line))
		} else {
			rows = append(rows, styles.TableCell.Render(line))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

func (m browserModel) renderDetail(width int) string {
	c, ok := m.selected()
	if !ok {
		return ""
	}

	inner := max(width-6, 10)
	lines := []string{
		styles.Title.Render(c.ID),
		styles.Value.Width(inner).Render(c.Title),
		"",
		styles.Label.Render("Prerequisites"),
	}
	if len(c.Prerequisites) == 0 {
		lines = append(lines, styles.MutedText.Render("  None"))
	}
	for _, id := range c.Prerequisites {
		prereq, resolved := m.cat.Lookup(id)
		line := "  " + styles.PrerequisiteIndicator(id, resolved)
		if resolved {
			line += " " + styles.MutedText.Render(ansi.Truncate(prereq.Title, max(inner-len(id)-6, 1), "…"))
		} else {
			line += " " + styles.MutedText.Render("(not in catalog)")
		}
		lines = append(lines, line)
	}

	if deps := dependents(m.courses, c.ID); len(deps) > 0 {
		lines = append(lines, "", styles.Label.Render("Required by"))
		lines = append(lines, styles.Value.Width(inner).Render("  "+strings.Join(deps, ", ")))
	}

	lines = append(lines, "", styles.MutedText.Width(inner).Render(render.PrerequisiteLine(m.cat, c)))

	return styles.CardActive.Width(width).Render(strings.Join(lines, "\n"))
}

func (m browserModel) renderStats() string {
	width := max(m.width-8, 20)
	title := styles.Title.Render(fmt.Sprintf("%d courses", m.cat.Len()))
	chart := components.SubjectChart(m.cat.SubjectCounts(), width-6)
	return styles.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", chart))
}

// filterCourses returns the courses whose number or title contains query,
// ignoring case. An empty query matches everything.
func filterCourses(courses []domain.Course, query string) []domain.Course {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return courses
	}
	var out []domain.Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.ID), q) || strings.Contains(strings.ToLower(c.Title), q) {
			out = append(out, c)
		}
	}
	return out
}

// dependents returns the identifiers of courses listing id as a
// prerequisite, in course order.
func dependents(courses []domain.Course, id string) []string {
	var out []string
	for _, c := range courses {
		for _, p := range c.Prerequisites {
			if p == id {
				out = append(out, c.ID)
				break
			}
		}
	}
	return out
}

// visibleRange returns the [start, end) window of rows that keeps cursor
// on screen when only height rows fit.
func visibleRange(cursor, total, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if total <= height {
		return 0, total
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, min(start+height, total)
}
