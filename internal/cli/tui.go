package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/provider"
	"github.com/kintreeapp/kintree/pkg/render/tree"
	"github.com/kintreeapp/kintree/pkg/render/tree/centering"
	"github.com/kintreeapp/kintree/pkg/render/tree/layout"
)

// fetchTimeout bounds one relationship fetch from the TUI.
const fetchTimeout = 10 * time.Second

// colPixels maps one terminal column to frame pixels when centering the
// middle row, so the same controller drives both SVG and terminal views.
const colPixels = 8.0

// Card styles
var (
	cardNormalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(colorWhite)
	cardCursorStyle   = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1).Bold(true).Foreground(colorCyan)
	cardSelectedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Bold(true).Foreground(colorGold)
	rowLabelStyle     = lipgloss.NewStyle().Foreground(colorDim)
	dimmedStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// fetchResultMsg carries the outcome of one relationship fetch. The
// person id identifies which selection the response belongs to so stale
// responses can be discarded.
type fetchResultMsg struct {
	personID string
	set      family.RelationshipSet
	err      error
}

// browseModel is the bubbletea model for the interactive tree browser.
type browseModel struct {
	prov       provider.Provider
	view       *tree.View
	frameWidth float64

	// cursor position: rowIdx selects parents (0), center (1), or
	// children (2); colIdx indexes into that row's people.
	rowIdx int
	colIdx int

	// centering state for the middle row
	ctrl         *centering.Controller
	centerOffset float64

	// onVisit is called after a tree is applied, with the person it is
	// centered on. Used to record viewing history.
	onVisit func(personID string)

	termWidth int
	quitting  bool
}

// newBrowseModel creates a browser centered on startID.
func newBrowseModel(prov provider.Provider, startID string, frameWidth float64) *browseModel {
	m := &browseModel{
		prov:       prov,
		view:       tree.NewView(),
		frameWidth: frameWidth,
		rowIdx:     1,
		termWidth:  80,
	}
	m.ctrl = centering.New(centering.ScrollerFunc(func(offset float64) {
		m.centerOffset = offset
	}))
	m.view.BeginLoading(startID)
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return m.fetchCmd(m.view.PendingID())
}

// fetchCmd fetches one person's relationships off the UI goroutine.
func (m *browseModel) fetchCmd(personID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		set, err := m.prov.FetchRelationshipSet(ctx, personID)
		return fetchResultMsg{personID: personID, set: set, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		return m.applyFetch(msg)

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		if t := m.view.Current(); t != nil {
			m.recenter(*t)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.moveRow(-1)
		case "down", "j":
			m.moveRow(1)
		case "left", "h":
			m.moveCol(-1)
		case "right", "l":
			m.moveCol(1)
		case "enter":
			if p, ok := m.cursorPerson(); ok {
				m.view.BeginLoading(p.ID)
				return m, m.fetchCmd(p.ID)
			}
		case "r":
			if id := m.view.RetryID(); id != "" {
				m.view.BeginLoading(id)
				return m, m.fetchCmd(id)
			}
		}
	}
	return m, nil
}

// applyFetch feeds a fetch response into the view. Responses for anything
// other than the current selection are dropped by the view.
func (m *browseModel) applyFetch(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.view.Fail(msg.personID, msg.err)
		return m, nil
	}

	t, err := tree.Compose(msg.set, tree.Options{FrameWidth: m.frameWidth})
	if err != nil {
		m.view.Fail(msg.personID, err)
		return m, nil
	}

	if m.view.Complete(msg.personID, t) {
		m.rowIdx = 1
		m.colIdx = len(msg.set.Siblings) // the selected person's slot in the center row
		m.recenter(t)
		if m.onVisit != nil {
			m.onVisit(msg.personID)
		}
	}
	return m, nil
}

// recenter asks the controller to bring the selected card into view for
// the current terminal width.
func (m *browseModel) recenter(t tree.Tree) {
	m.ctrl.Select(t.SelectedID)
	m.ctrl.Apply(t.Center, float64(m.termWidth)*colPixels)
}

func (m *browseModel) rows() [][]family.Person {
	t := m.view.Current()
	if t == nil {
		return nil
	}
	return [][]family.Person{t.Set.Parents, t.Set.CenterRow(), t.Set.Children}
}

func (m *browseModel) moveRow(delta int) {
	rows := m.rows()
	if rows == nil {
		return
	}
	next := m.rowIdx + delta
	for next >= 0 && next < len(rows) {
		if len(rows[next]) > 0 {
			m.rowIdx = next
			if m.colIdx >= len(rows[next]) {
				m.colIdx = len(rows[next]) - 1
			}
			return
		}
		next += delta
	}
}

func (m *browseModel) moveCol(delta int) {
	rows := m.rows()
	if rows == nil || len(rows[m.rowIdx]) == 0 {
		return
	}
	next := m.colIdx + delta
	if next >= 0 && next < len(rows[m.rowIdx]) {
		m.colIdx = next
	}
}

// cursorPerson returns the person under the cursor.
func (m *browseModel) cursorPerson() (family.Person, bool) {
	rows := m.rows()
	if rows == nil || m.rowIdx >= len(rows) || m.colIdx >= len(rows[m.rowIdx]) {
		return family.Person{}, false
	}
	return rows[m.rowIdx][m.colIdx], true
}

func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.view.Current()
	if t == nil {
		if banner, ok := m.view.ErrorBanner(); ok {
			return StyleError.Render(iconError+" "+banner) + "\n" + StyleDim.Render("r retry  q quit") + "\n"
		}
		return StyleDim.Render("Loading tree…") + "\n"
	}

	var b strings.Builder
	selected := t.People()[t.SelectedID]
	b.WriteString(StyleTitle.Render("Family tree of " + selected.DisplayName()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ rows  ←/→ people  ⏎ recenter  q quit"))
	b.WriteString("\n\n")

	labels := []string{layout.LandmarkParents, layout.LandmarkCenter, layout.LandmarkChildren}
	rows := m.rows()
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		b.WriteString(rowLabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.renderRow(row, i, t.SelectedID))
		b.WriteString("\n")
	}

	if banner, ok := m.view.ErrorBanner(); ok {
		b.WriteString(StyleError.Render(iconError + " " + banner))
		b.WriteString(StyleDim.Render("  (r to retry)"))
		b.WriteString("\n")
	} else if m.view.Dimmed() {
		b.WriteString(StyleDim.Render("loading…"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow draws one row of cards. The center row starts at the card the
// centering controller scrolled to; the outer rows always start at zero.
func (m *browseModel) renderRow(row []family.Person, rowIdx int, selectedID string) string {
	start := 0
	if rowIdx == 1 && m.centerOffset > 0 {
		start = int(m.centerOffset / (layout.CardWidth + layout.CardGap))
		if start >= len(row) {
			start = len(row) - 1
		}
	}

	cards := make([]string, 0, len(row)-start)
	for i := start; i < len(row); i++ {
		p := row[i]
		label := p.DisplayName()
		if span := p.Lifespan(); span != "" {
			label += "\n" + span
		}

		style := cardNormalStyle
		switch {
		case rowIdx == m.rowIdx && i == m.colIdx:
			style = cardCursorStyle
		case p.ID == selectedID:
			style = cardSelectedStyle
		}
		if m.view.Dimmed() {
			style = style.Foreground(colorDim)
		}
		cards = append(cards, style.Render(label))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if m.view.Dimmed() {
		return dimmedStyle.Render(stripANSI(line))
	}
	return line
}

// stripANSI removes escape sequences so a styled line can be re-rendered
// dim. Lipgloss cannot restyle already-rendered output.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
