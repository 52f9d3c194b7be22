package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flowboard/flowboard/pkg/board"
	"github.com/flowboard/flowboard/pkg/errors"
)

// List styles
var (
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuiNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	tuiDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tuiMarkStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// Editor modes. Normal handles navigation and single-key operations; input
// collects a label for rename/add; pick waits for a second node to complete
// a connect or reparent gesture.
const (
	modeNormal = iota
	modeInput
	modePick
)

// Pending input/pick actions.
const (
	actionRename = iota
	actionAddChild
	actionAddRoot
	actionConnect
	actionReparent
)

// row is one line of the visible tree: a node plus its indent depth.
type row struct {
	node  *board.Node
	depth int
}

// EditorModel is the bubbletea model for the interactive board editor.
//
// The model holds a reference to the board and translates key presses into
// board operations; it owns only presentation state (cursor, scroll offset,
// pending gesture, selection). The currently selected node is tracked here,
// outside the board's invariant-bearing state.
type EditorModel struct {
	Board *board.Board
	Path  string

	rows    []row
	cursor  int
	offset  int
	height  int
	mode    int
	action  int
	mark    string // first node of a two-node gesture
	input   textinput.Model
	status  string
	dirty   bool
	saveErr error
}

// NewEditorModel creates an editor over the given board.
func NewEditorModel(b *board.Board, path string) EditorModel {
	ti := textinput.New()
	ti.CharLimit = errors.MaxLabelLength
	m := EditorModel{
		Board:  b,
		Path:   path,
		height: 20,
		input:  ti,
	}
	m.rebuildRows()
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

// rebuildRows recomputes the visible tree order: roots in insertion order,
// descending into expanded nodes only. The visited set guards against
// cyclic hierarchies in hand-edited documents.
func (m *EditorModel) rebuildRows() {
	m.rows = nil
	visited := map[string]bool{}
	var walk func(n *board.Node, depth int)
	walk = func(n *board.Node, depth int) {
		if visited[n.ID] {
			return
		}
		visited[n.ID] = true
		m.rows = append(m.rows, row{node: n, depth: depth})
		if !n.Expanded {
			return
		}
		for _, childID := range n.Children {
			if c, ok := m.Board.Node(childID); ok {
				walk(c, depth+1)
			}
		}
	}
	for _, n := range m.Board.Roots() {
		walk(n, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the node under the cursor, or nil on an empty board.
func (m *EditorModel) selected() *board.Node {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.cursor].node
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modePick:
			return m.updatePick(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m EditorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.dirty {
			m.saveErr = saveBoard(m.Board, m.Path)
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}

	case "enter", " ":
		if n := m.selected(); n != nil {
			m.Board.ToggleExpand(n.ID)
			m.dirty = true
			m.rebuildRows()
		}
	case "E":
		m.Board.ToggleExpandAll()
		m.dirty = true
		m.rebuildRows()

	case "a":
		if m.selected() == nil {
			return m.startInput(actionAddRoot, "")
		}
		return m.startInput(actionAddChild, "")
	case "A":
		return m.startInput(actionAddRoot, "")
	case "r":
		if n := m.selected(); n != nil {
			return m.startInput(actionRename, n.Label)
		}
	case "c":
		if n := m.selected(); n != nil {
			m.mode = modePick
			m.action = actionConnect
			m.mark = n.ID
			m.status = "connect: pick the target node, esc to cancel"
		}
	case "p":
		if n := m.selected(); n != nil {
			m.mode = modePick
			m.action = actionReparent
			m.mark = n.ID
			m.status = "reparent: pick the new parent, esc to cancel"
		}
	case "P":
		if n := m.selected(); n != nil {
			if err := m.Board.SetParent(n.ID, ""); err == nil {
				m.dirty = true
				m.status = "detached " + n.Label
				m.rebuildRows()
			}
		}
	case "d":
		if n := m.selected(); n != nil {
			m.Board.RemoveNode(n.ID)
			m.dirty = true
			m.status = "removed " + n.Label
			m.rebuildRows()
		}

	case "s":
		if err := saveBoard(m.Board, m.Path); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.dirty = false
			m.status = "saved " + m.Path
		}
	}
	return m, nil
}

func (m EditorModel) startInput(action int, initial string) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.action = action
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	switch action {
	case actionRename:
		m.status = "rename: enter to apply, esc to cancel"
	default:
		m.status = "new node label: enter to apply, esc to cancel"
	}
	return m, textinput.Blink
}

func (m EditorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.status = ""
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.mode = modeNormal
		m.status = ""
		switch m.action {
		case actionRename:
			if n := m.selected(); n != nil && value != "" {
				m.Board.SetLabel(n.ID, value)
				m.dirty = true
			}
		case actionAddRoot:
			m.Board.AddNode(value, board.Position{})
			m.dirty = true
		case actionAddChild:
			parent := m.selected()
			id := m.Board.AddNode(value, board.Position{})
			if parent != nil {
				// Freshly created node: SetParent cannot fail here.
				_ = m.Board.SetParent(id, parent.ID)
			}
			m.dirty = true
		}
		m.rebuildRows()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m EditorModel) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.mark = ""
		m.status = ""
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "enter", " ":
		target := m.selected()
		if target == nil {
			return m, nil
		}
		var err error
		switch m.action {
		case actionConnect:
			_, err = m.Board.Connect(m.mark, target.ID)
		case actionReparent:
			err = m.Board.SetParent(m.mark, target.ID)
		}
		if err != nil {
			// Rejected: the board is untouched, just surface the reason.
			m.status = errors.UserMessage(classify(err))
		} else {
			m.dirty = true
			m.status = ""
			m.rebuildRows()
		}
		m.mode = modeNormal
		m.mark = ""
	}
	return m, nil
}

func (m EditorModel) View() string {
	var sb strings.Builder

	title := m.Path
	if m.dirty {
		title += " *"
	}
	sb.WriteString(StyleTitle.Render(title) + "\n\n")

	if len(m.rows) == 0 {
		sb.WriteString(tuiDimStyle.Render("  empty board, press a to add a node") + "\n")
	}

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		line := strings.Repeat("  ", r.depth) + r.node.Label
		if r.node.HasChildren() && !r.node.Expanded {
			line += fmt.Sprintf(" [+%d]", len(r.node.Children))
		}

		style := tuiNormalStyle
		prefix := "  "
		if i == m.cursor {
			style = tuiSelectedStyle
			prefix = "> "
		}
		if r.node.ID == m.mark {
			prefix = tuiMarkStyle.Render("* ")
		}
		sb.WriteString(prefix + style.Render(line) + "\n")
	}

	sb.WriteString("\n")
	if m.mode == modeInput {
		sb.WriteString(m.input.View() + "\n")
	}
	if m.status != "" {
		sb.WriteString(StyleWarning.Render(m.status) + "\n")
	} else {
		sb.WriteString(tuiDimStyle.Render("enter toggle · a add · r rename · c connect · p parent · P detach · d delete · E all · s save · q quit") + "\n")
	}
	return sb.String()
}
