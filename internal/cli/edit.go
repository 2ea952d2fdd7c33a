package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/pkg/catalog"
	"github.com/uspp-raketa/vertexsim/pkg/compare"
	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// newEditCmd creates the edit command.
func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [A B]",
		Short: "Interactively build two graphs with a live similarity table",
		Long: `Open the interactive editor: two graph panes and a similarity table
that recomputes after every change.

Without arguments both graphs start empty. With two arguments the panes
are seeded from graph sources (file paths or "example:NAME").

Keys:
  tab        switch pane
  ↑/↓, k/j   select node
  a          add node
  d          delete node (and its links)
  c          connect: pick a source, then a target, in the same pane
  u          unlink: pick two nodes the same way
  r          toggle the reflexive marker
  e          load the next example pair
  n          start over with two empty graphs
  ?          help
  q          quit`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			row, col := graph.New(), graph.New()
			if len(args) == 2 {
				if row, _, err = resolveGraph(args[0], sideRow); err != nil {
					return err
				}
				if col, _, err = resolveGraph(args[1], sideCol); err != nil {
					return err
				}
			}

			m := newEditorModel(row, col, compare.Options{
				Tolerance: cfg.Engine.Tolerance,
				MaxRounds: cfg.Engine.MaxRounds,
			})
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// editorMode is the editor's input mode.
type editorMode int

const (
	modeNormal editorMode = iota
	modeConnect            // a link source is picked, awaiting the target
	modeUnlink             // an unlink source is picked, awaiting the target
)

// editorModel is the bubbletea model for the two-graph editor.
type editorModel struct {
	graphs  [2]*graph.Graph
	cursors [2]int // node-list index per pane
	pane    int    // active pane, 0 = A, 1 = B

	mode     editorMode
	memberID int // picked source node ID in connect/unlink mode

	runner  *compare.Runner
	opts    compare.Options
	report  *compare.Report
	lastErr error

	example  int // next catalog pair index for the e key
	showHelp bool
}

// newEditorModel builds the editor around two freshly scored graphs. The
// runner is cacheless and silent: every keystroke recomputes and the TUI
// owns the terminal.
func newEditorModel(row, col *graph.Graph, opts compare.Options) *editorModel {
	m := &editorModel{
		graphs: [2]*graph.Graph{row, col},
		runner: compare.NewRunner(nil, charmlog.NewWithOptions(io.Discard, charmlog.Options{})),
		opts:   opts,
	}
	m.rescore()
	return m
}

func (m *editorModel) Init() tea.Cmd {
	return nil
}

// rescore recomputes the similarity table. An empty graph on either side
// clears the table, matching the contract that no result is shown then.
func (m *editorModel) rescore() {
	rep, err := m.runner.Run(context.Background(), m.graphs[0], m.graphs[1], m.opts)
	if err != nil {
		m.report, m.lastErr = nil, err
		return
	}
	m.report, m.lastErr = rep, nil
}

// active returns the active pane's graph.
func (m *editorModel) active() *graph.Graph {
	return m.graphs[m.pane]
}

// selectedID returns the active pane's selected node ID, or -1 when the
// graph is empty.
func (m *editorModel) selectedID() int {
	ids := m.active().NodeIDs()
	if len(ids) == 0 {
		return -1
	}
	if m.cursors[m.pane] >= len(ids) {
		m.cursors[m.pane] = len(ids) - 1
	}
	return ids[m.cursors[m.pane]]
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "esc":
		m.mode = modeNormal

	case "tab":
		m.pane = 1 - m.pane
		m.mode = modeNormal

	case "up", "k":
		if m.cursors[m.pane] > 0 {
			m.cursors[m.pane]--
		}

	case "down", "j":
		if m.cursors[m.pane] < m.active().NodeCount()-1 {
			m.cursors[m.pane]++
		}

	case "a":
		m.active().AddNode()
		m.cursors[m.pane] = m.active().NodeCount() - 1
		m.mode = modeNormal
		m.rescore()

	case "d":
		if id := m.selectedID(); id >= 0 {
			m.lastErr = m.active().RemoveNode(id)
			if m.cursors[m.pane] >= m.active().NodeCount() && m.cursors[m.pane] > 0 {
				m.cursors[m.pane]--
			}
			m.mode = modeNormal
			m.rescore()
		}

	case "r":
		if id := m.selectedID(); id >= 0 {
			node, _ := m.active().Node(id)
			m.lastErr = m.active().SetReflexive(id, !node.Reflexive)
		}

	case "c":
		m.pick(modeConnect)

	case "u":
		m.pick(modeUnlink)

	case "enter":
		if m.mode != modeNormal {
			m.finishPick()
		}

	case "e":
		pairs := catalog.All()
		p := pairs[m.example%len(pairs)]
		m.example++
		m.graphs[0], m.graphs[1] = p.Build()
		m.cursors = [2]int{0, 0}
		m.mode = modeNormal
		m.rescore()

	case "n":
		m.graphs = [2]*graph.Graph{graph.New(), graph.New()}
		m.cursors = [2]int{0, 0}
		m.mode = modeNormal
		m.rescore()
	}

	return m, nil
}

// pick starts or completes a two-node selection for connect/unlink.
// Pressing the key once marks the selected node as source; pressing it
// again on another node completes the operation.
func (m *editorModel) pick(mode editorMode) {
	id := m.selectedID()
	if id < 0 {
		return
	}
	if m.mode == mode && m.memberID != id {
		m.finishPick()
		return
	}
	m.mode = mode
	m.memberID = id
}

// finishPick applies the pending connect or unlink between the picked
// source and the currently selected node.
func (m *editorModel) finishPick() {
	target := m.selectedID()
	if target < 0 || target == m.memberID {
		return
	}
	switch m.mode {
	case modeConnect:
		_, m.lastErr = m.active().AddLink(m.memberID, target)
	case modeUnlink:
		m.lastErr = m.active().RemoveLink(m.memberID, target)
	}
	m.mode = modeNormal
	m.rescore()
}

// Pane styles.
var (
	paneActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1)
	paneInactiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

func (m *editorModel) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("vertexsim editor"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab pane  a add  d delete  c connect  u unlink  r reflexive  e example  ? help  q quit"))
	b.WriteString("\n\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.paneView(0, "Graph A"),
		"  ",
		m.paneView(1, "Graph B"),
	)
	b.WriteString(panes)
	b.WriteString("\n")

	switch m.mode {
	case modeConnect:
		b.WriteString(StyleWarning.Render(fmt.Sprintf("connect: %d → select target, press c or enter", m.memberID)))
		b.WriteString("\n")
	case modeUnlink:
		b.WriteString(StyleWarning.Render(fmt.Sprintf("unlink: %d — select the other node, press u or enter", m.memberID)))
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString(StyleWarning.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}

	if m.report != nil && len(m.report.Scores) > 0 {
		b.WriteString("\n")
		b.WriteString(scoreTable(m.report))
		b.WriteString("\n")
		status := fmt.Sprintf("  %d rounds", m.report.Rounds)
		if !m.report.Converged {
			status += " · did not converge"
		}
		b.WriteString(StyleDim.Render(status))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("  add nodes to both graphs to see the similarity table"))
		b.WriteString("\n")
	}

	return b.String()
}

// paneView renders one graph pane: the node list with cursor, reflexive
// markers and outgoing edges.
func (m *editorModel) paneView(pane int, title string) string {
	g := m.graphs[pane]
	var b strings.Builder

	b.WriteString(StyleHeader.Render(title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d nodes · %d edges", g.NodeCount(), g.EdgeCount())))
	b.WriteString("\n")

	ids := g.NodeIDs()
	if len(ids) == 0 {
		b.WriteString(StyleDim.Render("(empty)"))
	}
	for i, id := range ids {
		cursor := "  "
		if pane == m.pane && i == m.cursors[pane] {
			cursor = "▸ "
		}

		line := cursor + strconv.Itoa(id)
		if node, ok := g.Node(id); ok && node.Reflexive {
			line += " ⟲"
		}
		if picked := m.mode != modeNormal && pane == m.pane && id == m.memberID; picked {
			line += " *"
		}
		if out := g.OutNeighbors(id); len(out) > 0 {
			targets := make([]string, len(out))
			for k, t := range out {
				targets[k] = strconv.Itoa(t)
			}
			line += StyleDim.Render(" " + iconArrow + " " + strings.Join(targets, ","))
		}

		if pane == m.pane && i == m.cursors[pane] {
			b.WriteString(StyleHighlight.Render(line))
		} else {
			b.WriteString(StyleValue.Render(line))
		}
		b.WriteString("\n")
	}

	style := paneInactiveStyle
	if pane == m.pane {
		style = paneActiveStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *editorModel) helpView() string {
	help := `
  vertexsim editor

  tab         switch between graph A and graph B
  ↑/↓, k/j    move the node cursor
  a           add a node
  d           delete the selected node and every link touching it
  c           connect: press on the source node, move to the target,
              press c (or enter) again; direction is source → target
  u           unlink: same gesture, removes the pair's link
  r           toggle the reflexive marker (display only, no self loop)
  e           load the next example pair from the catalog
  n           start over with two empty graphs
  esc         cancel a pending connect/unlink
  q, ctrl+c   quit

  The table recomputes after every change. Rows are graph A's nodes,
  columns graph B's; the highlighted cell is each row's best match.

  press any key to close help`
	return help
}
