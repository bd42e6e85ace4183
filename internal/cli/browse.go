package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/script"
	"github.com/matzehuels/listview/pkg/transcript"
)

func (c *CLI) browseCommand() *cobra.Command {
	var opts sessionOpts

	cmd := &cobra.Command{
		Use:   "browse SCRIPT.toml",
		Short: "Step through a script's diagrams in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, path string, opts *sessionOpts) error {
	if !isTerminal(os.Stdout) {
		return errors.New(errors.ErrCodeInvalidInput, "browse needs a terminal; use \"%s run\" to write a transcript", appName)
	}

	cfg, err := opts.load()
	if err != nil {
		return err
	}
	s, err := script.Load(path)
	if err != nil {
		return err
	}

	rec := transcript.NewRecorder()
	v, runErr := script.Run(s, rec, c.viewOptions(cfg, opts))
	if v != nil {
		v.Close()
	}
	if len(rec.Entries()) == 0 {
		return runErr
	}

	m := newBrowseModel(path, rec.Entries(), runErr)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return runErr
}

// =============================================================================
// browseModel - Step through recorded operations
// =============================================================================

var (
	browseHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseCallerStyle = lipgloss.NewStyle().Foreground(colorGray)
	browseBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// browseModel is the bubbletea model for the browse command.
type browseModel struct {
	title   string
	entries []transcript.Entry
	failure error

	cursor  int  // selected entry
	showDOT bool // DOT source instead of the summary
	offset  int  // first DOT line shown
	height  int
}

func newBrowseModel(title string, entries []transcript.Entry, failure error) browseModel {
	return browseModel{title: title, entries: entries, failure: failure, height: 20}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.offset = 0
			}
		case "left", "h", "p":
			if m.cursor > 0 {
				m.cursor--
				m.offset = 0
			}
		case "home", "g":
			m.cursor, m.offset = 0, 0
		case "end", "G":
			m.cursor, m.offset = len(m.entries)-1, 0
		case "tab", "d":
			m.showDOT = !m.showDOT
			m.offset = 0
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "up", "k":
			if m.offset > 0 {
				m.offset--
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

func (m browseModel) dotLines() []string {
	d := m.entries[m.cursor].Diagram
	if d == nil {
		return nil
	}
	return strings.Split(strings.TrimRight(d.DOT, "\n"), "\n")
}

func (m browseModel) maxOffset() int {
	if !m.showDOT {
		return 0
	}
	return max(0, len(m.dotLines())-m.height)
}

func (m browseModel) View() string {
	var b strings.Builder

	e := m.entries[m.cursor]
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.entries))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  tab DOT/summary  ↑/↓ scroll  q quit"))
	b.WriteString("\n\n")

	b.WriteString(browseHeaderStyle.Render(e.Name))
	b.WriteString(" ")
	b.WriteString(browseCallerStyle.Render("from " + e.Caller.String()))
	b.WriteString("\n")

	b.WriteString(browseBoxStyle.Render(m.body(e)))
	b.WriteString("\n")

	if m.failure != nil && m.cursor == len(m.entries)-1 {
		b.WriteString(styleIconError.Render(iconError) + " " + m.failure.Error() + "\n")
	}
	return b.String()
}

func (m browseModel) body(e transcript.Entry) string {
	d := e.Diagram
	if d == nil {
		return StyleDim.Render("read-only operation; no diagram")
	}
	if m.showDOT {
		lines := m.dotLines()
		end := min(len(lines), m.offset+m.height)
		return strings.Join(lines[m.offset:end], "\n")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("diagram"), StyleNumber.Render(fmt.Sprint(d.Seq)))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("nodes  "), StyleNumber.Render(fmt.Sprint(d.Nodes)))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("levels "), StyleNumber.Render(fmt.Sprint(d.Levels)))
	fmt.Fprintf(&b, "%s %s", StyleDim.Render("changes"), summaryLine(d.Summary))
	return b.String()
}
