package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	lbdto "chemlab/internal/modules/leaderboard/dto"
	"chemlab/internal/platform/basename"
	"chemlab/internal/platform/money"
	"chemlab/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Board(ctx context.Context) (lbdto.BoardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type BoardLoadedMsg struct {
	Board lbdto.BoardOutput
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type backerItem struct {
	rank   int
	backer lbdto.BackerOutput
}

func (i backerItem) Title() string {
	return fmt.Sprintf("#%d %s", i.rank, i.backer.Username)
}

func (i backerItem) Description() string {
	return fmt.Sprintf("%s backed · %s won · %.0f%% success · %d backings",
		money.Format(i.backer.TotalBacked), money.Format(i.backer.TotalWon),
		i.backer.SuccessRate*100, i.backer.BackingCount)
}

func (i backerItem) FilterValue() string { return i.backer.Username }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	list    list.Model
	board   lbdto.BoardOutput
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Top Backers"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload fetches the board again.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.err = nil
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width/2, m.height)

	case BoardLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.board = msg.Board
		items := make([]list.Item, len(msg.Board.TopBackers))
		for i, b := range msg.Board.TopBackers {
			items[i] = backerItem{rank: i + 1, backer: b}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.err != nil && msg.String() == "r" {
			return m, m.Reload()
		}
	}

	if !m.loading && m.err == nil {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading leaderboard…")
	}
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("Failed to fetch leaderboard")+"\n"+theme.Muted.Render("press r to retry"))
	}

	listW := m.width / 2
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	side := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - listW - 2).
		Height(m.height - 2).
		Render(m.renderSide())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, side)
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) renderSide() string {
	s := m.board.CommunityStats
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Community") + "\n")
	sb.WriteString(fmt.Sprintf("%s couples supported\n", theme.Hot.Render(fmt.Sprint(s.TotalCouplesSupported))))
	sb.WriteString(fmt.Sprintf("%s backed · %s won\n", money.Format(s.TotalUSDCBacked), money.Format(s.TotalUSDCWon)))
	sb.WriteString(fmt.Sprintf("%.0f%% average success · %d active backers\n\n", s.AverageSuccessRate*100, s.ActiveBackers))

	sb.WriteString(theme.Title.Render("Recent Wins") + "\n")
	if len(m.board.RecentWins) == 0 {
		sb.WriteString(theme.Muted.Render("no wins yet") + "\n")
	}
	for _, w := range m.board.RecentWins {
		sb.WriteString(fmt.Sprintf("%s won %s\n", w.Username, theme.Good.Render(money.Format(w.Winnings))))
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %s · %s · %s", w.CoupleNames, w.Milestone, w.Timestamp.Format("15:04"))) + "\n")
	}

	if item, ok := m.list.SelectedItem().(backerItem); ok {
		sb.WriteString("\n" + theme.Muted.Render("wallet ") + basename.ShortenAddress(item.backer.Address, 4))
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		b, err := m.port.Board(context.Background())
		return BoardLoadedMsg{Board: b, Err: err}
	}
}
