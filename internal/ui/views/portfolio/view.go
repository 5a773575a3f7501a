package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backingdto "chemlab/internal/modules/backing/dto"
	couplesdto "chemlab/internal/modules/couples/dto"
	"chemlab/internal/platform/money"
	"chemlab/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context, address string) (backingdto.ListOutput, error)
	Claimable(ctx context.Context, address string) ([]backingdto.ClaimableOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	List      backingdto.ListOutput
	Claimable []backingdto.ClaimableOutput
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model lists the connected wallet's backings and claimable rewards.
type Model struct {
	port      Port
	address   string
	table     table.Model
	spinner   spinner.Model
	couples   map[string]couplesdto.CoupleOutput
	list      backingdto.ListOutput
	claimable []backingdto.ClaimableOutput
	loading   bool
	err       error
	width     int
	height    int
}

func New(port Port, address string) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		address: address,
		table:   t,
		spinner: sp,
		couples: map[string]couplesdto.CoupleOutput{},
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload fetches backings and rewards again.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.err = nil
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// SetCouples supplies names and milestone titles for the rows.
func (m *Model) SetCouples(couples []couplesdto.CoupleOutput) {
	m.couples = make(map[string]couplesdto.CoupleOutput, len(couples))
	for _, c := range couples {
		m.couples[c.ID] = c
	}
	m.table.SetRows(m.rows())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(m.width))
		m.table.SetHeight(max(m.height-8, 3))

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.list = msg.List
			m.claimable = msg.Claimable
			m.table.SetRows(m.rows())
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Reload()
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading backings…")
	}
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("Failed to fetch backings")+"\n"+theme.Muted.Render("press r to retry"))
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Portfolio") + "  " + theme.Muted.Render(m.address) + "\n")
	sb.WriteString(fmt.Sprintf("%d backings · %s backed · %s potential winnings\n\n",
		m.list.Total, money.Format(m.list.TotalBacked), money.Format(m.list.TotalPotentialWinnings)))
	if m.list.Total == 0 {
		sb.WriteString(theme.Muted.Render("No backings yet. Swipe right on a couple to back them.") + "\n")
	} else {
		sb.WriteString(m.table.View() + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Claimable") + "\n")
	if len(m.claimable) == 0 {
		sb.WriteString(theme.Muted.Render("nothing to claim") + "\n")
	}
	var total int64
	for _, c := range m.claimable {
		total += c.Payout
		sb.WriteString(fmt.Sprintf("%s · %s  %s\n", c.CoupleNames, c.MilestoneTitle, theme.Good.Render(money.Format(c.Payout))))
	}
	if total > 0 {
		sb.WriteString(theme.Hot.Render("total " + money.FormatWithUnit(total)))
	}
	return sb.String()
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.list.Backings))
	for _, b := range m.list.Backings {
		names, title := b.CoupleID, fmt.Sprintf("#%d", b.MilestoneID)
		if c, ok := m.couples[b.CoupleID]; ok {
			names = c.Names()
			if ms, ok := c.Milestone(b.MilestoneID); ok {
				title = ms.Title
			}
		}
		rows = append(rows, table.Row{
			names,
			title,
			money.Format(b.Amount),
			money.Format(b.PotentialWinnings),
			b.Timestamp.Local().Format("Jan 2 15:04"),
		})
	}
	return rows
}

func columns(width int) []table.Column {
	fixed := 12 + 12 + 14
	flex := max(width-fixed-8, 20)
	return []table.Column{
		{Title: "Couple", Width: flex / 2},
		{Title: "Milestone", Width: flex - flex/2},
		{Title: "Stake", Width: 12},
		{Title: "Potential", Width: 12},
		{Title: "When", Width: 14},
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		list, err := m.port.List(ctx, m.address)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		claimable, err := m.port.Claimable(ctx, m.address)
		return LoadedMsg{List: list, Claimable: claimable, Err: err}
	}
}
