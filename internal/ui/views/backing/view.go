package backing

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backingdto "chemlab/internal/modules/backing/dto"
	couplesdto "chemlab/internal/modules/couples/dto"
	"chemlab/internal/platform/money"
	"chemlab/internal/ui/theme"
)

// StakeStep is the amount +/- moves a selected stake by.
const StakeStep = money.OneUSDC / 2

// ─── ports ───────────────────────────────────────────────────────────────────

// Flow is the open milestone selection the modal edits.
type Flow interface {
	Toggle(milestoneID int) (bool, error)
	SetStake(milestoneID int, amount int64) error
	Snapshot() backingdto.FlowOutput
	Begin(address string) (backingdto.SubmitInput, error)
	Fail(err error)
}

type Port interface {
	StartFlow(ctx context.Context, coupleID string) (Flow, error)
	Submit(ctx context.Context, input backingdto.SubmitInput) (backingdto.SubmitOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type flowStartedMsg struct {
	coupleID string
	flow     Flow
	err      error
}

type submittedMsg struct {
	out backingdto.SubmitOutput
	err error
}

// BackedMsg reports a completed submission. The modal has closed.
type BackedMsg struct {
	Out backingdto.SubmitOutput
}

// ClosedMsg reports that the modal was dismissed without backing.
type ClosedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the backing modal shown after a commit swipe.
type Model struct {
	port    Port
	address string
	spinner spinner.Model

	couple   couplesdto.CoupleOutput
	flow     Flow
	snapshot backingdto.FlowOutput
	cursor   int
	notice   string
	visible  bool
	width    int
}

func New(port Port, address string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Peach)
	return Model{port: port, address: address, spinner: sp}
}

func (m Model) Visible() bool { return m.visible }

// Open shows the modal for couple and starts a fresh selection.
func (m *Model) Open(couple couplesdto.CoupleOutput) tea.Cmd {
	m.visible = true
	m.couple = couple
	m.flow = nil
	m.snapshot = backingdto.FlowOutput{CoupleID: couple.ID, CoupleNames: couple.Names()}
	m.cursor = 0
	m.notice = ""
	port := m.port
	return func() tea.Msg {
		f, err := port.StartFlow(context.Background(), couple.ID)
		return flowStartedMsg{coupleID: couple.ID, flow: f, err: err}
	}
}

func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flowStartedMsg:
		if !m.visible || msg.coupleID != m.couple.ID {
			return m, nil
		}
		if msg.err != nil {
			m.notice = "Could not open backing: " + msg.err.Error()
			return m, nil
		}
		m.flow = msg.flow
		m.snapshot = m.flow.Snapshot()

	case submittedMsg:
		if m.flow == nil {
			return m, nil
		}
		if msg.err != nil {
			m.flow.Fail(msg.err)
			m.snapshot = m.flow.Snapshot()
			m.notice = "Backing failed, your selection is kept. Press enter to retry."
			return m, nil
		}
		m.close()
		out := msg.out
		return m, func() tea.Msg { return BackedMsg{Out: out} }

	case spinner.TickMsg:
		if m.snapshot.Pending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		if m.snapshot.Pending {
			return m, nil
		}
		m.close()
		return m, func() tea.Msg { return ClosedMsg{} }
	}
	if m.flow == nil {
		return m, nil
	}

	terms := m.snapshot.Milestones
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(terms)-1 {
			m.cursor++
		}
	case " ", "x":
		m.toggle(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(terms) {
			m.cursor = idx
			m.toggle(idx)
		}
	case "+", "=":
		m.adjust(StakeStep)
	case "-", "_":
		m.adjust(-StakeStep)
	case "enter":
		return m.submit()
	}
	return m, nil
}

func (m *Model) toggle(idx int) {
	if idx >= len(m.snapshot.Milestones) {
		return
	}
	t := m.snapshot.Milestones[idx]
	if t.Resolved {
		m.notice = t.Title + " is already resolved"
		return
	}
	if _, err := m.flow.Toggle(t.MilestoneID); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
	m.snapshot = m.flow.Snapshot()
}

func (m *Model) adjust(delta int64) {
	if m.cursor >= len(m.snapshot.Milestones) {
		return
	}
	t := m.snapshot.Milestones[m.cursor]
	if !t.Selected {
		m.notice = "select the milestone first"
		return
	}
	if err := m.flow.SetStake(t.MilestoneID, t.Stake+delta); err != nil {
		m.notice = fmt.Sprintf("minimum stake is %s", money.Format(t.MinStake))
		return
	}
	m.notice = ""
	m.snapshot = m.flow.Snapshot()
}

func (m Model) submit() (Model, tea.Cmd) {
	input, err := m.flow.Begin(m.address)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""
	m.snapshot = m.flow.Snapshot()
	port := m.port
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := port.Submit(context.Background(), input)
		return submittedMsg{out: out, err: err}
	})
}

func (m *Model) close() {
	m.visible = false
	m.flow = nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render("Back "+m.couple.Names()) + "  " +
		theme.Muted.Render(fmt.Sprintf("%d%% Match", m.couple.ChemistryScore)) + "\n")
	sb.WriteString(theme.Muted.Render(m.couple.Backstory) + "\n\n")
	sb.WriteString(theme.Title.Render("Select Milestones to Back") + "\n")

	if m.flow == nil && m.notice == "" {
		sb.WriteString(theme.Muted.Render("loading milestones…") + "\n")
	}
	for i, t := range m.snapshot.Milestones {
		sb.WriteString(m.renderTerms(i, t))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total Backing:      %s\n", money.FormatWithUnit(m.snapshot.TotalStake)))
	sb.WriteString(fmt.Sprintf("Potential Winnings: %s\n", money.FormatWithUnit(m.snapshot.PotentialWinnings)))
	if m.snapshot.ProjectedPayout != m.snapshot.PotentialWinnings {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("Projected payout:   %s", money.FormatWithUnit(m.snapshot.ProjectedPayout))) + "\n")
	}

	switch {
	case m.snapshot.Pending:
		sb.WriteString("\n" + m.spinner.View() + " Backing...")
	case m.notice != "":
		sb.WriteString("\n" + theme.Bad.Render(m.notice))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("1-9/space toggle  ↑/↓ move  +/- stake  enter back  esc close"))

	w := m.width
	if w < 40 {
		w = 72
	}
	return theme.PaneActive.BorderForeground(theme.Peach).Width(w - 2).Render(sb.String())
}

func (m Model) renderTerms(i int, t backingdto.TermsOutput) string {
	ms, _ := m.couple.Milestone(t.MilestoneID)
	mark := "[ ]"
	if t.Selected {
		mark = theme.Good.Render("[x]")
	}
	cursor := "  "
	if i == m.cursor {
		cursor = theme.Hot.Render("> ")
	}
	title := fmt.Sprintf("%d. %s", i+1, t.Title)
	if t.Resolved {
		title = theme.Muted.Render(title + " (resolved)")
	}
	line := fmt.Sprintf("%s%s %s %s\n", cursor, mark, durationDot(ms.Duration), title)
	detail := fmt.Sprintf("       Min: %s · %s · %.2fx", money.Format(t.MinStake), ms.TimeRemaining, float64(t.Multiplier)/100)
	if t.Selected {
		detail += fmt.Sprintf(" · stake %s · Potential Win %s", money.Format(t.Stake), money.Format(t.Stake))
	}
	return line + theme.Muted.Render(detail) + "\n"
}

func durationDot(d string) string {
	c := theme.Red
	switch d {
	case "short":
		c = theme.Green
	case "medium":
		c = theme.Yellow
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}
