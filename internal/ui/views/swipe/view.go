package swipe

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	couplesdto "chemlab/internal/modules/couples/dto"
	swipedto "chemlab/internal/modules/swipe/dto"
	"chemlab/internal/platform/money"
	"chemlab/internal/ui/theme"
)

// Terminal cells are mapped onto the gesture engine's pointer units so the
// drag thresholds keep their meaning.
const (
	CellWidth  = 8
	CellHeight = 16

	frameInterval = 16 * time.Millisecond
	cardWidth     = 46
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CouplesPort interface {
	ListCouples(ctx context.Context) (couplesdto.ListOutput, error)
}

// DeckPort is the part of the swipe session this view drives.
type DeckPort interface {
	SetCouples(couples []couplesdto.CoupleOutput)
	Couples() []couplesdto.CoupleOutput
	Current() (couplesdto.CoupleOutput, bool)
	Peek() (couplesdto.CoupleOutput, bool)
	Press(x, y float64, at time.Time) []swipedto.Event
	Move(x, y float64, at time.Time) []swipedto.Event
	Release(x, y float64, at time.Time) []swipedto.Event
	Fling(decision string) []swipedto.Event
	Tick(dt time.Duration) []swipedto.Event
	Resize(vp swipedto.Viewport)
	Frame() swipedto.Frame
	Summary() swipedto.Summary
}

// ─── messages ────────────────────────────────────────────────────────────────

type CouplesLoadedMsg struct {
	Couples []couplesdto.CoupleOutput
	Err     error
}

// CommittedMsg asks the app to open the backing flow for a couple.
type CommittedMsg struct {
	Couple couplesdto.CoupleOutput
}

type DecidedMsg struct {
	CoupleID string
	Decision string
}

type ExhaustedMsg struct{}

type frameMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	couples  CouplesPort
	deck     DeckPort
	spinner  spinner.Model
	details  viewport.Model
	renderer *glamour.TermRenderer

	loading     bool
	err         error
	ticking     bool
	lastFrame   time.Time
	showDetails bool
	width       int
	height      int
}

func New(couples CouplesPort, deck DeckPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{
		couples:  couples,
		deck:     deck,
		spinner:  sp,
		details:  viewport.New(0, 0),
		renderer: r,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCouplesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.deck.Resize(swipedto.Viewport{
			Width:  float64(m.width * CellWidth),
			Height: float64(m.height * CellHeight),
		})
		m.details.Width = m.width / 2
		m.details.Height = m.height - 2
		m.refreshDetails()

	case CouplesLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.deck.SetCouples(msg.Couples)
			m.refreshDetails()
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case frameMsg:
		at := time.Time(msg)
		dt := at.Sub(m.lastFrame)
		m.lastFrame = at
		cmds = append(cmds, m.emit(m.deck.Tick(dt)))
		if m.deck.Frame().Animating {
			cmds = append(cmds, nextFrame())
		} else {
			m.ticking = false
		}

	case tea.MouseMsg:
		if m.loading || m.err != nil {
			break
		}
		x, y := float64(msg.X*CellWidth), float64(msg.Y*CellHeight)
		now := time.Now()
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				cmds = append(cmds, m.emit(m.deck.Press(x, y, now)))
			}
		case tea.MouseActionMotion:
			cmds = append(cmds, m.emit(m.deck.Move(x, y, now)))
		case tea.MouseActionRelease:
			cmds = append(cmds, m.emit(m.deck.Release(x, y, now)))
		}
		cmds = append(cmds, m.startFrames())

	case tea.KeyMsg:
		if m.err != nil {
			if msg.String() == "r" {
				cmds = append(cmds, m.Reload())
			}
			break
		}
		switch msg.String() {
		case "left", "h":
			cmds = append(cmds, m.Fling(swipedto.DecisionReject))
		case "right", "l":
			cmds = append(cmds, m.Fling(swipedto.DecisionCommit))
		case "up", "k":
			cmds = append(cmds, m.Fling(swipedto.DecisionSkip))
		case "i":
			m.showDetails = !m.showDetails
			m.refreshDetails()
		case "ctrl+r":
			m.Restart()
		}
		if m.showDetails {
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// Fling plays a keyboard swipe and starts the exit animation.
func (m *Model) Fling(decision string) tea.Cmd {
	if m.loading || m.err != nil {
		return nil
	}
	return tea.Batch(m.emit(m.deck.Fling(decision)), m.startFrames())
}

// Restart replays the loaded couples from the first one.
func (m *Model) Restart() {
	m.deck.SetCouples(m.deck.Couples())
	m.refreshDetails()
}

// Reload fetches the candidate list again.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.err = nil
	return tea.Batch(m.loadCouplesCmd(), m.spinner.Tick)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading couples…")
	}
	if m.err != nil {
		msg := theme.Bad.Render("Failed to load couples") + "\n" +
			theme.Muted.Render(m.err.Error()) + "\n\n" +
			theme.Muted.Render("press r to retry")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	frame := m.deck.Frame()
	current, ok := m.deck.Current()
	if frame.Phase == "exhausted" || !ok {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderExhausted())
	}

	stack := m.renderStack(frame, current)
	if !m.showDetails {
		return stack
	}
	detail := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(m.width/2 - 2).
		Height(m.height - 2).
		Render(m.details.View())
	left := lipgloss.NewStyle().Width(m.width - m.width/2).Render(stack)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, detail)
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) stackWidth() int {
	if m.showDetails {
		return m.width - m.width/2
	}
	return m.width
}

func (m Model) renderStack(frame swipedto.Frame, current couplesdto.CoupleOutput) string {
	areaW := m.stackWidth()
	t := frame.Current

	w := int(math.Round(cardWidth * t.Scale))
	card := renderCard(current, w, t.Opacity < 0.5)
	if badge := renderBadges(frame.Badges); badge != "" {
		card = lipgloss.JoinVertical(lipgloss.Center, badge, card)
	} else {
		card = "\n" + card
	}

	left := (areaW-lipgloss.Width(card))/2 + int(t.X/CellWidth)
	left = clamp(left, 0, max(areaW-lipgloss.Width(card), 0))
	top := clamp(1+int(t.Y/CellHeight), 0, 4)
	placed := lipgloss.NewStyle().MarginLeft(left).MarginTop(top).Render(card)

	if next, ok := m.deck.Peek(); ok && frame.HasNext {
		nw := int(math.Round(cardWidth * frame.Next.Scale))
		peek := renderNextCard(next, nw, frame.Next.Opacity < 1)
		nl := max((areaW-lipgloss.Width(peek))/2, 0)
		nt := int(frame.Next.YOffset / 10)
		placed = lipgloss.JoinVertical(lipgloss.Left, placed,
			lipgloss.NewStyle().MarginLeft(nl).MarginTop(nt).Render(peek))
	}

	counter := theme.Muted.Render(fmt.Sprintf("%d / %d", frame.Index+1, frame.Length))
	hints := theme.Muted.Render("←/h pass   →/l back   ↑/k skip   drag with the mouse   i details")
	return lipgloss.JoinVertical(lipgloss.Left, placed, "", counter+"   "+hints)
}

func renderCard(c couplesdto.CoupleOutput, width int, faded bool) string {
	inner := max(width-4, 10)
	score := lipgloss.NewStyle().Foreground(theme.ChemistryColor(c.ChemistryBand)).Bold(true).
		Render(fmt.Sprintf("%d%% Chemistry", c.ChemistryScore))
	matched := theme.Muted.Render("Matched " + c.MatchedAgo)
	gap := max(inner-lipgloss.Width(matched)-lipgloss.Width(score), 1)

	var sb strings.Builder
	sb.WriteString(matched + strings.Repeat(" ", gap) + score + "\n")
	sb.WriteString(theme.Title.Render(c.Names()) + "\n")
	sb.WriteString(theme.Muted.Render(c.Location) + "\n\n")
	for _, p := range []couplesdto.PartnerOutput{c.Partner1, c.Partner2} {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s, %d", p.Name, p.Age)))
		sb.WriteString("  " + lipgloss.NewStyle().Foreground(theme.BaseBlue).Render(p.DisplayName) + "\n")
		interests := p.Interests
		if len(interests) > 2 {
			interests = interests[:2]
		}
		if len(interests) > 0 {
			sb.WriteString(theme.Muted.Render(strings.Join(interests, " · ")) + "\n")
		}
	}
	sb.WriteString("\n" + lipgloss.NewStyle().Width(inner).Italic(true).Render(c.Backstory) + "\n\n")

	shown := c.Milestones
	if len(shown) > 2 {
		shown = shown[:2]
	}
	for _, ms := range shown {
		sb.WriteString(ms.Title + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %s min · %s", money.Format(ms.MinBackingAmount), ms.TimeRemaining)) + "\n")
	}
	if extra := len(c.Milestones) - len(shown); extra > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("+%d more milestones", extra)))
	}

	style := theme.PaneActive.Width(width - 2)
	if faded {
		style = style.Faint(true)
	}
	return style.Render(strings.TrimRight(sb.String(), "\n"))
}

func renderNextCard(c couplesdto.CoupleOutput, width int, faded bool) string {
	line := fmt.Sprintf("Up next: %s · %d%%", c.Names(), c.ChemistryScore)
	style := theme.Pane.Padding(0, 1).Width(width - 2)
	if faded {
		style = style.Faint(true)
	}
	return style.Render(line)
}

func renderBadges(b swipedto.Badges) string {
	var parts []string
	if b.Back > 0 {
		parts = append(parts, badge("BACK!", theme.Green, b.Back))
	}
	if b.Pass > 0 {
		parts = append(parts, badge("NO CHEMISTRY", theme.Red, b.Pass))
	}
	if b.Skip > 0 {
		parts = append(parts, badge("SKIP", theme.Sapphire, b.Skip))
	}
	return strings.Join(parts, "  ")
}

func badge(label string, c lipgloss.Color, intensity float64) string {
	style := lipgloss.NewStyle().Foreground(c).Bold(true).Padding(0, 1)
	switch {
	case intensity >= 1:
		style = style.Reverse(true)
	case intensity < 0.5:
		style = style.Faint(true)
	}
	return style.Render(label)
}

func (m Model) renderExhausted() string {
	s := m.deck.Summary()
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("No more couples to review") + "\n\n")
	sb.WriteString(fmt.Sprintf("reviewed %d · backed %d · passed %d · skipped %d\n",
		s.Reviewed, s.Committed, s.Rejected, s.Skipped))
	if s.Backings > 0 {
		sb.WriteString(fmt.Sprintf("%d backings · %s staked · %s potential\n",
			s.Backings, money.Format(s.TotalStaked), money.Format(s.PotentialWinnings)))
	}
	sb.WriteString("\n" + theme.Muted.Render("ctrl+r to start over"))
	return theme.Pane.Render(sb.String())
}

func (m *Model) refreshDetails() {
	if !m.showDetails || m.renderer == nil {
		return
	}
	c, ok := m.deck.Current()
	if !ok {
		m.details.SetContent(theme.Muted.Render("No couple selected"))
		return
	}
	out, err := m.renderer.Render(profileMarkdown(c))
	if err != nil {
		m.details.SetContent(profileMarkdown(c))
		return
	}
	m.details.SetContent(out)
	m.details.GotoTop()
}

func profileMarkdown(c couplesdto.CoupleOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Names())
	fmt.Fprintf(&sb, "*%s* · matched %s · **%d%% chemistry** (%s)\n\n", c.Location, c.MatchedAgo, c.ChemistryScore, c.ChemistryBand)
	for _, p := range []couplesdto.PartnerOutput{c.Partner1, c.Partner2} {
		fmt.Fprintf(&sb, "## %s, %d\n\n%s\n\n", p.Name, p.Age, p.Bio)
		if p.DisplayName != "" {
			fmt.Fprintf(&sb, "Wallet: `%s`\n\n", p.DisplayName)
		}
		for _, i := range p.Interests {
			fmt.Fprintf(&sb, "- %s\n", i)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "## Backstory\n\n%s\n\n## Milestones\n\n", c.Backstory)
	sb.WriteString("| Milestone | Min | Multiplier | Deadline | Backed |\n|---|---|---|---|---|\n")
	for _, ms := range c.Milestones {
		fmt.Fprintf(&sb, "| %s | %s | %.2fx | %s | %s (%d) |\n",
			ms.Title, money.Format(ms.MinBackingAmount), float64(ms.Multiplier)/100,
			ms.TimeRemaining, money.Format(ms.TotalBacked), ms.TotalBackers)
	}
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

// emit turns deck events into messages for the app model.
func (m *Model) emit(events []swipedto.Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		switch ev.Kind {
		case swipedto.EventDecided:
			d := DecidedMsg{CoupleID: ev.CoupleID, Decision: ev.Decision}
			cmds = append(cmds, func() tea.Msg { return d })
		case swipedto.EventCommitted:
			for _, c := range m.deck.Couples() {
				if c.ID == ev.CoupleID {
					committed := CommittedMsg{Couple: c}
					cmds = append(cmds, func() tea.Msg { return committed })
				}
			}
		case swipedto.EventAdvanced:
			m.refreshDetails()
		case swipedto.EventExhausted:
			cmds = append(cmds, func() tea.Msg { return ExhaustedMsg{} })
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.deck.Frame().Animating {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Now()
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) loadCouplesCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.couples.ListCouples(context.Background())
		return CouplesLoadedMsg{Couples: out.Couples, Err: err}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
