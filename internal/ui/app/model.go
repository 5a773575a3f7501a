package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backingdto "chemlab/internal/modules/backing/dto"
	backingin "chemlab/internal/modules/backing/port/in"
	couplesdto "chemlab/internal/modules/couples/dto"
	lbdto "chemlab/internal/modules/leaderboard/dto"
	networkdto "chemlab/internal/modules/network/dto"
	swipedto "chemlab/internal/modules/swipe/dto"
	"chemlab/internal/platform/money"
	"chemlab/internal/ui/components"
	"chemlab/internal/ui/theme"
	backingview "chemlab/internal/ui/views/backing"
	leaderboardview "chemlab/internal/ui/views/leaderboard"
	portfolioview "chemlab/internal/ui/views/portfolio"
	swipeview "chemlab/internal/ui/views/swipe"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type couplesPort interface {
	ListCouples(ctx context.Context) (couplesdto.ListOutput, error)
}

type backingPort interface {
	StartFlow(ctx context.Context, coupleID string) (backingin.Flow, error)
	Submit(ctx context.Context, input backingdto.SubmitInput) (backingdto.SubmitOutput, error)
	List(ctx context.Context, address string) (backingdto.ListOutput, error)
	Claimable(ctx context.Context, address string) ([]backingdto.ClaimableOutput, error)
}

type leaderboardPort interface {
	Board(ctx context.Context) (lbdto.BoardOutput, error)
}

type networkPort interface {
	Status(ctx context.Context, input networkdto.StatusInput) (networkdto.StatusOutput, error)
}

type deckPort interface {
	swipeview.DeckPort
	CloseBacking()
	AddBackings(backings []backingdto.BackingOutput)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabSwipe tabID = iota
	tabLeaderboard
	tabPortfolio
	tabCount
)

var tabLabels = [tabCount]string{
	"Swipe", "Leaderboard", "Portfolio",
}

// ─── async messages ───────────────────────────────────────────────────────────

type networkLoadedMsg struct {
	status networkdto.StatusOutput
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Back    key.Binding
	Pass    key.Binding
	Skip    key.Binding
	Details key.Binding
	Retry   key.Binding
	Restart key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Back:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "back couple")),
		Pass:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "no chemistry")),
		Skip:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "skip")),
		Details: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "couple details")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry / refresh")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "start over")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Pass, k.Skip, k.Details},
		{k.Tab, k.Retry, k.Restart},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the backing
// modal, the global help overlay, and the command palette. Business logic
// sits behind port interfaces; rendering is delegated to sub-views.
type Model struct {
	address string
	chainID string

	network networkPort
	deck    deckPort

	swipeView swipeview.Model
	backView  backingview.Model
	lbView    leaderboardview.Model
	portView  portfolioview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	netStatus networkdto.StatusOutput
	hasNet    bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	address string,
	chainID string,
	couples couplesPort,
	backing backingPort,
	leaderboard leaderboardPort,
	network networkPort,
	deck deckPort,
) Model {
	return Model{
		address:   address,
		chainID:   chainID,
		network:   network,
		deck:      deck,
		swipeView: swipeview.New(couplesPortBridge{p: couples}, deck),
		backView:  backingview.New(backingPortBridge{p: backing}, address),
		lbView:    leaderboardview.New(leaderboardPortBridge{p: leaderboard}),
		portView:  portfolioview.New(portfolioPortBridge{p: backing}, address),
		activeTab: tabSwipe,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   newPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.swipeView.Init(),
		m.lbView.Init(),
		m.portView.Init(),
		m.networkCmd(m.chainID),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.backView.SetWidth(min(m.width-4, 90))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case networkLoadedMsg:
		if msg.err != nil {
			m.status = "network check: " + msg.err.Error()
			return m, nil
		}
		m.netStatus = msg.status
		m.hasNet = true
		if msg.status.ShouldShowWarning {
			m.status = msg.status.Instructions
		}
		return m, nil

	case swipeview.CouplesLoadedMsg:
		if msg.Err != nil {
			m.status = "failed to load couples"
		} else {
			m.portView.SetCouples(msg.Couples)
			m.status = fmt.Sprintf("%d couples to review", len(msg.Couples))
		}

	case swipeview.DecidedMsg:
		m.status = decisionStatus(msg.Decision)

	case swipeview.CommittedMsg:
		m.status = "backing " + msg.Couple.Names()
		cmds = append(cmds, m.backView.Open(msg.Couple))

	case swipeview.ExhaustedMsg:
		s := m.deck.Summary()
		m.status = fmt.Sprintf("all couples reviewed, %d backed", s.Committed)

	case backingview.BackedMsg:
		m.deck.AddBackings(msg.Out.Backings)
		m.deck.CloseBacking()
		m.status = fmt.Sprintf("backed %d milestones for %s", len(msg.Out.Backings), money.FormatWithUnit(msg.Out.TotalStake))
		cmds = append(cmds, m.portView.Reload())
		return m, tea.Batch(cmds...)

	case backingview.ClosedMsg:
		m.deck.CloseBacking()
		m.status = "backing cancelled"
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.MouseMsg:
		if m.backView.Visible() || m.activeTab != tabSwipe {
			return m, nil
		}
		var cmd tea.Cmd
		m.swipeView, cmd = m.swipeView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else fans out so async results reach their view and the
	// card animation keeps running under the modal.
	var cmd tea.Cmd
	m.swipeView, cmd = m.swipeView.Update(msg)
	cmds = append(cmds, cmd)
	m.backView, cmd = m.backView.Update(msg)
	cmds = append(cmds, cmd)
	m.lbView, cmd = m.lbView.Update(msg)
	cmds = append(cmds, cmd)
	m.portView, cmd = m.portView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}
	if m.backView.Visible() {
		var cmd tea.Cmd
		m.backView, cmd = m.backView.Update(msg)
		return m, cmd
	}

	// Yield to the leaderboard while its search filter is open.
	if !(m.activeTab == tabLeaderboard && m.lbView.Filtering()) {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabSwipe:
		m.swipeView, cmd = m.swipeView.Update(msg)
	case tabLeaderboard:
		m.lbView, cmd = m.lbView.Update(msg)
	case tabPortfolio:
		m.portView, cmd = m.portView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.backView.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.backView.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSwipe:
		return m.swipeView.View()
	case tabLeaderboard:
		return m.lbView.View()
	case tabPortfolio:
		return m.portView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "Chemistry Lab  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasNet {
		chain := theme.Chain.Render(m.netStatus.Label)
		if m.netStatus.ShouldShowWarning {
			chain = theme.Bad.Render("⚠ " + m.netStatus.Label)
		}
		left = chain + " " + theme.Muted.Render(m.netStatus.DisplayName) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func newPalette() components.Palette {
	p := components.NewPalette()
	p.SetArgs("network:check", []components.Suggestion{
		{Value: "8453", Label: "Base"},
		{Value: "84532", Label: "Base Sepolia"},
	})
	return p
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "swipe:back", "swipe:pass", "swipe:skip":
		if m.backView.Visible() {
			m.status = "finish the backing first"
			return m, nil
		}
		m.activeTab = tabSwipe
		decision := map[string]string{
			"swipe:back": swipedto.DecisionCommit,
			"swipe:pass": swipedto.DecisionReject,
			"swipe:skip": swipedto.DecisionSkip,
		}[parts[0]]
		return m, m.swipeView.Fling(decision)

	case "swipe:restart":
		m.activeTab = tabSwipe
		m.swipeView.Restart()
		m.status = "starting over"
		return m, nil

	case "couples:reload":
		m.activeTab = tabSwipe
		return m, m.swipeView.Reload()

	case "backings:refresh":
		m.activeTab = tabPortfolio
		return m, m.portView.Reload()

	case "leaderboard:refresh":
		m.activeTab = tabLeaderboard
		return m, m.lbView.Reload()

	case "network:check":
		chainID := m.chainID
		if len(parts) >= 2 {
			chainID = parts[1]
		}
		m.chainID = chainID
		return m, m.networkCmd(chainID)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func decisionStatus(decision string) string {
	switch decision {
	case swipedto.DecisionCommit:
		return "BACK! 💕"
	case swipedto.DecisionReject:
		return "NO CHEMISTRY 💔"
	case swipedto.DecisionSkip:
		return "skipped"
	}
	return ""
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.swipeView, _ = m.swipeView.Update(sz)
	m.lbView, _ = m.lbView.Update(sz)
	m.portView, _ = m.portView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) networkCmd(chainID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.network.Status(context.Background(), networkdto.StatusInput{
			ChainID: chainID,
			Address: m.address,
		})
		return networkLoadedMsg{status: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type couplesPortBridge struct{ p couplesPort }

func (b couplesPortBridge) ListCouples(ctx context.Context) (couplesdto.ListOutput, error) {
	return b.p.ListCouples(ctx)
}

type backingPortBridge struct{ p backingPort }

func (b backingPortBridge) StartFlow(ctx context.Context, coupleID string) (backingview.Flow, error) {
	f, err := b.p.StartFlow(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return f, nil
}
func (b backingPortBridge) Submit(ctx context.Context, input backingdto.SubmitInput) (backingdto.SubmitOutput, error) {
	return b.p.Submit(ctx, input)
}

type portfolioPortBridge struct{ p backingPort }

func (b portfolioPortBridge) List(ctx context.Context, address string) (backingdto.ListOutput, error) {
	return b.p.List(ctx, address)
}
func (b portfolioPortBridge) Claimable(ctx context.Context, address string) ([]backingdto.ClaimableOutput, error) {
	return b.p.Claimable(ctx, address)
}

type leaderboardPortBridge struct{ p leaderboardPort }

func (b leaderboardPortBridge) Board(ctx context.Context) (lbdto.BoardOutput, error) {
	return b.p.Board(ctx)
}
