package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chemlab/internal/ui/theme"
)

// PaletteSubmitMsg carries the confirmed command line.
type PaletteSubmitMsg struct{ Input string }

type PaletteCancelMsg struct{}

// Command is one palette entry. Arg names the optional argument shown in
// the hint, e.g. "chainId".
type Command struct {
	Name string
	Arg  string
	Help string
}

// Suggestion is a completable argument value with a short label.
type Suggestion struct {
	Value string
	Label string
}

// Commands is the palette vocabulary. app.Model.executePalette dispatches on
// the same names.
var Commands = []Command{
	{Name: "swipe:back", Help: "back the current couple"},
	{Name: "swipe:pass", Help: "no chemistry, next couple"},
	{Name: "swipe:skip", Help: "skip without a verdict"},
	{Name: "swipe:restart", Help: "review the stack again"},
	{Name: "couples:reload", Help: "fetch couples again"},
	{Name: "backings:refresh", Help: "reload your portfolio"},
	{Name: "leaderboard:refresh", Help: "reload top backers"},
	{Name: "network:check", Arg: "chainId", Help: "check the wallet chain"},
}

const maxRows = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.BaseBlue).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().Foreground(theme.Pink)
	argStyle  = lipgloss.NewStyle().Foreground(theme.Yellow)
	helpStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

type Palette struct {
	input   textinput.Model
	args    map[string][]Suggestion
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "swipe:back, network:check 8453 …"
	ti.CharLimit = 64
	return Palette{input: ti, args: map[string][]Suggestion{}}
}

func (p Palette) Visible() bool { return p.visible }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// SetArgs registers the argument values offered after a command name.
func (p *Palette) SetArgs(command string, values []Suggestion) {
	p.args[command] = values
}

// Value is the current command line.
func (p Palette) Value() string { return p.input.Value() }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			line := strings.Join(strings.Fields(p.input.Value()), " ")
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		case "tab":
			if done, ok := p.Complete(p.input.Value()); ok {
				p.input.SetValue(done)
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Complete extends line to the first matching command name, or to the first
// matching argument once a full command name has been typed.
func (p Palette) Complete(line string) (string, bool) {
	name, arg, hasArg := strings.Cut(strings.TrimLeft(line, " "), " ")
	if !hasArg {
		cmds := p.matchCommands(name)
		if len(cmds) == 0 {
			return line, false
		}
		if cmds[0].Arg != "" {
			return cmds[0].Name + " ", true
		}
		return cmds[0].Name, true
	}
	vals := p.matchArgs(name, strings.TrimSpace(arg))
	if len(vals) == 0 {
		return line, false
	}
	return name + " " + vals[0].Value, true
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(p.input.View() + "\n\n")

	line := strings.TrimLeft(p.input.Value(), " ")
	name, arg, hasArg := strings.Cut(line, " ")
	switch {
	case hasArg:
		vals := p.matchArgs(name, strings.TrimSpace(arg))
		if len(vals) == 0 {
			sb.WriteString(helpStyle.Render("  no suggestions"))
		}
		for _, v := range vals {
			sb.WriteString("  " + argStyle.Render(v.Value) + "  " + helpStyle.Render(v.Label) + "\n")
		}
	default:
		cmds := p.matchCommands(name)
		if len(cmds) == 0 {
			sb.WriteString(helpStyle.Render("  unknown command"))
		}
		for _, c := range cmds {
			row := "  " + nameStyle.Render(c.Name)
			if c.Arg != "" {
				row += " " + argStyle.Render("["+c.Arg+"]")
			}
			sb.WriteString(row + "  " + helpStyle.Render(c.Help) + "\n")
		}
	}
	sb.WriteString("\n" + helpStyle.Render("tab complete · enter run · esc close"))

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) matchCommands(prefix string) []Command {
	prefix = strings.ToLower(prefix)
	var out []Command
	for _, c := range Commands {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c)
			if len(out) == maxRows {
				break
			}
		}
	}
	return out
}

func (p Palette) matchArgs(command, prefix string) []Suggestion {
	var out []Suggestion
	for _, v := range p.args[command] {
		if strings.HasPrefix(v.Value, prefix) {
			out = append(out, v)
			if len(out) == maxRows {
				break
			}
		}
	}
	return out
}
