package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainPalette() Palette {
	p := NewPalette()
	p.SetArgs("network:check", []Suggestion{
		{Value: "8453", Label: "Base"},
		{Value: "84532", Label: "Base Sepolia"},
	})
	return p
}

func TestCompleteCommandNames(t *testing.T) {
	p := chainPalette()

	got, ok := p.Complete("swipe:s")
	assert.True(t, ok)
	assert.Equal(t, "swipe:skip", got)

	got, ok = p.Complete("net")
	assert.True(t, ok)
	assert.Equal(t, "network:check ", got, "commands taking an argument leave room for it")

	got, ok = p.Complete("wallet")
	assert.False(t, ok)
	assert.Equal(t, "wallet", got)
}

func TestCompleteArguments(t *testing.T) {
	p := chainPalette()

	got, ok := p.Complete("network:check 845")
	assert.True(t, ok)
	assert.Equal(t, "network:check 8453", got)

	got, ok = p.Complete("network:check 8453 ")
	assert.False(t, ok)
	assert.Equal(t, "network:check 8453 ", got)

	_, ok = p.Complete("swipe:back x")
	assert.False(t, ok, "commands without registered args complete nothing")
}

func TestTabThenEnterSubmitsCompletedLine(t *testing.T) {
	p := chainPalette()
	p.Open()
	require.True(t, p.Visible())

	for _, r := range "network:check 8453" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "network:check 8453", p.Value())

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, p.Visible())
	assert.Equal(t, PaletteSubmitMsg{Input: "network:check 8453"}, cmd())
}

func TestEscCancels(t *testing.T) {
	p := chainPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.False(t, p.Visible())
	assert.Equal(t, PaletteCancelMsg{}, cmd())
}

func TestViewListsArgumentSuggestions(t *testing.T) {
	p := chainPalette()
	p.Open()
	for _, r := range "network:check " {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	view := p.View()
	assert.Contains(t, view, "84532")
	assert.Contains(t, view, "Base Sepolia")
}
