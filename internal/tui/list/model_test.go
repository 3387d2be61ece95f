package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(i int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", i)
	}
	return fmt.Sprintf("  %d", i)
}

func ints(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		want     int
		wantFrom int
	}{
		{name: "down", keys: []tea.KeyMsg{{Type: tea.KeyDown}}, want: 1},
		{name: "up at top stays", keys: []tea.KeyMsg{{Type: tea.KeyUp}}, want: 0},
		{name: "j and k", keys: []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'j'}},
			{Type: tea.KeyRunes, Runes: []rune{'j'}},
			{Type: tea.KeyRunes, Runes: []rune{'k'}},
		}, want: 1},
		{name: "end", keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, want: 19, wantFrom: 15},
		{name: "page down", keys: []tea.KeyMsg{{Type: tea.KeyPgDown}}, want: 5, wantFrom: 3},
		{name: "page down past end", keys: []tea.KeyMsg{
			{Type: tea.KeyPgDown}, {Type: tea.KeyPgDown}, {Type: tea.KeyPgDown}, {Type: tea.KeyPgDown}, {Type: tea.KeyPgDown},
		}, want: 19, wantFrom: 15},
		{name: "home after end", keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}}, want: 0},
		{name: "page up clamps", keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyPgUp}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(ints(20), 5, 40, renderInt)
			for _, k := range tt.keys {
				_, cmd := m.Update(k)
				assert.Nil(t, cmd)
			}
			assert.Equal(t, tt.want, m.Selected())
			assert.Equal(t, tt.wantFrom, m.VisibleFrom())
			assert.LessOrEqual(t, m.VisibleTo()-m.VisibleFrom(), 5)
		})
	}
}

func TestModel_View(t *testing.T) {
	m := New(ints(3), 10, 40, renderInt)
	m.SetSelected(1)
	assert.Equal(t, "  0\n> 1\n  2", m.View())

	empty := New([]int{}, 10, 40, renderInt)
	assert.Empty(t, empty.View())
	assert.Nil(t, empty.SelectedItem())
	empty.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, empty.Selected())
}

func TestModel_ViewFitsHeight(t *testing.T) {
	m := New(ints(100), 7, 40, renderInt)
	m.SetSelected(50)
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines, "> 50")
}

func TestModel_SetItemsClampsCursor(t *testing.T) {
	m := New(ints(10), 5, 40, renderInt)
	m.SetSelected(9)
	m.SetItems(ints(4))
	assert.Equal(t, 3, m.Selected())

	item := m.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, 3, *item)

	m.SetItems(nil)
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.ItemCount())
}

func TestModel_Resize(t *testing.T) {
	m := New(ints(30), 5, 40, renderInt)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	assert.Equal(t, 12, m.Height())
	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 12, m.VisibleTo())
}
