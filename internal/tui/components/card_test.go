package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/deeday/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLayoutRow(t *testing.T) {
	assert.Equal(t, []int{34, 33, 33}, LayoutRow(100, 3))
	assert.Nil(t, LayoutRow(100, 0))
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("deeday")

	short := ContentCard("Short", "Content", 22, false)
	tall := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4", 22, true)

	joined := CardRow([]string{tall, short})
	assert.Equal(t, lipgloss.Height(tall), lipgloss.Height(joined))
	assert.Equal(t, 44, lipgloss.Width(joined))
}

func TestCardInnerWidth(t *testing.T) {
	assert.Equal(t, 36, CardInnerWidth(40))
	assert.Equal(t, 10, CardInnerWidth(5))
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(60, "[a]dd  [q]uit", "Added Ann", "3 members")

	assert.Equal(t, 1, lipgloss.Height(bar))
	assert.True(t, strings.Contains(bar, "Added Ann"))
	assert.True(t, strings.Contains(bar, "3 members"))
}
