// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// STATISTICS CHART
// =============================================================================

// ChartPoint is one bar of the survey chart.
type ChartPoint struct {
	Label string
	Value float64
}

// DemoChartData is the hardcoded survey series behind the demo chart and
// the detail modal.
var DemoChartData = []ChartPoint{
	{Label: "Q1", Value: 54},
	{Label: "Q2", Value: 59},
	{Label: "Q3", Value: 63},
	{Label: "Q4", Value: 68},
}

// Chart renders the fixed survey data as a horizontal bar chart. It keeps
// its rendered form cached and only re-renders when the layout width
// changes.
type Chart struct {
	theme  *styles.Theme
	title  string
	points []ChartPoint

	width  int
	cached string
}

// NewChart creates the demo survey chart.
func NewChart(theme *styles.Theme) *Chart {
	return &Chart{
		theme:  theme,
		title:  "Layout preference by quarter (%)",
		points: DemoChartData,
	}
}

// SetWidth updates the chart's layout width, invalidating the cache when
// it changed. This is the chart's only re-render trigger.
func (c *Chart) SetWidth(width int) {
	if width == c.width {
		return
	}
	c.width = width
	c.cached = ""
}

// View renders the chart, reusing the cached render when the layout has
// not changed.
func (c *Chart) View() string {
	if c.cached != "" {
		return c.cached
	}
	if c.width <= 0 {
		return ""
	}

	// Label column + value column + frame padding.
	barSpace := c.width - 12
	if barSpace < 4 {
		barSpace = 4
	}

	maxVal := 0.0
	for _, p := range c.points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	var sb strings.Builder
	sb.WriteString(c.theme.ChartTitle.Render(c.title))
	sb.WriteString("\n")
	for _, p := range c.points {
		barLen := 0
		if maxVal > 0 {
			barLen = int(p.Value / maxVal * float64(barSpace))
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			c.theme.ChartLabel.Render(fmt.Sprintf("%-3s", p.Label)),
			c.theme.ChartBar.Render(strings.Repeat("#", barLen)),
			c.theme.ChartValue.Render(fmt.Sprintf("%.0f", p.Value)),
		))
	}

	c.cached = c.theme.ChartFrame.Render(strings.TrimRight(sb.String(), "\n"))
	return c.cached
}
