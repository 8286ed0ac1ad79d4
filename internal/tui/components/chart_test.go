package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/numfmt"
)

func points() []model.ChartPoint {
	return []model.ChartPoint{
		{Name: "Aluguel", Value: decimal.NewFromInt(1500), Percentage: decimal.NewFromInt(65), Color: "#0088FE"},
		{Name: "Alimentação", Value: decimal.NewFromInt(800), Percentage: decimal.NewFromInt(35), Color: "#00C49F"},
	}
}

func TestBarChart_Lines(t *testing.T) {
	out := BarChart(points(), numfmt.BRL, 70)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "R$ 1.500,00") || !strings.Contains(lines[0], "65%") {
		t.Errorf("first line missing amount or share: %q", lines[0])
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1]) {
		t.Errorf("line widths differ: %d vs %d", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
}

func TestBarChart_Empty(t *testing.T) {
	if out := BarChart(nil, numfmt.BRL, 40); !strings.Contains(out, "Nenhuma despesa") {
		t.Errorf("empty chart = %q", out)
	}
}

func TestShareStrip_FillsWidth(t *testing.T) {
	for _, w := range []int{1, 7, 40, 121} {
		if got := lipgloss.Width(ShareStrip(points(), w)); got != w {
			t.Errorf("width %d: strip is %d cells", w, got)
		}
	}
	if got := lipgloss.Width(ShareStrip(nil, 10)); got != 10 {
		t.Errorf("empty strip is %d cells, want 10", got)
	}
}

func TestScaled(t *testing.T) {
	peak := decimal.NewFromInt(100)
	tests := []struct {
		value string
		want  int
	}{
		{"100", 20},
		{"50", 10},
		{"0.01", 1},
		{"0", 0},
		{"-5", 0},
		{"250", 20},
	}
	for _, tt := range tests {
		if got := scaled(decimal.RequireFromString(tt.value), peak, 20); got != tt.want {
			t.Errorf("scaled(%s) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
