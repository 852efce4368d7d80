package ui

import (
	"strings"
	"testing"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{41.5, "0:41"},
		{183, "3:03"},
		{3599, "59:59"},
		{3661, "1:01:01"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := formatClock(tt.seconds); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRenderProgress(t *testing.T) {
	got := renderProgress(90, 180, 40)
	if !strings.HasPrefix(got, "1:30 ") || !strings.HasSuffix(got, " 3:00") {
		t.Errorf("progress line = %q, want clock at both ends", got)
	}
	filled := strings.Count(got, "━")
	empty := strings.Count(got, "─")
	if filled == 0 || empty == 0 {
		t.Errorf("half-way bar should be partly filled: %q", got)
	}
	if filled != empty {
		t.Errorf("half-way bar fill = %d of %d, want an even split", filled, filled+empty)
	}

	// position past the end clamps to a full bar
	over := renderProgress(200, 180, 40)
	if strings.Count(over, "─") != 0 {
		t.Errorf("over-length position left the bar unfilled: %q", over)
	}

	// too narrow for a bar degrades to plain clocks
	narrow := renderProgress(90, 180, 12)
	if narrow != "1:30 / 3:00" {
		t.Errorf("narrow rendering = %q", narrow)
	}
}

func TestViewShowsProgressLine(t *testing.T) {
	m := newTestModel(&stubClient{})
	snap := playingSnap()
	snap.Position = 90
	snap.Length = 180
	m = applySnapshot(t, m, snap)

	view := m.View()
	if !strings.Contains(view, "1:30") || !strings.Contains(view, "3:00") {
		t.Errorf("view is missing the progress clocks:\n%s", view)
	}

	// a track without a known length renders no bar at all
	m = newTestModel(&stubClient{})
	m = applySnapshot(t, m, playingSnap())
	if strings.Contains(m.View(), "━") {
		t.Error("view rendered a progress bar without a track length")
	}
}
