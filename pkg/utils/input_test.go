package utils

import "testing"

func TestPointerTrackerObserve(t *testing.T) {
	tests := []struct {
		name    string
		samples []PointerSample
		moved   []bool
	}{
		{
			name:    "first mouse sample is not a move",
			samples: []PointerSample{{X: 10, Y: 10}},
			moved:   []bool{false},
		},
		{
			name:    "first touch counts as a move",
			samples: []PointerSample{{X: 10, Y: 10, IsTouching: true}},
			moved:   []bool{true},
		},
		{
			name:    "stationary cursor",
			samples: []PointerSample{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}},
			moved:   []bool{false, false, false},
		},
		{
			name:    "cursor moves",
			samples: []PointerSample{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 7}, {X: 6, Y: 7}},
			moved:   []bool{false, true, true, false},
		},
		{
			name:    "touch down at same position",
			samples: []PointerSample{{X: 5, Y: 5}, {X: 5, Y: 5, IsTouching: true}, {X: 5, Y: 5, IsTouching: true}},
			moved:   []bool{false, true, false},
		},
		{
			name: "touch lift falls back to a stale cursor",
			samples: []PointerSample{
				{X: 5, Y: 5},
				{X: 200, Y: 300, IsTouching: true},
				{X: 5, Y: 5},
				{X: 5, Y: 5},
				{X: 8, Y: 5},
			},
			moved: []bool{false, true, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := NewPointerTracker()
			for i, s := range tt.samples {
				got, moved := pt.Observe(s)
				if got != s {
					t.Errorf("sample %d = %+v, want %+v", i, got, s)
				}
				if moved != tt.moved[i] {
					t.Errorf("sample %d moved = %v, want %v", i, moved, tt.moved[i])
				}
			}
		})
	}
}

func TestPointerTrackerReset(t *testing.T) {
	pt := NewPointerTracker()
	pt.Observe(PointerSample{X: 1, Y: 1})
	pt.Reset()

	if _, ok := pt.Last(); ok {
		t.Error("Last() should report no sample after Reset")
	}
	if _, moved := pt.Observe(PointerSample{X: 9, Y: 9}); moved {
		t.Error("first sample after Reset should not count as a move")
	}
}
