package utils

import (
	"reflect"
	"testing"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		from, to  int
		want      []string
		wantMoved bool
	}{
		{"front to back", []string{"A", "B", "C"}, 0, 2, []string{"B", "C", "A"}, true},
		{"back to front", []string{"A", "B", "C"}, 2, 0, []string{"C", "A", "B"}, true},
		{"one step down", []string{"A", "B", "C"}, 0, 1, []string{"B", "A", "C"}, true},
		{"same index", []string{"A", "B", "C"}, 1, 1, []string{"A", "B", "C"}, true},
		{"target past end", []string{"A", "B", "C"}, 0, 3, []string{"A", "B", "C"}, false},
		{"negative target", []string{"A", "B", "C"}, 1, -1, []string{"A", "B", "C"}, false},
		{"source out of range", []string{"A", "B", "C"}, 5, 0, []string{"A", "B", "C"}, false},
		{"empty", nil, 0, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Move(tt.items, tt.from, tt.to)
			if moved != tt.wantMoved {
				t.Errorf("Move() moved = %v, want %v", moved, tt.wantMoved)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Move() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveDoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3, 4}
	got, _ := Move(items, 3, 0)
	if !reflect.DeepEqual(items, []int{1, 2, 3, 4}) {
		t.Errorf("input mutated: %v", items)
	}
	if !reflect.DeepEqual(got, []int{4, 1, 2, 3}) {
		t.Errorf("Move() = %v", got)
	}
}
