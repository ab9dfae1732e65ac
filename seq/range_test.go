package seq_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lazuli/seq"
)

// TestRange_Values checks yielded counts, bounds, and ordering across
// ordinary, empty, and inverted intervals.
func TestRange_Values(t *testing.T) {
	cases := []struct {
		name        string
		left, right int
		want        []int
	}{
		{"Simple", 0, 5, []int{0, 1, 2, 3, 4}},
		{"Offset", 3, 7, []int{3, 4, 5, 6}},
		{"Negative", -2, 2, []int{-2, -1, 0, 1}},
		{"Single", 9, 10, []int{9}},
		{"Empty", 4, 4, nil},
		{"Inverted", 7, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []int
			for i := range seq.Range(tc.left, tc.right) {
				got = append(got, i)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Range(%d,%d) = %v; want %v", tc.left, tc.right, got, tc.want)
			}
			if want := seq.Len(tc.left, tc.right); len(got) != want {
				t.Errorf("yielded %d values; Len reports %d", len(got), want)
			}
		})
	}
}

// TestRange_Restartable verifies a single Range value replays identically.
func TestRange_Restartable(t *testing.T) {
	r := seq.Range(2, 6)
	var first, second []int
	for i := range r {
		first = append(first, i)
	}
	for i := range r {
		second = append(second, i)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second pass %v differs from first %v", second, first)
	}
}

// TestRange_EarlyBreak ensures breaking out of iteration stops cleanly.
func TestRange_EarlyBreak(t *testing.T) {
	count := 0
	for i := range seq.Range(0, 1000000) {
		count++
		if i == 9 {
			break
		}
	}
	if count != 10 {
		t.Errorf("consumed %d values before break; want 10", count)
	}
}

// TestN checks the single-argument convenience form.
func TestN(t *testing.T) {
	var got []int
	for i := range seq.N(3) {
		got = append(got, i)
	}
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("N(3) = %v; want [0 1 2]", got)
	}
	for range seq.N(0) {
		t.Error("N(0) yielded a value; want empty sequence")
	}
}
