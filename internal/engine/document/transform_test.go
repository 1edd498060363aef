package document

import (
	"errors"
	"testing"
)

func TestBufferColToRenderCol(t *testing.T) {
	d := FromLines([]string{"a\tb\t\tc"}, WithTabStop(4))

	// a=0, tab 1..3, b=4, tab 5..7, tab 8..11, c=12
	want := []int{0, 1, 4, 5, 8, 12, 13}
	for col, w := range want {
		got, err := d.BufferColToRenderCol(0, col)
		if err != nil {
			t.Fatalf("col %d: %v", col, err)
		}
		if got != w {
			t.Errorf("col %d: expected render col %d, got %d", col, w, got)
		}
	}
}

func TestRenderColToBufferCol(t *testing.T) {
	d := FromLines([]string{"a\tb"}, WithTabStop(4))

	tests := []struct {
		rx   int
		want int
	}{
		{0, 0},
		{1, 1}, // start of the tab
		{2, 1}, // inside the tab expansion
		{3, 1},
		{4, 2},
		{5, 3}, // past the end
		{40, 3},
	}
	for _, tt := range tests {
		got, err := d.RenderColToBufferCol(0, tt.rx)
		if err != nil {
			t.Fatalf("rx %d: %v", tt.rx, err)
		}
		if got != tt.want {
			t.Errorf("rx %d: expected buffer col %d, got %d", tt.rx, tt.want, got)
		}
	}
}

func TestRenderBufferRoundTrip(t *testing.T) {
	rows := []string{"", "plain text", "\tleading", "mid\tdle\t", "\t\t\t"}
	for _, tabStop := range []int{1, 2, 4, 8} {
		d := FromLines(rows, WithTabStop(tabStop))
		for row := range rows {
			n := d.RowLen(row)
			for col := 0; col <= n; col++ {
				rx, err := d.BufferColToRenderCol(row, col)
				if err != nil {
					t.Fatalf("tab %d row %d col %d: %v", tabStop, row, col, err)
				}
				back, err := d.RenderColToBufferCol(row, rx)
				if err != nil {
					t.Fatalf("tab %d row %d rx %d: %v", tabStop, row, rx, err)
				}
				if back != col {
					t.Errorf("tab %d row %d: col %d -> rx %d -> col %d", tabStop, row, col, rx, back)
				}
			}
		}
	}
}

func TestTransformBounds(t *testing.T) {
	d := FromLines([]string{"abc"})

	if _, err := d.BufferColToRenderCol(1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for row past end, got %v", err)
	}
	if _, err := d.BufferColToRenderCol(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for col past end, got %v", err)
	}
	if _, err := d.RenderColToBufferCol(0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for negative render col, got %v", err)
	}
}
