package funnel

import (
	"math"
	"testing"
)

func TestMainAxisPoints(t *testing.T) {
	tests := []struct {
		d    Data
		full float64
		want []float64
	}{
		{referenceData, 90, []float64{0, 30, 60, 90}},
		{Simple{12000, 5700, 360}, 800, []float64{0, 266.7, 533.3, 800}},
		{Simple{10, 20, 30}, 100, []float64{0, 33.3, 66.7, 100}},
		{Simple{1}, 50, []float64{0, 50}},
		{Simple(nil), 100, []float64{0}},
		{Layered(nil), 100, []float64{0}},
		{nil, 100, []float64{0}},
	}
	for _, tt := range tests {
		diff(t, tt.want, MainAxisPoints(tt.d, tt.full))
	}
}

func TestCrossAxisPointsReference(t *testing.T) {
	want := [][]float64{
		{0, 14.9, 26.1, 26.1},
		{9.6, 29.3, 29.9, 29.9},
		{28.8, 34.1, 31.3, 31.3},
		{57.6, 42.3, 31.9, 31.9},
		{60, 45.1, 33.9, 33.9},
	}
	diff(t, want, CrossAxisPoints(referenceData, 60))
}

func TestCrossAxisPointsLayered(t *testing.T) {
	d := Layered{
		{3500, 3500, 7500},
		{3300, 5400, 5000},
		{600, 600, 6730},
	}
	want := [][]float64{
		{0, 1.7, 13.6, 13.6},
		{14.5, 15.3, 16.1, 16.1},
		{29, 37.6, 18.6, 18.6},
		{60, 58.3, 46.4, 46.4},
	}
	diff(t, want, CrossAxisPoints(d, 60))
}

func TestCrossAxisPointsSimple(t *testing.T) {
	tests := []struct {
		d    Simple
		full float64
		want [][]float64
	}{
		{
			Simple{12000, 5700, 360},
			300,
			[][]float64{{0, 78.8, 145.5, 145.5}, {300, 221.2, 154.5, 154.5}},
		},
		{
			// The largest stage need not come first.
			Simple{10, 20, 30},
			100,
			[][]float64{{33.3, 16.7, 0, 0}, {66.7, 83.3, 100, 100}},
		},
		{
			Simple{5, 5},
			40,
			[][]float64{{0, 0, 0}, {40, 40, 40}},
		},
	}
	for _, tt := range tests {
		diff(t, tt.want, CrossAxisPoints(tt.d, tt.full))
	}
}

func TestCrossAxisPointsRagged(t *testing.T) {
	d := Layered{{10}, {5, 5, 5}, {0, 0}, {}}
	want := [][]float64{
		{16.7, 0, 50, 50, 50},
		{83.3, 33.3, 50, 50, 50},
		{83.3, 66.6, 50, 50, 50},
		{83.3, 100, 50, 50, 50},
	}
	diff(t, want, CrossAxisPoints(d, 100))
}

func TestCrossAxisPointsZeroTotals(t *testing.T) {
	d := Layered{{0, 0}, {0, 0}}
	got := CrossAxisPoints(d, 60)
	want := [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{60, 60, 60},
	}
	diff(t, want, got)
	for _, row := range got {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite coordinate in %v", got)
			}
		}
	}
}

func TestCrossAxisPointsEmpty(t *testing.T) {
	want := [][]float64{{0}, {100}}
	diff(t, want, CrossAxisPoints(Simple(nil), 100))
	diff(t, want, CrossAxisPoints(Layered(nil), 100))
	diff(t, want, CrossAxisPoints(nil, 100))
}

func TestCrossAxisPointsShape(t *testing.T) {
	for _, d := range []Data{referenceData, Simple{12000, 5700, 360}, Layered{{1, 2}, {3}}} {
		const full = 120.0
		rows := CrossAxisPoints(d, full)

		wantRows := 2
		if l, ok := d.(Layered); ok {
			wantRows = LayerMaxLength(l) + 1
		}
		if len(rows) != wantRows {
			t.Errorf("%v: got %d rows, want %d", d, len(rows), wantRows)
		}

		first, last := rows[0], rows[len(rows)-1]
		for i, row := range rows {
			if len(row) != d.Len()+1 {
				t.Errorf("%v: row %d has %d values, want %d", d, i, len(row), d.Len()+1)
			}
			if row[len(row)-1] != row[len(row)-2] {
				t.Errorf("%v: row %d does not repeat its last value", d, i)
			}
		}
		for j := range first {
			if first[j]+last[j] != full {
				t.Errorf("%v: rows are not mirrored at %d: %v + %v", d, j, first[j], last[j])
			}
		}

		// Computing twice yields the same result.
		diff(t, rows, CrossAxisPoints(d, full))
	}
}

func TestRowPercentages(t *testing.T) {
	want := [][]float64{
		{16, 32, 48, 4},
		{47.6, 15.9, 27, 9.5},
		{49.1, 18.4, 8, 24.5},
	}
	diff(t, want, RowPercentages(referenceData))
	diff(t, [][]float64{{0, 0}, {}}, RowPercentages(Layered{{0, 0}, {}}))
}

func TestRowSums(t *testing.T) {
	diff(t, []float64{12500, 6300, 1630}, RowSums(referenceData))
	diff(t, []float64{3, 0}, RowSums(Layered{{1, math.NaN(), 2}, nil}))
}

func TestLayerMaxLength(t *testing.T) {
	tests := []struct {
		l    Layered
		want int
	}{
		{referenceData, 4},
		{Layered{{1}, {1, 2, 3}, {}}, 3},
		{Layered{}, 0},
		{nil, 0},
	}
	for _, tt := range tests {
		if got := LayerMaxLength(tt.l); got != tt.want {
			t.Errorf("LayerMaxLength(%v) = %d, want %d", tt.l, got, tt.want)
		}
	}
}

func TestStagePercentages(t *testing.T) {
	diff(t, []float64{100, 50.4, 13}, StagePercentages(referenceData))
	diff(t, []float64{100, 47.5, 3}, StagePercentages(Simple{12000, 5700, 360}))
	diff(t, []float64{0, 0}, StagePercentages(Simple{0, 0}))
	diff(t, []float64{}, StagePercentages(Simple{}))
}
