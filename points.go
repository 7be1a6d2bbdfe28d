package funnel

// An example of a layered funnel with three stages and three sub-segments
// per stage. # marks the points on the main axis; A to D are the cross-axis
// rows, of which A and D are mirror images of each other.
//
//	#0..................
//	                   ...#1................
//	                                       ......
//	#0********************#1**                    #2.........................#3 (A)
//	                          *******************
//	                                              #2*************************#3 (B)
//	                                              #2+++++++++++++++++++++++++#3 (C)
//	                          +++++++++++++++++++
//	#0++++++++++++++++++++#1++                    #2-------------------------#3 (D)
//	                                       ------
//	                   ---#1----------------
//	#0-----------------
//
// The last two points of every row share their cross-axis coordinate, which
// is why the last value is duplicated when computing rows.

// MainAxisPoints returns the N+1 evenly spaced stage boundaries of d along a
// main axis of length full, starting at 0 and ending at full. Data without
// stages yields the single point 0.
func MainAxisPoints(d Data, full float64) []float64 {
	n := stageCount(d)
	if n == 0 {
		return []float64{0}
	}
	points := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, Round1(full*float64(i)/float64(n)))
	}
	return points
}

// CrossAxisPoints returns the cross-axis coordinates of every layer level of
// d for a cross axis of length full. Each row holds N+1 values, one per stage
// boundary.
//
// The first row is the distance of the funnel's edge from the start of the
// cross axis, derived from the stage totals: the largest stage touches the
// edge, a stage of zero sits on the centre line. The last row mirrors the
// first about full/2. Simple data has just these two rows. Layered data has
// LayerMaxLength(d)+1 rows; row k lies below row k-1 by the (k-1)-th
// sub-segment's share of the funnel's width at that stage.
func CrossAxisPoints(d Data, full float64) [][]float64 {
	first := edgePoints(totals(d), full/2)
	points := [][]float64{first}

	if l, ok := d.(Layered); ok {
		percentages := RowPercentages(l)
		for level := 1; level < LayerMaxLength(l); level++ {
			prev := points[level-1]
			next := make([]float64, 0, len(l)+1)
			for j := range l {
				var percentage float64
				if row := percentages[j]; level-1 < len(row) {
					percentage = row[level-1]
				}
				// The explicit conversions rule out fused multiply-adds, which
				// would change the rounding of intermediate results.
				width := full - float64(first[j]*2)
				next = append(next, Round1(prev[j]+float64(width*(percentage/100))))
			}
			next = append(next, next[len(next)-1])
			points = append(points, next)
		}
	}

	last := make([]float64, len(first))
	for i, p := range first {
		last[i] = full - p
	}
	return append(points, last)
}

// edgePoints computes the first cross-axis row from stage totals, with the
// last value duplicated.
func edgePoints(totals []float64, half float64) []float64 {
	var maxTotal float64
	for _, v := range totals {
		maxTotal = max(maxTotal, v)
	}
	extended := append(totals[:len(totals):len(totals)], 0)
	if len(totals) > 0 {
		extended[len(totals)] = totals[len(totals)-1]
	}

	points := make([]float64, len(extended))
	if maxTotal == 0 {
		return points
	}
	for i, v := range extended {
		points[i] = Round1((maxTotal - v) / maxTotal * half)
	}
	return points
}

// RowSums returns the total of every stage of l. NaN values count as zero.
func RowSums(l Layered) []float64 {
	sums := make([]float64, len(l))
	for i, row := range l {
		sums[i] = rowSum(row)
	}
	return sums
}

func rowSum(row []float64) float64 {
	var sum float64
	for _, v := range row {
		sum += valueOrZero(v)
	}
	return sum
}

// RowPercentages returns, for every stage of l, each sub-segment's share of
// the stage total in percent, rounded to one decimal place. All shares of a
// stage with a total of zero are zero.
func RowPercentages(l Layered) [][]float64 {
	out := make([][]float64, len(l))
	for i, row := range l {
		total := rowSum(row)
		out[i] = make([]float64, len(row))
		if total == 0 {
			continue
		}
		for j, v := range row {
			out[i][j] = Round1(valueOrZero(v) * 100 / total)
		}
	}
	return out
}

// LayerMaxLength returns the length of the longest stage row of l.
func LayerMaxLength(l Layered) int {
	var n int
	for _, row := range l {
		n = max(n, len(row))
	}
	return n
}

// StagePercentages returns every stage total as a percentage of the largest
// stage total, rounded to one decimal place. Stages with a total of zero get
// zero.
func StagePercentages(d Data) []float64 {
	values := totals(d)
	var maxTotal float64
	for _, v := range values {
		maxTotal = max(maxTotal, v)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if v == 0 || maxTotal == 0 {
			continue
		}
		out[i] = Round1(v * 100 / maxTotal)
	}
	return out
}
