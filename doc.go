// Package funnel computes the geometry of funnel charts and turns it into SVG
// path data.
//
// A funnel chart consists of N stages laid out along a main axis. At every
// stage boundary the funnel has a width on the cross axis that is
// proportional to the value of the stage. In a horizontal funnel the main axis
// is the X axis and the cross axis is the Y axis; in a vertical funnel the two
// are swapped. This package always talks about main and cross axes and lets
// [Orientation] decide which is which.
//
// # Data
//
// Funnel data comes in two variants, both implementing [Data]:
//
//   - [Simple], one value per stage.
//   - [Layered], one row of sub-segment values per stage. Rows may differ in
//     length; missing values count as zero.
//
// Use [DataFromValues] to turn decoded JSON, YAML or TOML values into the
// right variant, and [IsLayered] to inspect such a value without converting
// it.
//
// # Geometry
//
// [MainAxisPoints] returns the N+1 evenly spaced stage boundaries.
// [CrossAxisPoints] returns one row of cross-axis coordinates per layer
// level: two rows for simple data, one more than the maximum row length for
// layered data. The first row is derived from the stage totals, the last row
// mirrors it about the centre line, and for layered data the rows in between
// accumulate each stage's sub-segment percentages.
//
// All coordinates are rounded to one decimal place with [Round1], and the
// rounding happens after every step so that results are reproducible
// bit-for-bit.
//
// # Paths
//
// Adjacent pairs of cross-axis rows describe one funnel segment each.
// [BuildPath] and [BuildVerticalPath] stitch the boundaries of a segment into a
// closed outline made of cubic Béziers, returned in SVG path syntax. The same
// outline is available as a [BezPath] through [SegmentPath], which can be
// transformed with an [Affine], measured with [BezPath.ControlBox] and
// serialized with [BezPath.SVG] or [BezPath.WriteSVG].
//
// Every function in this package is pure and safe for concurrent use.
// Stateful rendering lives in the view subpackage.
package funnel
