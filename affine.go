package funnel

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Transpose swaps the x and y axes. It maps the main/cross coordinates of a
// horizontal funnel onto those of a vertical one, and back.
var Transpose = Affine{0, 1, 1, 0, 0, 0}
