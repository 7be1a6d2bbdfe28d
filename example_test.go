package funnel_test

import (
	"fmt"

	"honnef.co/go/funnel"
)

func ExampleCrossAxisPoints() {
	data := funnel.Layered{
		{2000, 4000, 6000, 500},
		{3000, 1000, 1700, 600},
		{800, 300, 130, 400},
	}
	for _, row := range funnel.CrossAxisPoints(data, 60) {
		fmt.Println(row)
	}

	// Output:
	// [0 14.9 26.1 26.1]
	// [9.6 29.3 29.9 29.9]
	// [28.8 34.1 31.3 31.3]
	// [57.6 42.3 31.9 31.9]
	// [60 45.1 33.9 33.9]
}

func ExampleBuildPath() {
	data := funnel.Simple{12000, 5700, 360}
	sz := funnel.Sz(800, 300)

	X := funnel.MainAxisPoints(data, sz.Main(funnel.Horizontal))
	Y := funnel.CrossAxisPoints(data, sz.Cross(funnel.Horizontal))

	// We'll draw the funnel as an SVG document.
	fmt.Printf(`<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`, sz.Width, sz.Height)
	fmt.Println()
	for i := 0; i < len(Y)-1; i++ {
		fmt.Printf(`<path d="%s" fill="#003f5c" />`, funnel.BuildPath(X, Y[i], Y[i+1]))
		fmt.Println()
	}
	fmt.Println("</svg>")

	// Output:
	// <svg viewBox="0 0 800 300" xmlns="http://www.w3.org/2000/svg">
	// <path d="M0,0 C133.4,0 133.4,78.8 266.7,78.8 C400,78.8 400,145.5 533.3,145.5 C666.7,145.5 666.7,145.5 800,145.5 L800,154.5 C666.7,154.5 666.7,154.5 533.3,154.5 C400,154.5 400,221.2 266.7,221.2 C133.4,221.2 133.4,300 0,300 Z" fill="#003f5c" />
	// </svg>
}

func ExampleFormatThousands() {
	fmt.Println(funnel.FormatThousands(12500))
	fmt.Println(funnel.FormatThousands(1234567.5))
	// Output:
	// 12,500
	// 1,234,567.5
}
