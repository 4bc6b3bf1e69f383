// Package color defines the RGB value type used throughout paintmix and the
// pluggable distance metric that scores how far a mix is from its target.
//
// 🚀 What is a Color here?
//
//	An ordered triple (R, G, B) of float64 channel intensities on the
//	0–255 scale. Keeping float precision lets mixtures carry fractional
//	channel values; RGB8() rounds for display.
//
// ✨ Key features:
//   - strict validation: every channel finite and inside [0,255]
//   - constructors for 8-bit, 0–255 float and normalized 0–1 input
//   - Parse: "#RRGGBB", "#RGB", "r,g,b" or a CSS/SVG name ("darkorange")
//   - vector helpers (Add, Sub, Scale, Dot, Norm2) for the mixing solvers
//   - Metric interface with Euclidean (default) and WeightedEuclidean
//
// ⚙️ Usage:
//
//	target, err := color.Parse("#804080")
//	if err != nil {
//	  // handle ErrInvalidColor / ErrUnknownColor
//	}
//	d := color.Euclidean{}.Distance(target, color.RGB(255, 0, 0))
//
// Colors are plain values; copying is cheap and safe across goroutines.
package color
