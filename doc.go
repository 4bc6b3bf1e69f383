// Package paintmix finds paint recipes: given a catalog of base paints and a
// target color, it reports the single paint or the blend of up to K paints
// (with mixing percentages) whose color is closest to the target.
//
// 🚀 What is inside?
//
//	A deterministic, library-first recipe engine:
//		• color/        – RGB type, hex/"r,g,b"/name parsing, pluggable metrics
//		• catalog/      – validated, immutable paint catalogs, nearest/shortlist
//		• mix/          – the search: singles, analytical pairs, grid or
//		                  least-squares K-paint mixing, ranking, recipes
//		• catalogfile/  – YAML/JSON catalog files
//		• cmd/paintmix  – command line front end (match, blend, catalog)
//
// ✨ Why this shape?
//
//   - Pure queries – no global state; one Catalog serves concurrent Solve calls
//   - Typed outcomes – degenerate blends are counted skip reasons, not errors
//   - Bounded cost – grid step, shortlist size and an evaluation budget
//
// Quick example:
//
//	cat := catalog.MustNew(
//		catalog.Paint{Name: "Red", Color: color.RGB(255, 0, 0)},
//		catalog.Paint{Name: "Blue", Color: color.RGB(0, 0, 255)},
//	)
//	res, _ := mix.Solve(color.MustParse("#800080"), cat)
//	fmt.Println(res.Recipes[0]) // 50.0% Red + 50.0% Blue → #800080 (err 0.71)
//
//	go install github.com/katalvlaran/paintmix/cmd/paintmix@latest
package paintmix
