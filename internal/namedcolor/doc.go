// Package namedcolor maps arbitrary colors to the closest named reference
// color.
//
// The reference palette is an ordered, immutable dataset of named colors
// loaded once before first use; an embedded default combines the CSS extended
// keywords with the 2014 Material Design palette. A Matcher indexes the
// dataset in a k-d tree built at construction time, giving sub-linear nearest
// lookups, and is safe for concurrent use because neither the dataset nor the
// tree mutates afterwards.
//
// Distance is squared Euclidean in RGB by default; an Lab metric is available
// for perceptually uniform matching and is applied to the query and the index
// alike. Exact distance ties resolve to the earliest record in the dataset,
// so results are deterministic.
package namedcolor
