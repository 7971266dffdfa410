// Package match provides name normalization, edit distance
// calculation and "did you mean" ranking for diagnostics.
//
// Key functions:
//   - Normalize: folds identifiers and type spellings for fuzzy comparison
//   - Distance: edit distance counting adjacent swaps as one edit
//   - Suggest: ranks known names closest to an unknown one
package match
