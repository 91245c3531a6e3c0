// Package render draws a water profile as documents: an SVG bar chart and an
// HTML grid table. Both are rebuilt from scratch on every call and never
// modify the slices they are given.
package render
