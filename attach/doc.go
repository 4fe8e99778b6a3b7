// Package attach finds where a segment crosses an axis-aligned rect's
// border via Liang-Barsky parametric clipping. It is used by package
// transform to snap an edge's endpoint onto its node's border when a
// document whose edge attachment is not already Border is converted.
package attach
