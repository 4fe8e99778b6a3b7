// Package bounding computes a degenerate-tolerant bounding rect over a
// collect.Buffers value. It never errors: an empty buffer yields the zero
// Rect. The union step is built on github.com/golang/geo/r2.Rect rather
// than hand-rolled min/max bookkeeping.
package bounding
