// Package htreegeom manipulates the geometry of hierarchical diagrams:
// trees of nested rectangular or point nodes connected by polyline edges,
// across three node coordinate conventions (Absolute, LeftTop,
// LocalCenter) and two edge attachment conventions (Center, Border).
//
// It is a pure, in-memory, single-threaded engine - no parsing, no
// rendering, no I/O, no concurrency primitives of its own. Building a
// Document from a file format, or laying one out, is the caller's job;
// this module only ever reasons about geometry already present in one.
//
// Under the hood, everything is organized under seven subpackages:
//
//	geom/        — Point, Rect, Polyline primitives
//	htree/       — Document/Tree/Node/Edge, the hierarchy model
//	collect/     — flattens a Document's geometry into buffers
//	bounding/    — the smallest-enclosing-rect engine
//	attach/      — segment/rect border-crossing computation
//	transform/   — the coordinate-frame conversion engine
//	reconstruct/ — fills in missing node geometry and bounding rects
//
// This package re-exports the entry points a caller most commonly needs,
// plus Code, which maps any error this module returns back onto the
// four-value return code table the original C implementation used, for
// callers that need to interoperate with systems built against it.
package htreegeom
