// Package reconstruct fills in a document's missing node geometry
// (Padding/NodeWidth/NodeHeight defaults) and rebuilds bounding rects
// bottom-up, driving package transform to normalize to absolute
// coordinates before doing so and to convert back afterward.
package reconstruct
