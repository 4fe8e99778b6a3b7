// Package collect reduces a htree.Document to the flat point/rect/
// polyline buffers the bounding engine needs. It performs no coordinate
// conversion itself - whatever frame the document is in when Collect is
// called is the frame the returned buffers are expressed in.
package collect
