// Package stroke converts flattened polylines into polygons whose
// nonzero union is the stroked outline.
//
// Each segment becomes a quad, each interior vertex a join piece and each
// open end a cap piece. Every piece is emitted with the same orientation,
// so filling the result with the nonzero rule unions them without seams
// or double coverage.
//
// # Line Caps
//
//   - LineCapButt: the stroke ends exactly at the endpoint
//   - LineCapRound: a half disc of radius width/2
//   - LineCapSquare: the stroke extends width/2 past the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, falling back to bevel past the miter limit
//   - LineJoinRound: a disc of radius width/2 at the vertex
//   - LineJoinBevel: a triangle across the outer corner
//
// Dash splits polylines into their "on" intervals before stroking.
package stroke
