// Package field defines implicit scalar fields and the functional CSG
// algebra used to compose them. A field maps a point in 3D space to a
// real number that is non-positive inside the solid it describes and
// positive outside; the zero level set is the solid's boundary.
//
// Fields are values. Combinators close over their operands and never
// retain an expression tree, so a composite field can be evaluated
// concurrently from any number of goroutines.
package field
