// Package coerce converts console argument tokens into typed Go values.
//
// Every command parameter and variable carries a *Type tag. Primitive tags
// are predefined (Int, Float32, String, ...); Enum, ArrayOf and Composite
// build the others. Coerced arrays are typed slices, so a handler for an
// ArrayOf(Int) parameter receives a []int.
//
// Composite tokens are resolved in this order: null (reference types only),
// a named instance registered with RegisterNamed, a static member, then
// constructor syntax Type(a, b) or (a, b). Empty constructor syntax falls
// back to the zero constructor.
package coerce
