// Package suggest ranks autocompletion candidates against the text a user
// has typed so far.
//
// Score weights every matching character by its position in the comparator
// so that prefix and dense matches outrank sparse ones; Rank sorts a list
// by descending score and keeps the original order on ties. Leading header
// entries (such as a command signature) can be excluded with an offset.
//
// The package also generates numeric suggestion ranges and proposes the
// closest known command for a mistyped name.
package suggest
