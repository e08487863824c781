// File: rank.go
// Title: Suggestion Scoring and Ranking
// Description: Implements the position weighted similarity score and the
//              stable hybrid sort that orders suggestions by it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package suggest

import (
	"math"
	"unicode"
)

// Excluded is the score of a candidate that cannot match the comparator
const Excluded = math.MinInt

// insertionCutover is the partition size below which insertion sort is used
const insertionCutover = 16

// List is a rendered suggestion list. The first Offset items are headers
// that are neither ranked nor selectable.
type List struct {
	Items  []string
	Offset int
}

// Selectable returns the items after the header lines
func (l List) Selectable() []string {
	if l.Offset >= len(l.Items) {
		return nil
	}
	return l.Items[l.Offset:]
}

// Len returns the number of selectable items
func (l List) Len() int {
	return len(l.Selectable())
}

// Score rates how well candidate matches comparator. The match is anchored
// at the first case-insensitive occurrence of the comparator's first
// character; each following character adds 2*j on an exact match and j on
// a case-insensitive match, where j is its index in the comparator. On a
// mismatch the anchor moves to the next occurrence of the first character
// and scoring restarts. Every anchor costs twice its position.
func Score(comparator, candidate string) int {
	comp := []rune(comparator)
	cand := []rune(candidate)
	if len(comp) == 0 {
		return 0
	}

	lowerComp := toLower(comp)
	lowerCand := toLower(cand)

	start := indexFrom(lowerCand, lowerComp[0], 0)
	if start < 0 || len(comp)-1 > len(cand)-start {
		return Excluded
	}

	score := -start * 2
	for j := 1; j < len(comp) && j+start < len(cand); j++ {
		switch {
		case comp[j] == cand[j+start]:
			score += 2 * j
		case lowerComp[j] == lowerCand[j+start]:
			score += j
		default:
			start = indexFrom(lowerCand, lowerComp[0], start+1)
			if start < 0 || len(comp)-1 > len(cand)-start {
				return Excluded
			}
			score = -start * 2
			j = 0
		}
	}
	return score
}

func toLower(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func indexFrom(rs []rune, r rune, from int) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

type scored struct {
	item  string
	score int
}

// Rank sorts items[offset:] in place by descending Score against
// comparator. Ties keep their original order. An empty comparator or a
// lone separator leaves the list untouched.
func Rank(items []string, comparator string, offset int) {
	if comparator == "" || comparator == "-" || offset >= len(items) {
		return
	}
	if offset < 0 {
		offset = 0
	}

	entries := make([]scored, len(items)-offset)
	for i, item := range items[offset:] {
		entries[i] = scored{item: item, score: Score(comparator, item)}
	}

	sortScored(entries)

	for i, e := range entries {
		items[offset+i] = e.item
	}
}

// sortScored is a stable descending sort: insertion sort for small runs,
// otherwise a three-way partition around the last element that keeps the
// relative order inside each partition.
func sortScored(entries []scored) {
	if len(entries) < insertionCutover {
		insertionSort(entries)
		return
	}

	pivot := entries[len(entries)-1].score
	var greater, equal, less []scored
	for _, e := range entries {
		switch {
		case e.score > pivot:
			greater = append(greater, e)
		case e.score == pivot:
			equal = append(equal, e)
		default:
			less = append(less, e)
		}
	}

	sortScored(greater)
	sortScored(less)

	n := copy(entries, greater)
	n += copy(entries[n:], equal)
	copy(entries[n:], less)
}

func insertionSort(entries []scored) {
	for i := 1; i < len(entries); i++ {
		current := entries[i]
		j := i - 1
		for ; j >= 0 && current.score > entries[j].score; j-- {
			entries[j+1] = entries[j]
		}
		entries[j+1] = current
	}
}
