// File: generate.go
// Title: Suggestion Generators
// Description: Generates numeric parameter suggestions from ranges and
//              proposes the closest known name for a mistyped command.
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
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

// errNonConverging reports a range whose increment does not move the
// start value towards the end value.
func errNonConverging(op string, start, end, inc any) error {
	return mdwerror.New("range does not converge").
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("start", start).
		WithDetail("end", end).
		WithDetail("increment", inc)
}

// IntRange returns start, start+inc, ... for round(|(end-start)/inc|)
// values. The end value itself is excluded.
func IntRange(start, end, inc int) ([]string, error) {
	if abs(end-start) <= abs(end-(start+inc)) {
		return nil, errNonConverging("suggest.IntRange", start, end, inc)
	}

	n := int(math.Round(math.Abs(float64(end-start) / float64(inc))))
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(start + i*inc)
	}
	return out, nil
}

// FloatRange returns start, start+inc, ... for round(|(end-start)/inc|)
// values, each printed with the given number of decimals.
func FloatRange(start, end, inc float64, decimals int) ([]string, error) {
	if math.Abs(end-start) <= math.Abs(end-(start+inc)) {
		return nil, errNonConverging("suggest.FloatRange", start, end, inc)
	}
	if decimals < 0 {
		decimals = 0
	}

	n := int(math.Round(math.Abs((end - start) / inc)))
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.FormatFloat(start+float64(i)*inc, 'f', decimals, 64)
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DidYouMean returns the candidate closest to name by case-insensitive
// Levenshtein distance. Candidates further away than a third of the
// name's length (at least one edit, at most three) are not proposed.
func DidYouMean(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}

	limit := min(max(len(name)/3, 1), 3)
	lowerName := strings.ToLower(name)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lowerName, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
