// File: format.go
// Title: Literal Formatting and Value Suggestions
// Description: Renders values back into console literal syntax and lists
//              the literal candidates a type offers for autocompletion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package coerce

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// HighlightMarker wraps the highlighted parameter in signatures
const HighlightMarker = "*"

// Format renders v as a literal that Coerce parses back into an equal
// value of type t.
func Format(t *Type, v any) string {
	switch t.Kind {
	case KindEnum:
		for _, m := range t.Members {
			if m.Value == v {
				return m.Name
			}
		}
		return fmt.Sprint(v)
	case KindArray:
		return formatArray(t, v)
	case KindComposite:
		return formatComposite(t, v)
	default:
		return formatPrimitive(t.Kind, v)
	}
}

func formatArray(t *Type, v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Sprint(v)
	}

	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = Format(t.Elem, rv.Index(i).Interface())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatComposite(t *Type, v any) string {
	if isNil(v) {
		return Null
	}
	ct := t.Composite
	if ct.Fields == nil {
		for _, s := range ct.Statics {
			if reflect.DeepEqual(s.Value, v) {
				return s.Name
			}
		}
		return fmt.Sprint(v)
	}

	fields := ct.Fields(v)
	kinds := make([]Kind, len(fields))
	for i := range kinds {
		kinds[i] = KindString
	}
	for _, ctor := range ct.Constructors {
		if len(ctor.Params) == len(fields) {
			for i, p := range ctor.Params {
				kinds[i] = p.Type.Kind
			}
			break
		}
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = formatPrimitive(kinds[i], f)
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

func formatPrimitive(kind Kind, v any) string {
	switch x := v.(type) {
	case nil:
		return Null
	case string:
		return `"` + strings.ReplaceAll(x, `"`, `\"`) + `"`
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case rune:
		if kind == KindChar {
			return string(x)
		}
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Candidates lists the literals a user can pick for t: bool values, enum
// members, composite statics and named instances.
func (c *Coercer) Candidates(t *Type) []string {
	switch t.Kind {
	case KindBool:
		return []string{"true", "false"}
	case KindEnum:
		return t.MemberNames()
	case KindComposite:
		var out []string
		for _, s := range t.Composite.Statics {
			out = append(out, s.Name)
		}
		out = append(out, c.NamedFor(t.Name)...)
		if t.Composite.Reference {
			out = append(out, Null)
		}
		return out
	default:
		return nil
	}
}

// ConstructorSignatures renders every constructor of a composite as
// Type(type name, ...). The parameter at index highlight is wrapped in
// HighlightMarker; pass -1 for none.
func ConstructorSignatures(t *Type, highlight int) []string {
	if t.Kind != KindComposite {
		return nil
	}

	out := make([]string, 0, len(t.Composite.Constructors))
	for _, ctor := range t.Composite.Constructors {
		parts := make([]string, len(ctor.Params))
		for i, p := range ctor.Params {
			part := p.Type.String() + " " + p.Name
			if i == highlight {
				part = HighlightMarker + part + HighlightMarker
			}
			parts[i] = part
		}
		out = append(out, t.Name+"("+strings.Join(parts, ", ")+")")
	}
	return out
}
