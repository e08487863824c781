// File: coerce.go
// Title: Type Coercion Engine
// Description: Converts raw argument tokens into typed Go values according
//              to a parameter's type tag. Handles primitives, enums, arrays
//              and composites resolved through named instances, static
//              members, constructor syntax, default construction and null.
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
	"sync"
	"unicode/utf8"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	"github.com/msto63/devconsole/foundation/console/lexer"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// Null is the literal accepted for reference composites
const Null = "null"

// Coercer converts tokens to values. It holds the named-instance table
// consulted before constructor syntax.
type Coercer struct {
	mutex sync.RWMutex
	named map[string][]Named
}

// New creates a coercer with an empty named-instance table
func New() *Coercer {
	return &Coercer{named: make(map[string][]Named)}
}

// RegisterNamed makes value addressable by name for arguments of the
// composite type typeName. Re-registering a name replaces its value.
func (c *Coercer) RegisterNamed(typeName, name string, value any) error {
	if !lexer.IsIdentifier(typeName) || mdwstringx.IsBlank(name) {
		return mdwerror.New("named instance requires a type and a name").
			WithCode(mdwerror.CodeInvalidIdentifier).
			WithOperation("coerce.RegisterNamed").
			WithDetail("type", typeName).
			WithDetail("name", name)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	entries := c.named[typeName]
	for i := range entries {
		if entries[i].Name == name {
			entries[i].Value = value
			return nil
		}
	}
	c.named[typeName] = append(entries, Named{Name: name, Value: value})
	return nil
}

// NamedFor returns the names registered for typeName in registration order
func (c *Coercer) NamedFor(typeName string) []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entries := c.named[typeName]
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func (c *Coercer) lookupNamed(typeName, name string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, e := range c.named[typeName] {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Coerce converts token into a value of type t. Failures are returned as
// ARGUMENT_PARSE_ERROR.
func (c *Coercer) Coerce(t *Type, token string) (any, error) {
	value, err := c.coerce(t, strings.TrimSpace(token))
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("cannot convert %q to %s", token, t)).
			WithCode(mdwerror.CodeArgumentParseError).
			WithOperation("coerce.Coerce").
			WithDetail("type", t.String()).
			WithDetail("token", token)
	}
	return value, nil
}

func (c *Coercer) coerce(t *Type, token string) (any, error) {
	switch {
	case t.Kind.IsPrimitive():
		return ParsePrimitive(t.Kind, token)
	case t.Kind == KindEnum:
		return parseEnum(t, mdwstringx.Unquote(token))
	case t.Kind == KindArray:
		return c.parseArray(t, token)
	case t.Kind == KindComposite:
		return c.parseComposite(t, token)
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind)
	}
}

// ParsePrimitive parses a primitive literal, locale independent. Strings
// lose one pair of surrounding quotes; other kinds accept an optional pair.
func ParsePrimitive(kind Kind, token string) (any, error) {
	s := mdwstringx.Unquote(token)

	switch kind {
	case KindBool:
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
		return nil, fmt.Errorf("invalid bool %q", s)
	case KindChar:
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("char needs exactly one character, got %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	case KindInt:
		v, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return int(v), err
	case KindInt8:
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err
	case KindInt16:
		v, err := strconv.ParseInt(s, 10, 16)
		return int16(v), err
	case KindInt32:
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	case KindInt64:
		return strconv.ParseInt(s, 10, 64)
	case KindUint:
		v, err := strconv.ParseUint(s, 10, strconv.IntSize)
		return uint(v), err
	case KindUint8:
		v, err := strconv.ParseUint(s, 10, 8)
		return uint8(v), err
	case KindUint16:
		v, err := strconv.ParseUint(s, 10, 16)
		return uint16(v), err
	case KindUint32:
		v, err := strconv.ParseUint(s, 10, 32)
		return uint32(v), err
	case KindUint64:
		return strconv.ParseUint(s, 10, 64)
	case KindFloat32:
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	case KindFloat64:
		return strconv.ParseFloat(s, 64)
	case KindString:
		return s, nil
	default:
		return nil, fmt.Errorf("%s is not a primitive kind", kind)
	}
}

func parseEnum(t *Type, name string) (any, error) {
	for _, m := range t.Members {
		if m.Name == name {
			return m.Value, nil
		}
	}
	return nil, fmt.Errorf("%q is not a member of %s", name, t.Name)
}

func (c *Coercer) parseArray(t *Type, token string) (any, error) {
	body, ok := lexer.Unwrap(token, lexer.ArrayOpen, lexer.ArrayClose)
	if !ok {
		return nil, fmt.Errorf("array literal must be enclosed in %c%c", lexer.ArrayOpen, lexer.ArrayClose)
	}

	elements := lexer.SplitElements(body)
	values := make([]any, len(elements))
	for i, element := range elements {
		v, err := c.coerce(t.Elem, element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = v
	}

	if t.goType == nil {
		return values, nil
	}
	slice := reflect.MakeSlice(t.goType, len(values), len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(t.goType.Elem()) {
			return nil, fmt.Errorf("element %d: %s is not assignable to %s", i, rv.Type(), t.goType.Elem())
		}
		slice.Index(i).Set(rv)
	}
	return slice.Interface(), nil
}

func (c *Coercer) parseComposite(t *Type, token string) (any, error) {
	ct := t.Composite

	if token == Null {
		if !ct.Reference {
			return nil, fmt.Errorf("%s is a value type and cannot be null", t.Name)
		}
		return t.zero(), nil
	}

	if v, ok := c.lookupNamed(t.Name, token); ok {
		return v, nil
	}
	for _, s := range ct.Statics {
		if s.Name == token {
			return s.Value, nil
		}
	}

	typeName, body, ok := lexer.SplitCall(token)
	if !ok {
		return nil, fmt.Errorf("%q is neither a known %s nor constructor syntax", token, t.Name)
	}
	if typeName != "" && typeName != t.Name {
		return nil, fmt.Errorf("constructor %s does not build %s", typeName, t.Name)
	}

	args := lexer.SplitElements(body)
	for _, ctor := range ct.Constructors {
		if len(ctor.Params) != len(args) {
			continue
		}
		if v, ok := build(ctor, args); ok {
			return v, nil
		}
	}

	if len(args) == 0 && ct.Zero != nil {
		return ct.Zero(), nil
	}
	return nil, fmt.Errorf("no constructor of %s accepts %d argument(s)", t.Name, len(args))
}

// build coerces every argument against the constructor's primitive
// parameters and invokes it. Non-primitive parameters never match.
func build(ctor Constructor, args []string) (any, bool) {
	values := make([]any, len(args))
	for i, arg := range args {
		kind := ctor.Params[i].Type.Kind
		if !kind.IsPrimitive() {
			return nil, false
		}
		v, err := ParsePrimitive(kind, arg)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}

	v, err := ctor.Build(values)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (t *Type) zero() any {
	if t.goType == nil {
		return nil
	}
	return reflect.Zero(t.goType).Interface()
}
