// File: coerce_test.go
// Title: Type Coercion Tests
// Description: Tests primitive, enum, array and composite coercion,
//              literal formatting round trips and value candidates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial tests

package coerce

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

type vector3 struct{ X, Y, Z float32 }

type rgba struct{ R, G, B, A uint8 }

type shape int

const (
	shapeCube shape = iota
	shapeSphere
)

func (s shape) String() string {
	if s == shapeSphere {
		return "Sphere"
	}
	return "Cube"
}

type node struct{ Name string }

var (
	vectorType = Composite[vector3]("Vector3", CompositeType{
		Constructors: []Constructor{{
			Params: []Param{{"x", Float32}, {"y", Float32}, {"z", Float32}},
			Build: func(a []any) (any, error) {
				return vector3{a[0].(float32), a[1].(float32), a[2].(float32)}, nil
			},
		}, {
			Params: []Param{{"x", Float32}, {"y", Float32}},
			Build: func(a []any) (any, error) {
				return vector3{X: a[0].(float32), Y: a[1].(float32)}, nil
			},
		}},
		Statics: []Named{{"up", vector3{Y: 1}}, {"zero", vector3{}}},
		Zero:    func() any { return vector3{} },
		Fields: func(v any) []any {
			p := v.(vector3)
			return []any{p.X, p.Y, p.Z}
		},
	})

	colorType = Composite[rgba]("Color", CompositeType{
		Constructors: []Constructor{{
			Params: []Param{{"r", Uint8}, {"g", Uint8}, {"b", Uint8}, {"a", Uint8}},
			Build: func(a []any) (any, error) {
				return rgba{a[0].(uint8), a[1].(uint8), a[2].(uint8), a[3].(uint8)}, nil
			},
		}},
		Fields: func(v any) []any {
			c := v.(rgba)
			return []any{c.R, c.G, c.B, c.A}
		},
	})

	nodeType = Composite[*node]("Node", CompositeType{
		Constructors: []Constructor{{
			Params: []Param{{"name", String}},
			Build: func(a []any) (any, error) {
				if a[0].(string) == "" {
					return nil, errors.New("empty name")
				}
				return &node{Name: a[0].(string)}, nil
			},
		}},
	})

	shapeType = Enum("Shape", shapeCube, shapeSphere)
)

func TestParsePrimitive(t *testing.T) {
	tests := []struct {
		kind    Kind
		token   string
		want    any
		wantErr bool
	}{
		{KindBool, "TRUE", true, false},
		{KindBool, "false", false, false},
		{KindBool, "1", nil, true},
		{KindChar, "x", 'x', false},
		{KindChar, "ß", 'ß', false},
		{KindChar, "xy", nil, true},
		{KindInt, "-42", -42, false},
		{KindInt8, "127", int8(127), false},
		{KindInt8, "128", nil, true},
		{KindUint8, "255", uint8(255), false},
		{KindUint8, "-1", nil, true},
		{KindInt64, "9223372036854775807", int64(9223372036854775807), false},
		{KindUint16, "65535", uint16(65535), false},
		{KindFloat32, "-0.5", float32(-0.5), false},
		{KindFloat64, "1e3", float64(1000), false},
		{KindFloat64, "1,5", nil, true},
		{KindString, `"a - b"`, "a - b", false},
		{KindString, "plain", "plain", false},
		{KindInt, `"7"`, 7, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.kind, tt.token), func(t *testing.T) {
			got, err := ParsePrimitive(tt.kind, tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceEnum(t *testing.T) {
	c := New()

	v, err := c.Coerce(shapeType, "Sphere")
	require.NoError(t, err)
	assert.Equal(t, shapeSphere, v)

	_, err = c.Coerce(shapeType, "sphere")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentParseError))
}

func TestCoerceArray(t *testing.T) {
	c := New()

	v, err := c.Coerce(ArrayOf(Int), "[1, -2, 3]")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3}, v)

	v, err = c.Coerce(ArrayOf(String), `["a,b", "c"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b", "c"}, v)

	v, err = c.Coerce(ArrayOf(vectorType), "[Vector3(1,2,3), (4,5), up]")
	require.NoError(t, err)
	assert.Equal(t, []vector3{{1, 2, 3}, {4, 5, 0}, {0, 1, 0}}, v)

	v, err = c.Coerce(ArrayOf(Float64), "[]")
	require.NoError(t, err)
	assert.Equal(t, []float64{}, v)

	v, err = c.Coerce(ArrayOf(ArrayOf(Int)), "[[1,2],[3]]")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3}}, v)

	for _, bad := range []string{"1,2", "[1,x]", "[1,2"} {
		_, err := c.Coerce(ArrayOf(Int), bad)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentParseError), bad)
	}
}

func TestCoerceComposite(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterNamed("Vector3", "spawn", vector3{10, 0, 10}))

	tests := []struct {
		name  string
		typ   *Type
		token string
		want  any
	}{
		{"named constructor", vectorType, "Vector3(1, 2, 3)", vector3{1, 2, 3}},
		{"bare constructor", vectorType, "(1,2,3)", vector3{1, 2, 3}},
		{"arity selects constructor", vectorType, "(1,2)", vector3{1, 2, 0}},
		{"default constructor", vectorType, "Vector3()", vector3{}},
		{"bare default constructor", vectorType, "()", vector3{}},
		{"static member", vectorType, "up", vector3{Y: 1}},
		{"named instance", vectorType, "spawn", vector3{10, 0, 10}},
		{"byte color", colorType, "(255,0,0,255)", rgba{255, 0, 0, 255}},
		{"null reference", nodeType, "null", (*node)(nil)},
		{"string argument", nodeType, `Node("root")`, &node{Name: "root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Coerce(tt.typ, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceCompositeFailures(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		typ   *Type
		token string
	}{
		{"null on value type", vectorType, "null"},
		{"unknown static", vectorType, "down"},
		{"wrong type name", vectorType, "Color(1,2,3)"},
		{"arity mismatch", vectorType, "(1,2,3,4)"},
		{"bad primitive", vectorType, "(1,x,3)"},
		{"byte overflow", colorType, "(256,0,0,0)"},
		{"no default constructor", colorType, "()"},
		{"build error", nodeType, `("")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Coerce(tt.typ, tt.token)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentParseError))
			assert.Equal(t, mdwerror.SeverityLow, mdwerror.GetSeverity(err))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	c := New()
	base := []vector3{{1, 2, 3}, {-0.5, 0, 4}, {1e-3, 7, -8}}

	for n := 0; n <= 3; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			want := append([]vector3{}, base[:n]...)
			literal := Format(ArrayOf(vectorType), want)

			got, err := c.Coerce(ArrayOf(vectorType), literal)
			require.NoError(t, err, literal)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip of %s mismatch (-want +got):\n%s", literal, diff)
			}
		})
	}
}

func TestFormatPrimitivesAndEnums(t *testing.T) {
	c := New()

	tests := []struct {
		typ   *Type
		value any
		want  string
	}{
		{String, `say "hi"`, `"say \"hi\""`},
		{Char, 'q', "q"},
		{Int32, int32(113), "113"},
		{Float32, float32(0.1), "0.1"},
		{shapeType, shapeSphere, "Sphere"},
		{ArrayOf(Bool), []bool{true, false}, "[true, false]"},
		{colorType, rgba{1, 2, 3, 4}, "Color(1, 2, 3, 4)"},
		{nodeType, (*node)(nil), "null"},
	}

	for _, tt := range tests {
		got := Format(tt.typ, tt.value)
		assert.Equal(t, tt.want, got)

		if tt.typ.Kind == KindString {
			continue
		}
		back, err := c.Coerce(tt.typ, got)
		require.NoError(t, err, got)
		assert.Equal(t, tt.value, back)
	}
}

func TestCandidates(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterNamed("Vector3", "spawn", vector3{}))
	require.NoError(t, c.RegisterNamed("Vector3", "spawn", vector3{1, 1, 1}))

	assert.Equal(t, []string{"true", "false"}, c.Candidates(Bool))
	assert.Equal(t, []string{"Cube", "Sphere"}, c.Candidates(shapeType))
	assert.Equal(t, []string{"up", "zero", "spawn"}, c.Candidates(vectorType))
	assert.Equal(t, []string{"null"}, c.Candidates(nodeType))
	assert.Nil(t, c.Candidates(Int))

	v, err := c.Coerce(vectorType, "spawn")
	require.NoError(t, err)
	assert.Equal(t, vector3{1, 1, 1}, v)

	err = c.RegisterNamed("", "x", 1)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidIdentifier))
}

func TestConstructorSignatures(t *testing.T) {
	got := ConstructorSignatures(vectorType, 1)
	assert.Equal(t, []string{
		"Vector3(float32 x, *float32 y*, float32 z)",
		"Vector3(float32 x, *float32 y*)",
	}, got)
	assert.Nil(t, ConstructorSignatures(Int, 0))
}
