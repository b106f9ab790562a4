package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeName(t *testing.T) {
	cases := []struct {
		in    string
		base  string
		enum  string
		array bool
		shape Shape
	}{
		{"Int", "Int", "", false, ShapeInt},
		{"Multilines", "Multilines", "", false, ShapeString},
		{"Array<Point>", "Point", "", true, ShapePoint},
		{"LocalEnum.Weapon", "Enum", "Weapon", false, ShapeEnum},
		{"Array<ExternEnum.Items>", "Enum", "Items", true, ShapeEnum},
		{"Enum(Mood)", "Enum", "Mood", false, ShapeEnum},
		{"EntityRef", "EntityRef", "", false, ShapeEntityRef},
		{"Sprite", "Sprite", "", false, ShapeRaw},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			tn := ParseTypeName(c.in)
			assert.Equal(t, c.base, tn.Base)
			assert.Equal(t, c.enum, tn.Enum)
			assert.Equal(t, c.array, tn.Array)
			assert.Equal(t, c.shape, tn.Shape())
		})
	}
}

func TestTypeNameCheck(t *testing.T) {
	cases := []struct {
		name  string
		typ   string
		value string
		path  string // empty when the value fits
	}{
		{"int", "Int", `3`, ""},
		{"int_from_float", "Int", `3.5`, "<root>"},
		{"float_accepts_int", "Float", `3`, ""},
		{"null_any_type", "Point", `null`, ""},
		{"color", "Color", `"#ff0000"`, ""},
		{"point_object", "Point", `{"cx":1,"cy":2}`, ""},
		{"point_from_string", "Point", `"1,2"`, "<root>"},
		{"array_items", "Array<Int>", `[1,null,2]`, ""},
		{"array_bad_item", "Array<Int>", `[1,"two"]`, "[1]"},
		{"array_expected", "Array<Bool>", `true`, "<root>"},
		{"unknown_type", "Sprite", `[{"x":1}]`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var a Any
			require.NoError(t, Unmarshal([]byte(c.value), &a))
			err := ParseTypeName(c.typ).Check(a)
			if c.path == "" {
				assert.NoError(t, err)
				return
			}
			var se *SchemaError
			require.True(t, errors.As(err, &se), "expected SchemaError, got %v", err)
			path := se.FieldPath()
			if path == "" {
				path = "<root>"
			}
			assert.Equal(t, c.path, path)
		})
	}
}

func TestUnmarshalEnumNotString(t *testing.T) {
	var m mode
	err := Unmarshal([]byte(`1`), &m)
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "one of A|B", se.Expected)
	assert.Equal(t, "number", se.Actual)
}
