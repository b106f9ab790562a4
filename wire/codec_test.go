package wire

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode string

const (
	modeA mode = "A"
	modeB mode = "B"
)

func (m *mode) UnmarshalJSON(b []byte) error {
	return UnmarshalEnum(b, m, modeA, modeB)
}

type inner struct {
	UID   int64  `json:"uid"`
	Label string `json:"label"`
	Extra Extra  `json:"-"`
}

type outer struct {
	Name   string         `json:"name"`
	Scale  float64        `json:"scale"`
	Mode   mode           `json:"mode"`
	Count  Field[int64]   `json:"count"`
	Items  []inner        `json:"items"`
	Note   Field[string]  `json:"note"`
	Loose  Any            `json:"loose"`
	Lookup map[string]Any `json:"lookup"`
	Extra  Extra          `json:"-"`
}

func TestUnmarshalRequiredFieldPath(t *testing.T) {
	cases := []struct {
		name     string
		doc      string
		path     string
		expected string
		actual   string
	}{
		{
			name:     "missing_top_level",
			doc:      `{"scale":1,"mode":"A","items":[],"loose":null,"lookup":{}}`,
			path:     "name",
			expected: "string",
			actual:   "missing",
		},
		{
			name:     "missing_nested",
			doc:      `{"name":"x","scale":1,"mode":"A","items":[{"uid":1,"label":"a"},{"label":"b"}],"loose":null,"lookup":{}}`,
			path:     "items[1].uid",
			expected: "integer",
			actual:   "missing",
		},
		{
			name:     "wrong_kind",
			doc:      `{"name":"x","scale":"big","mode":"A","items":[],"loose":null,"lookup":{}}`,
			path:     "scale",
			expected: "number",
			actual:   "string",
		},
		{
			name:     "fraction_for_int",
			doc:      `{"name":"x","scale":1,"mode":"A","items":[{"uid":1.5,"label":"a"}],"loose":null,"lookup":{}}`,
			path:     "items[0].uid",
			expected: "integer",
			actual:   "number 1.5",
		},
		{
			name:     "unknown_enum",
			doc:      `{"name":"x","scale":1,"mode":"Foo","items":[],"loose":null,"lookup":{}}`,
			path:     "mode",
			expected: "one of A|B",
			actual:   `"Foo"`,
		},
		{
			name:     "optional_wrong_kind",
			doc:      `{"name":"x","scale":1,"mode":"A","count":"3","items":[],"loose":null,"lookup":{}}`,
			path:     "count",
			expected: "integer",
			actual:   "string",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out outer
			err := Unmarshal([]byte(c.doc), &out)
			require.Error(t, err)

			var se *SchemaError
			require.True(t, errors.As(err, &se), "expected SchemaError, got %T", err)
			assert.Equal(t, c.path, se.FieldPath())
			assert.Equal(t, c.expected, se.Expected)
			assert.Equal(t, c.actual, se.Actual)
		})
	}
}

func TestUnmarshalSyntaxError(t *testing.T) {
	doc := "{\n  \"name\": \"x\",\n  \"scale\": ]\n}"
	var out outer
	err := Unmarshal([]byte(doc), &out)

	var se *SyntaxError
	require.True(t, errors.As(err, &se), "expected SyntaxError, got %T", err)
	assert.Equal(t, 3, se.Line)
	assert.Greater(t, se.Column, 1)
}

func TestFieldStates(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		state State
		value string
	}{
		{"absent", `{"name":"x","scale":1,"mode":"B","items":[],"loose":null,"lookup":{}}`, StateAbsent, ""},
		{"null", `{"name":"x","scale":1,"mode":"B","items":[],"note":null,"loose":null,"lookup":{}}`, StateNull, ""},
		{"present", `{"name":"x","scale":1,"mode":"B","items":[],"note":"hi","loose":null,"lookup":{}}`, StatePresent, "hi"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out outer
			require.NoError(t, Unmarshal([]byte(c.doc), &out))
			assert.Equal(t, c.state, out.Note.State())
			v, ok := out.Note.Get()
			assert.Equal(t, c.state == StatePresent, ok)
			assert.Equal(t, c.value, v)
		})
	}
}

func TestRoundTripKeepsUnknownKeys(t *testing.T) {
	doc := `{"name":"x","scale":0.5,"mode":"A","count":null,"items":[{"uid":7,"label":"a","zz":[1,2],"aa":{"k":true}}],"loose":{"b":1,"a":[1.0,"s",null]},"lookup":{"k":2},"future":"kept"}`

	var out outer
	require.NoError(t, Unmarshal([]byte(doc), &out))
	assert.Contains(t, out.Extra, "future")
	assert.Contains(t, out.Items[0].Extra, "zz")
	assert.True(t, out.Count.IsNull())
	assert.True(t, out.Note.IsAbsent())

	b, err := Marshal(&out)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(b))

	// Declared members come first, unknown keys after them in sorted order.
	assert.Contains(t, string(b), `"label":"a","aa":{"k":true},"zz":[1,2]`)
}

func TestMarshalOmitsAbsentFields(t *testing.T) {
	out := outer{Name: "x", Mode: modeB, Note: Some("n")}
	b, err := Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x","scale":0,"mode":"B","items":[],"note":"n","loose":null,"lookup":null}`, string(b))
}

func TestFieldWithEncodingJSON(t *testing.T) {
	type doc struct {
		A Field[int] `json:"a,omitzero"`
		B Field[int] `json:"b,omitzero"`
		C Field[int] `json:"c,omitzero"`
	}

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"b":null,"c":3}`), &d))
	assert.True(t, d.A.IsAbsent())
	assert.True(t, d.B.IsNull())
	assert.Equal(t, 3, d.C.Or(0))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":null,"c":3}`, string(b))
}

func TestUnmarshalRejectsNonPointer(t *testing.T) {
	var out outer
	assert.Error(t, Unmarshal([]byte(`{}`), out))
}
