package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the variant held by an Any.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "null"
	}
}

// Member is one key/value pair of a mapping, in document order.
type Member struct {
	Key   string
	Value Any
}

// Any holds a JSON value whose kind is not fixed by the schema.
//
// The variant is chosen by the JSON kind alone: an object becomes a Mapping,
// a string a String, a number an Integer when its literal parses as a 64-bit
// integer and a Float otherwise, true/false a Bool, an array a Sequence and
// null a Null. Mappings keep their member order and numbers keep their literal
// text. Strings are held unescaped and written back with the shortest
// escaping, so "x\/y" encodes as "x/y": the JSON value is kept, not its bytes.
//
// The zero value is Null.
type Any struct {
	kind    Kind
	text    string // string value or number literal
	b       bool
	members []Member
	items   []Any
}

func Null() Any                 { return Any{} }
func StringValue(s string) Any  { return Any{kind: KindString, text: s} }
func BoolValue(b bool) Any      { return Any{kind: KindBool, b: b} }
func IntValue(n int64) Any      { return Any{kind: KindInteger, text: strconv.FormatInt(n, 10)} }
func MapValue(m ...Member) Any  { return Any{kind: KindMapping, members: m} }
func SeqValue(items ...Any) Any { return Any{kind: KindSequence, items: items} }

func FloatValue(f float64) Any {
	b, err := json.Marshal(f)
	if err != nil {
		// NaN and infinities have no JSON spelling.
		return Any{}
	}
	return Any{kind: KindFloat, text: string(b)}
}

func numberValue(lit string) Any {
	if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Any{kind: KindInteger, text: lit}
	}
	return Any{kind: KindFloat, text: lit}
}

func (a Any) Kind() Kind        { return a.kind }
func (a Any) IsNull() bool      { return a.kind == KindNull }
func (a Any) Members() []Member { return a.members }
func (a Any) Items() []Any      { return a.items }

// Str returns the string held by a String.
func (a Any) Str() (string, bool) {
	if a.kind != KindString {
		return "", false
	}
	return a.text, true
}

// Int returns the value of an Integer.
func (a Any) Int() (int64, bool) {
	if a.kind != KindInteger {
		return 0, false
	}
	n, err := strconv.ParseInt(a.text, 10, 64)
	return n, err == nil
}

// Float returns the value of a Float or an Integer.
func (a Any) Float() (float64, bool) {
	if a.kind != KindFloat && a.kind != KindInteger {
		return 0, false
	}
	f, err := strconv.ParseFloat(a.text, 64)
	return f, err == nil
}

func (a Any) Bool() (bool, bool) {
	return a.b, a.kind == KindBool
}

// Get returns the value of the first member named key.
func (a Any) Get(key string) (Any, bool) {
	for _, m := range a.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Any{}, false
}

// Len is the number of members or items, zero for scalars.
func (a Any) Len() int {
	switch a.kind {
	case KindMapping:
		return len(a.members)
	case KindSequence:
		return len(a.items)
	}
	return 0
}

// Interface converts a to plain Go values: nil, string, int64, float64, bool,
// map[string]any and []any.
func (a Any) Interface() any {
	switch a.kind {
	case KindString:
		return a.text
	case KindInteger:
		n, _ := a.Int()
		return n
	case KindFloat:
		f, _ := a.Float()
		return f
	case KindBool:
		return a.b
	case KindMapping:
		m := make(map[string]any, len(a.members))
		for _, mem := range a.members {
			m[mem.Key] = mem.Value.Interface()
		}
		return m
	case KindSequence:
		s := make([]any, len(a.items))
		for i, item := range a.items {
			s[i] = item.Interface()
		}
		return s
	}
	return nil
}

// Equal reports whether a and b hold the same JSON value. Numbers compare by
// value and mappings ignore member order.
func (a Any) Equal(b Any) bool {
	switch {
	case a.isNumber() && b.isNumber():
		if a.kind == KindInteger && b.kind == KindInteger {
			x, _ := a.Int()
			y, _ := b.Int()
			return x == y
		}
		x, _ := a.Float()
		y, _ := b.Float()
		return x == y
	case a.kind != b.kind:
		return false
	}

	switch a.kind {
	case KindString:
		return a.text == b.text
	case KindBool:
		return a.b == b.b
	case KindMapping:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Get(m.Key)
			if !ok || !m.Value.Equal(other) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !a.items[i].Equal(b.items[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// JSONKind names the JSON kind of a in the vocabulary used by KindOf.
func (a Any) JSONKind() string {
	switch a.kind {
	case KindString:
		return "string"
	case KindInteger, KindFloat:
		return "number"
	case KindBool:
		return "bool"
	case KindMapping:
		return "object"
	case KindSequence:
		return "array"
	}
	return "null"
}

func (a Any) isNumber() bool {
	return a.kind == KindInteger || a.kind == KindFloat
}

func (a Any) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	a.write(&buf)
	return buf.Bytes(), nil
}

func (a Any) write(buf *bytes.Buffer) {
	switch a.kind {
	case KindString:
		writeString(buf, a.text)
	case KindInteger, KindFloat:
		buf.WriteString(a.text)
	case KindBool:
		buf.WriteString(strconv.FormatBool(a.b))
	case KindMapping:
		buf.WriteByte('{')
		for i, m := range a.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, m.Key)
			buf.WriteByte(':')
			m.Value.write(buf)
		}
		buf.WriteByte('}')
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range a.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			item.write(buf)
		}
		buf.WriteByte(']')
	default:
		buf.WriteString("null")
	}
}

func (a *Any) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readAny(dec)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func readAny(dec *json.Decoder) (Any, error) {
	tok, err := dec.Token()
	if err != nil {
		return Any{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Any{}, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		return numberValue(t.String()), nil
	case json.Delim:
		switch t {
		case '{':
			out := Any{kind: KindMapping}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Any{}, err
				}
				key, _ := keyTok.(string)
				val, err := readAny(dec)
				if err != nil {
					return Any{}, Within(err, key)
				}
				out.members = append(out.members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Any{}, err
			}
			return out, nil
		case '[':
			out := Any{kind: KindSequence}
			for i := 0; dec.More(); i++ {
				val, err := readAny(dec)
				if err != nil {
					return Any{}, Within(err, Index(i))
				}
				out.items = append(out.items, val)
			}
			if _, err := dec.Token(); err != nil {
				return Any{}, err
			}
			return out, nil
		}
	}
	return Any{}, fmt.Errorf("wire: unexpected token %v", tok)
}

// StringOrObject is an Any restricted to two variants. An object is tried
// first, then a string; any other kind fails to decode.
type StringOrObject struct {
	Any
}

func (s StringOrObject) IsObject() bool { return s.kind == KindMapping }
func (s StringOrObject) IsString() bool { return s.kind == KindString }

func (s *StringOrObject) UnmarshalJSON(data []byte) error {
	switch kind := KindOf(data); kind {
	case "object", "string":
		return s.Any.UnmarshalJSON(data)
	default:
		return Mismatch("object or string", kind)
	}
}
