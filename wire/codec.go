package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Extra holds object members that a struct does not declare. A struct opts in
// by carrying an exported field of this type; the codec fills it on decode
// and writes it back, sorted by key, after the declared members on encode.
type Extra map[string]json.RawMessage

// Typed is implemented by values whose JSON shape depends on a sibling
// string member. The sibling is named with a `wire:"by=<key>"` struct tag.
type Typed interface {
	UnmarshalTyped(data []byte, typeName string) error
}

var (
	extraType    = reflect.TypeOf(Extra(nil))
	optionalType = reflect.TypeOf((*optional)(nil)).Elem()
	anyType      = reflect.TypeOf(Any{})
)

type fieldInfo struct {
	index    int
	name     string
	optional bool
	extra    bool
	by       string
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Type == extraType {
			fields = append(fields, fieldInfo{index: i, extra: true})
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fi := fieldInfo{
			index:    i,
			name:     name,
			optional: reflect.PointerTo(sf.Type).Implements(optionalType),
		}
		if by, ok := strings.CutPrefix(sf.Tag.Get("wire"), "by="); ok {
			fi.by = by
		}
		fields = append(fields, fi)
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]fieldInfo)
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
//
// Every struct member that is not a Field is required. Ints are strict: a
// fractional or exponent literal for an integer slot is a SchemaError.
// Malformed input is reported as a *SyntaxError before any decoding starts,
// so v is never touched by a document that is not JSON.
func Unmarshal(data []byte, v any) error {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return newSyntaxError(data, se.Offset, se.Error())
		}
		return err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("wire: Unmarshal(non-pointer %T)", v)
	}
	return decode(raw, rv.Elem(), "", false)
}

// KindOf names the JSON kind of a raw value: object, array, string, number,
// bool, null, or empty for blank input.
func KindOf(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "empty"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func decodeOptional(raw []byte, o optional, typeName string, typed bool) error {
	if KindOf(raw) == "null" {
		o.setState(StateNull)
		return nil
	}
	if err := decode(raw, reflect.ValueOf(o.slot()).Elem(), typeName, typed); err != nil {
		return err
	}
	o.setState(StatePresent)
	return nil
}

func decode(raw []byte, v reflect.Value, typeName string, typed bool) error {
	if v.CanAddr() {
		p := v.Addr().Interface()
		if o, ok := p.(optional); ok {
			return decodeOptional(raw, o, typeName, typed)
		}
		if typed {
			if t, ok := p.(Typed); ok {
				return t.UnmarshalTyped(raw, typeName)
			}
		}
		if u, ok := p.(json.Unmarshaler); ok {
			return u.UnmarshalJSON(raw)
		}
	}

	raw = bytes.TrimSpace(raw)
	kind := KindOf(raw)

	switch v.Kind() {
	case reflect.Struct:
		return decodeStruct(raw, v)

	case reflect.Slice:
		if kind != "array" {
			return Mismatch("array", kind)
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		s := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			if err := decode(item, s.Index(i), "", false); err != nil {
				return Within(err, Index(i))
			}
		}
		v.Set(s)

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("wire: unsupported map key %s", v.Type().Key())
		}
		if kind != "object" {
			return Mismatch("object", kind)
		}
		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return err
		}
		m := reflect.MakeMapWithSize(v.Type(), len(members))
		for k, item := range members {
			elem := reflect.New(v.Type().Elem()).Elem()
			if err := decode(item, elem, "", false); err != nil {
				return Within(err, k)
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), elem)
		}
		v.Set(m)

	case reflect.String:
		if kind != "string" {
			return Mismatch("string", kind)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		v.SetString(s)

	case reflect.Bool:
		if kind != "bool" {
			return Mismatch("bool", kind)
		}
		v.SetBool(raw[0] == 't')

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if kind != "number" {
			return Mismatch("integer", kind)
		}
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil || v.OverflowInt(n) {
			return Mismatch("integer", "number "+string(raw))
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if kind != "number" {
			return Mismatch("unsigned integer", kind)
		}
		n, err := strconv.ParseUint(string(raw), 10, 64)
		if err != nil || v.OverflowUint(n) {
			return Mismatch("unsigned integer", "number "+string(raw))
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		if kind != "number" {
			return Mismatch("number", kind)
		}
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return Mismatch("number", "number "+string(raw))
		}
		v.SetFloat(f)

	case reflect.Pointer:
		if kind == "null" {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		ptr := reflect.New(v.Type().Elem())
		if err := decode(raw, ptr.Elem(), typeName, typed); err != nil {
			return err
		}
		v.Set(ptr)

	case reflect.Interface:
		var x any
		if err := json.Unmarshal(raw, &x); err != nil {
			return err
		}
		if x == nil {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		v.Set(reflect.ValueOf(x))

	default:
		return fmt.Errorf("wire: unsupported type %s", v.Type())
	}
	return nil
}

func decodeStruct(raw []byte, v reflect.Value) error {
	if kind := KindOf(raw); kind != "object" {
		return Mismatch("object", kind)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return err
	}

	fields := fieldsOf(v.Type())
	known := make(map[string]struct{}, len(fields))
	extra := -1
	for _, fi := range fields {
		if fi.extra {
			extra = fi.index
			continue
		}
		known[fi.name] = struct{}{}

		fv := v.Field(fi.index)
		item, ok := members[fi.name]
		if !ok {
			if fi.optional {
				fv.Set(reflect.Zero(fv.Type()))
				continue
			}
			return &SchemaError{Path: []string{fi.name}, Expected: describe(fv.Type()), Actual: "missing"}
		}

		var typeName string
		if fi.by != "" {
			if sibling, ok := members[fi.by]; ok {
				_ = json.Unmarshal(sibling, &typeName)
			}
		}
		if err := decode(item, fv, typeName, fi.by != ""); err != nil {
			return Within(err, fi.name)
		}
	}

	if extra >= 0 {
		var rest Extra
		for k, item := range members {
			if _, ok := known[k]; ok {
				continue
			}
			if rest == nil {
				rest = make(Extra)
			}
			rest[k] = item
		}
		v.Field(extra).Set(reflect.ValueOf(rest))
	}
	return nil
}

// describe names the JSON shape expected for t in error messages.
func describe(t reflect.Type) string {
	if t == anyType {
		return "any value"
	}
	switch t.Kind() {
	case reflect.Struct:
		return "object"
	case reflect.Slice:
		return "array"
	case reflect.Map:
		return "object"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Pointer:
		return describe(t.Elem())
	default:
		return "value"
	}
}

// Marshal encodes v as compact JSON. Struct members come out in declaration
// order with absent Fields skipped and Extra members appended.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v reflect.Value) error {
	if !v.IsValid() {
		buf.WriteString("null")
		return nil
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		buf.WriteString("null")
		return nil
	}
	if v.Kind() != reflect.Pointer && !v.CanAddr() {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p.Elem()
	}

	var p any
	if v.Kind() == reflect.Pointer {
		p = v.Interface()
	} else {
		p = v.Addr().Interface()
	}
	if o, ok := p.(optional); ok {
		if o.fieldState() != StatePresent {
			buf.WriteString("null")
			return nil
		}
		return encode(buf, reflect.ValueOf(o.slot()).Elem())
	}
	if m, ok := p.(json.Marshaler); ok {
		b, err := m.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer:
		return encode(buf, v.Elem())

	case reflect.Struct:
		return encodeStruct(buf, v)

	case reflect.Slice:
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, v.Index(i)); err != nil {
				return Within(err, Index(i))
			}
		}
		buf.WriteByte(']')

	case reflect.Map:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			if err := encode(buf, v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key()))); err != nil {
				return Within(err, k)
			}
		}
		buf.WriteByte('}')

	case reflect.String:
		writeString(buf, v.String())

	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return err
		}
		buf.Write(b)

	case reflect.Interface:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encode(buf, v.Elem())

	default:
		return fmt.Errorf("wire: unsupported type %s", v.Type())
	}
	return nil
}

func encodeStruct(buf *bytes.Buffer, v reflect.Value) error {
	buf.WriteByte('{')
	first := true
	sep := func() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
	}

	var extra Extra
	for _, fi := range fieldsOf(v.Type()) {
		fv := v.Field(fi.index)
		if fi.extra {
			extra = fv.Interface().(Extra)
			continue
		}
		if fi.optional && fv.Addr().Interface().(optional).fieldState() == StateAbsent {
			continue
		}
		sep()
		writeString(buf, fi.name)
		buf.WriteByte(':')
		if err := encode(buf, fv); err != nil {
			return Within(err, fi.name)
		}
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sep()
		writeString(buf, k)
		buf.WriteByte(':')
		buf.Write(extra[k])
	}

	buf.WriteByte('}')
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1) // trailing newline
}
