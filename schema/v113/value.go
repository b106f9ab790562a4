package v113

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/milk9111/ldtk/wire"
)

// ValueKind identifies which variant a FieldValue holds.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueString
	ValueColor
	ValueEnum
	ValuePoint
	ValueTile
	ValueEntityRef
	ValueArray
	ValueRaw
)

var valueKindNames = [...]string{
	ValueNull:      "Null",
	ValueInt:       "Int",
	ValueFloat:     "Float",
	ValueBool:      "Bool",
	ValueString:    "String",
	ValueColor:     "Color",
	ValueEnum:      "Enum",
	ValuePoint:     "Point",
	ValueTile:      "Tile",
	ValueEntityRef: "EntityRef",
	ValueArray:     "Array",
	ValueRaw:       "Raw",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "Raw"
}

// FieldValue is the __value of a field instance, shaped by the sibling
// __type. Types the package does not know are kept as Raw.
type FieldValue struct {
	kind  ValueKind
	n     int
	f     float64
	b     bool
	s     string
	point FieldInstanceGridPoint
	tile  TilesetRectangle
	ref   FieldInstanceEntityReference
	items []FieldValue
	raw   wire.Any
}

func (v FieldValue) Kind() ValueKind     { return v.kind }
func (v FieldValue) IsNull() bool        { return v.kind == ValueNull }
func (v FieldValue) Items() []FieldValue { return v.items }

func (v FieldValue) Int() (int, bool)       { return v.n, v.kind == ValueInt }
func (v FieldValue) Float() (float64, bool) { return v.f, v.kind == ValueFloat }
func (v FieldValue) Bool() (bool, bool)     { return v.b, v.kind == ValueBool }
func (v FieldValue) Str() (string, bool)    { return v.s, v.kind == ValueString }
func (v FieldValue) Color() (string, bool)  { return v.s, v.kind == ValueColor }
func (v FieldValue) Enum() (string, bool)   { return v.s, v.kind == ValueEnum }
func (v FieldValue) Raw() (wire.Any, bool)  { return v.raw, v.kind == ValueRaw }

func (v FieldValue) Point() (FieldInstanceGridPoint, bool) {
	return v.point, v.kind == ValuePoint
}

func (v FieldValue) Tile() (TilesetRectangle, bool) {
	return v.tile, v.kind == ValueTile
}

func (v FieldValue) EntityRef() (FieldInstanceEntityReference, bool) {
	return v.ref, v.kind == ValueEntityRef
}

// UnmarshalTyped decodes data as the field type named by typeName, such as
// "Int", "Array<Point>" or "LocalEnum.Weapon". null is accepted for every
// type and yields ValueNull.
func (v *FieldValue) UnmarshalTyped(data []byte, typeName string) error {
	out, err := decodeValue(data, wire.ParseTypeName(typeName))
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// UnmarshalJSON decodes without a type and always produces Raw or Null.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	return v.UnmarshalTyped(data, "")
}

func decodeValue(data []byte, tn wire.TypeName) (FieldValue, error) {
	var a wire.Any
	if err := wire.Unmarshal(data, &a); err != nil {
		return FieldValue{}, err
	}
	if err := tn.Check(a); err != nil {
		return FieldValue{}, err
	}
	if a.IsNull() {
		return FieldValue{}, nil
	}

	if tn.Array {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return FieldValue{}, err
		}
		elem := tn
		elem.Array = false
		out := FieldValue{kind: ValueArray, items: make([]FieldValue, len(items))}
		for i, item := range items {
			fv, err := decodeValue(item, elem)
			if err != nil {
				return FieldValue{}, wire.Within(err, wire.Index(i))
			}
			out.items[i] = fv
		}
		return out, nil
	}

	switch tn.Shape() {
	case wire.ShapeInt:
		n, _ := a.Int()
		return FieldValue{kind: ValueInt, n: int(n)}, nil
	case wire.ShapeFloat:
		f, _ := a.Float()
		return FieldValue{kind: ValueFloat, f: f}, nil
	case wire.ShapeBool:
		b, _ := a.Bool()
		return FieldValue{kind: ValueBool, b: b}, nil
	case wire.ShapeString:
		s, _ := a.Str()
		return FieldValue{kind: ValueString, s: s}, nil
	case wire.ShapeColor:
		s, _ := a.Str()
		return FieldValue{kind: ValueColor, s: s}, nil
	case wire.ShapeEnum:
		s, _ := a.Str()
		return FieldValue{kind: ValueEnum, s: s}, nil
	case wire.ShapePoint:
		out := FieldValue{kind: ValuePoint}
		if err := wire.Unmarshal(data, &out.point); err != nil {
			return FieldValue{}, err
		}
		return out, nil
	case wire.ShapeTile:
		out := FieldValue{kind: ValueTile}
		if err := wire.Unmarshal(data, &out.tile); err != nil {
			return FieldValue{}, err
		}
		return out, nil
	case wire.ShapeEntityRef:
		out := FieldValue{kind: ValueEntityRef}
		if err := wire.Unmarshal(data, &out.ref); err != nil {
			return FieldValue{}, err
		}
		return out, nil
	default:
		return FieldValue{kind: ValueRaw, raw: a}, nil
	}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueInt:
		return strconv.AppendInt(nil, int64(v.n), 10), nil
	case ValueFloat:
		return json.Marshal(v.f)
	case ValueBool:
		return strconv.AppendBool(nil, v.b), nil
	case ValueString, ValueColor, ValueEnum:
		return wire.Marshal(v.s)
	case ValuePoint:
		return wire.Marshal(&v.point)
	case ValueTile:
		return wire.Marshal(&v.tile)
	case ValueEntityRef:
		return wire.Marshal(&v.ref)
	case ValueRaw:
		return v.raw.MarshalJSON()
	case ValueArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}
