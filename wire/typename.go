package wire

import "strings"

// Shape is the JSON shape a declared field type predicts for its value.
type Shape uint8

const (
	ShapeRaw Shape = iota
	ShapeInt
	ShapeFloat
	ShapeBool
	ShapeString
	ShapeColor
	ShapeEnum
	ShapePoint
	ShapeTile
	ShapeEntityRef
)

var shapeNames = [...]string{
	ShapeRaw:       "any",
	ShapeInt:       "Int",
	ShapeFloat:     "Float",
	ShapeBool:      "Bool",
	ShapeString:    "String",
	ShapeColor:     "Color",
	ShapeEnum:      "Enum",
	ShapePoint:     "Point",
	ShapeTile:      "Tile",
	ShapeEntityRef: "EntityRef",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "any"
}

var shapeByBase = map[string]Shape{
	"Int":        ShapeInt,
	"Float":      ShapeFloat,
	"Bool":       ShapeBool,
	"String":     ShapeString,
	"Multilines": ShapeString,
	"FilePath":   ShapeString,
	"Color":      ShapeColor,
	"Enum":       ShapeEnum,
	"Point":      ShapePoint,
	"Tile":       ShapeTile,
	"EntityRef":  ShapeEntityRef,
}

// TypeName is a parsed field type such as "Int", "Array<Point>",
// "LocalEnum.Weapon" or the older "Enum(Weapon)".
type TypeName struct {
	Raw   string
	Base  string
	Enum  string
	Array bool
}

// ParseTypeName splits a declared type into its parts. It never fails:
// a name it does not know keeps its text in Base and maps to ShapeRaw.
func ParseTypeName(s string) TypeName {
	t := TypeName{Raw: s}
	inner := strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(inner, "Array<"); ok && strings.HasSuffix(rest, ">") {
		t.Array = true
		inner = strings.TrimSuffix(rest, ">")
	}

	switch {
	case strings.HasPrefix(inner, "Enum(") && strings.HasSuffix(inner, ")"):
		t.Base = "Enum"
		t.Enum = strings.TrimSuffix(strings.TrimPrefix(inner, "Enum("), ")")
	case strings.HasPrefix(inner, "LocalEnum."):
		t.Base = "Enum"
		t.Enum = strings.TrimPrefix(inner, "LocalEnum.")
	case strings.HasPrefix(inner, "ExternEnum."):
		t.Base = "Enum"
		t.Enum = strings.TrimPrefix(inner, "ExternEnum.")
	default:
		t.Base = inner
	}
	return t
}

func (t TypeName) Shape() Shape {
	return shapeByBase[t.Base]
}

// Check reports whether a has the JSON kind t predicts. Null is accepted at
// every position, including array items.
func (t TypeName) Check(a Any) error {
	if a.IsNull() {
		return nil
	}
	if !t.Array {
		return t.Shape().check(a)
	}
	if a.Kind() != KindSequence {
		return Mismatch("array of "+t.Shape().String(), a.JSONKind())
	}
	for i, item := range a.Items() {
		if item.IsNull() {
			continue
		}
		if err := t.Shape().check(item); err != nil {
			return Within(err, Index(i))
		}
	}
	return nil
}

func (s Shape) check(a Any) error {
	var ok bool
	switch s {
	case ShapeInt:
		ok = a.Kind() == KindInteger
	case ShapeFloat:
		ok = a.Kind() == KindInteger || a.Kind() == KindFloat
	case ShapeBool:
		ok = a.Kind() == KindBool
	case ShapeString, ShapeColor, ShapeEnum:
		ok = a.Kind() == KindString
	case ShapePoint, ShapeTile, ShapeEntityRef:
		ok = a.Kind() == KindMapping
	default:
		ok = true
	}
	if ok {
		return nil
	}
	return Mismatch(s.String(), a.JSONKind())
}
