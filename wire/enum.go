package wire

import (
	"encoding/json"
	"strings"
)

// UnmarshalEnum decodes a JSON string into dst and rejects any spelling that
// is not in allowed. Schema types call it from their UnmarshalJSON methods:
//
//	func (t *LayerType) UnmarshalJSON(b []byte) error {
//		return wire.UnmarshalEnum(b, t, LayerIntGrid, LayerEntities, LayerTiles, LayerAutoLayer)
//	}
func UnmarshalEnum[E ~string](data []byte, dst *E, allowed ...E) error {
	if kind := KindOf(data); kind != "string" {
		return Mismatch(expectedEnum(allowed), kind)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, a := range allowed {
		if string(a) == s {
			*dst = a
			return nil
		}
	}
	return Mismatch(expectedEnum(allowed), `"`+s+`"`)
}

func expectedEnum[E ~string](allowed []E) string {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "one of " + strings.Join(names, "|")
}
