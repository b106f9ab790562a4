package v063

import (
	"fmt"

	"github.com/milk9111/ldtk/wire"
)

// Decode parses a root project document. Nothing is returned unless the whole
// document fits the schema.
func Decode(data []byte) (*Project, error) {
	var p Project
	if err := wire.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("v063: decode project: %w", err)
	}
	return &p, nil
}

// DecodeLevel parses a standalone level document.
func DecodeLevel(data []byte) (*Level, error) {
	var l Level
	if err := wire.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("v063: decode level: %w", err)
	}
	return &l, nil
}

func Encode(p *Project) ([]byte, error) {
	b, err := wire.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("v063: encode project: %w", err)
	}
	return b, nil
}

func EncodeLevel(l *Level) ([]byte, error) {
	b, err := wire.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("v063: encode level: %w", err)
	}
	return b, nil
}
