// Package v063 models project files written by the LDtk 0.6 editor series.
//
// Optional keys are wire.Field values so a missing key and an explicit null
// stay distinguishable. Keys the editor added after this revision survive a
// decode/encode cycle through the Extra member of each struct.
package v063

import "github.com/milk9111/ldtk/wire"

// JSONVersion is the jsonVersion this revision was captured from.
const JSONVersion = "0.6.3"

type Project struct {
	BgColor             string                  `json:"bgColor"`
	DefaultGridSize     int                     `json:"defaultGridSize"`
	DefaultLevelBgColor string                  `json:"defaultLevelBgColor"`
	DefaultPivotX       float64                 `json:"defaultPivotX"`
	DefaultPivotY       float64                 `json:"defaultPivotY"`
	Defs                wire.Field[Definitions] `json:"defs"`
	ExportTiled         bool                    `json:"exportTiled"`
	ExternalLevels      bool                    `json:"externalLevels"`
	JSONVersion         string                  `json:"jsonVersion"`
	Levels              []Level                 `json:"levels"`
	MinifyJSON          bool                    `json:"minifyJson"`
	NextUID             int                     `json:"nextUid"`
	WorldGridHeight     int                     `json:"worldGridHeight"`
	WorldGridWidth      int                     `json:"worldGridWidth"`
	WorldLayout         wire.Field[WorldLayout] `json:"worldLayout"`
	Extra               wire.Extra              `json:"-"`
}

// Definitions is the catalog every instance refers to by uid.
type Definitions struct {
	Entities      []EntityDefinition  `json:"entities"`
	Enums         []EnumDefinition    `json:"enums"`
	ExternalEnums []EnumDefinition    `json:"externalEnums"`
	Layers        []LayerDefinition   `json:"layers"`
	Tilesets      []TilesetDefinition `json:"tilesets"`
	Extra         wire.Extra          `json:"-"`
}

// Tileset looks up a tileset definition. Projects without a defs block
// never find anything.
func (p *Project) Tileset(uid int) (*TilesetDefinition, bool) {
	defs := p.Defs.Ptr()
	if defs == nil {
		return nil, false
	}
	for i := range defs.Tilesets {
		if defs.Tilesets[i].UID == uid {
			return &defs.Tilesets[i], true
		}
	}
	return nil, false
}

func (p *Project) LayerDef(uid int) (*LayerDefinition, bool) {
	defs := p.Defs.Ptr()
	if defs == nil {
		return nil, false
	}
	for i := range defs.Layers {
		if defs.Layers[i].UID == uid {
			return &defs.Layers[i], true
		}
	}
	return nil, false
}

func (p *Project) EntityDef(uid int) (*EntityDefinition, bool) {
	defs := p.Defs.Ptr()
	if defs == nil {
		return nil, false
	}
	for i := range defs.Entities {
		if defs.Entities[i].UID == uid {
			return &defs.Entities[i], true
		}
	}
	return nil, false
}

// Enum searches local enums first, then external ones.
func (p *Project) Enum(uid int) (*EnumDefinition, bool) {
	defs := p.Defs.Ptr()
	if defs == nil {
		return nil, false
	}
	for _, list := range [][]EnumDefinition{defs.Enums, defs.ExternalEnums} {
		for i := range list {
			if list[i].UID == uid {
				return &list[i], true
			}
		}
	}
	return nil, false
}

func (p *Project) Level(uid int) (*Level, bool) {
	for i := range p.Levels {
		if p.Levels[i].UID == uid {
			return &p.Levels[i], true
		}
	}
	return nil, false
}

func (p *Project) LevelByIdentifier(identifier string) (*Level, bool) {
	for i := range p.Levels {
		if p.Levels[i].Identifier == identifier {
			return &p.Levels[i], true
		}
	}
	return nil, false
}
