// Package v092 models project files written by the LDtk 0.9 editor series,
// the first revision with CSV int grids and level custom fields.
package v092

import "github.com/milk9111/ldtk/wire"

const JSONVersion = "0.9.2"

type Project struct {
	BackupLimit         int                `json:"backupLimit"`
	BackupOnSave        bool               `json:"backupOnSave"`
	BgColor             string             `json:"bgColor"`
	DefaultGridSize     int                `json:"defaultGridSize"`
	DefaultLevelBgColor string             `json:"defaultLevelBgColor"`
	DefaultLevelHeight  int                `json:"defaultLevelHeight"`
	DefaultLevelWidth   int                `json:"defaultLevelWidth"`
	DefaultPivotX       float64            `json:"defaultPivotX"`
	DefaultPivotY       float64            `json:"defaultPivotY"`
	Defs                Definitions        `json:"defs"`
	ExportPNG           bool               `json:"exportPng"`
	ExportTiled         bool               `json:"exportTiled"`
	ExternalLevels      bool               `json:"externalLevels"`
	Flags               []Flag             `json:"flags"`
	JSONVersion         string             `json:"jsonVersion"`
	LevelNamePattern    string             `json:"levelNamePattern"`
	Levels              []Level            `json:"levels"`
	MinifyJSON          bool               `json:"minifyJson"`
	NextUID             int                `json:"nextUid"`
	PNGFilePattern      wire.Field[string] `json:"pngFilePattern"`
	WorldGridHeight     int                `json:"worldGridHeight"`
	WorldGridWidth      int                `json:"worldGridWidth"`
	WorldLayout         WorldLayout        `json:"worldLayout"`
	Extra               wire.Extra         `json:"-"`
}

type Definitions struct {
	Entities      []EntityDefinition  `json:"entities"`
	Enums         []EnumDefinition    `json:"enums"`
	ExternalEnums []EnumDefinition    `json:"externalEnums"`
	Layers        []LayerDefinition   `json:"layers"`
	LevelFields   []FieldDefinition   `json:"levelFields"`
	Tilesets      []TilesetDefinition `json:"tilesets"`
	Extra         wire.Extra          `json:"-"`
}

func (p *Project) Tileset(uid int) (*TilesetDefinition, bool) {
	for i := range p.Defs.Tilesets {
		if p.Defs.Tilesets[i].UID == uid {
			return &p.Defs.Tilesets[i], true
		}
	}
	return nil, false
}

func (p *Project) LayerDef(uid int) (*LayerDefinition, bool) {
	for i := range p.Defs.Layers {
		if p.Defs.Layers[i].UID == uid {
			return &p.Defs.Layers[i], true
		}
	}
	return nil, false
}

func (p *Project) EntityDef(uid int) (*EntityDefinition, bool) {
	for i := range p.Defs.Entities {
		if p.Defs.Entities[i].UID == uid {
			return &p.Defs.Entities[i], true
		}
	}
	return nil, false
}

// Enum searches local enums first, then external ones.
func (p *Project) Enum(uid int) (*EnumDefinition, bool) {
	for _, list := range [][]EnumDefinition{p.Defs.Enums, p.Defs.ExternalEnums} {
		for i := range list {
			if list[i].UID == uid {
				return &list[i], true
			}
		}
	}
	return nil, false
}

// LevelField looks up one of the project-wide level field definitions.
func (p *Project) LevelField(uid int) (*FieldDefinition, bool) {
	for i := range p.Defs.LevelFields {
		if p.Defs.LevelFields[i].UID == uid {
			return &p.Defs.LevelFields[i], true
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
