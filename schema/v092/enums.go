package v092

import "github.com/milk9111/ldtk/wire"

type LayerType string

const (
	LayerAutoLayer LayerType = "AutoLayer"
	LayerEntities  LayerType = "Entities"
	LayerIntGrid   LayerType = "IntGrid"
	LayerTiles     LayerType = "Tiles"
)

func (t *LayerType) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, t, LayerAutoLayer, LayerEntities, LayerIntGrid, LayerTiles)
}

type WorldLayout string

const (
	WorldFree             WorldLayout = "Free"
	WorldGridVania        WorldLayout = "GridVania"
	WorldLinearHorizontal WorldLayout = "LinearHorizontal"
	WorldLinearVertical   WorldLayout = "LinearVertical"
)

func (w *WorldLayout) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, w, WorldFree, WorldGridVania, WorldLinearHorizontal, WorldLinearVertical)
}

type EditorDisplayMode string

const (
	DisplayEntityTile    EditorDisplayMode = "EntityTile"
	DisplayHidden        EditorDisplayMode = "Hidden"
	DisplayNameAndValue  EditorDisplayMode = "NameAndValue"
	DisplayPointPath     EditorDisplayMode = "PointPath"
	DisplayPointPathLoop EditorDisplayMode = "PointPathLoop"
	DisplayPointStar     EditorDisplayMode = "PointStar"
	DisplayPoints        EditorDisplayMode = "Points"
	DisplayRadiusGrid    EditorDisplayMode = "RadiusGrid"
	DisplayRadiusPx      EditorDisplayMode = "RadiusPx"
	DisplayValueOnly     EditorDisplayMode = "ValueOnly"
)

func (m *EditorDisplayMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, m,
		DisplayEntityTile, DisplayHidden, DisplayNameAndValue, DisplayPointPath, DisplayPointPathLoop,
		DisplayPointStar, DisplayPoints, DisplayRadiusGrid, DisplayRadiusPx, DisplayValueOnly)
}

type EditorDisplayPos string

const (
	PosAbove   EditorDisplayPos = "Above"
	PosBeneath EditorDisplayPos = "Beneath"
	PosCenter  EditorDisplayPos = "Center"
)

func (p *EditorDisplayPos) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, p, PosAbove, PosBeneath, PosCenter)
}

// TextLangageMode keeps the editor's own spelling of the key it is stored under.
type TextLangageMode string

const (
	LangC        TextLangageMode = "LangC"
	LangHaxe     TextLangageMode = "LangHaxe"
	LangJS       TextLangageMode = "LangJS"
	LangJSON     TextLangageMode = "LangJson"
	LangLua      TextLangageMode = "LangLua"
	LangMarkdown TextLangageMode = "LangMarkdown"
	LangPython   TextLangageMode = "LangPython"
	LangRuby     TextLangageMode = "LangRuby"
	LangXML      TextLangageMode = "LangXml"
)

func (m *TextLangageMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, m,
		LangC, LangHaxe, LangJS, LangJSON, LangLua, LangMarkdown, LangPython, LangRuby, LangXML)
}

type LimitBehavior string

const (
	LimitDiscardOldOnes LimitBehavior = "DiscardOldOnes"
	LimitMoveLastOne    LimitBehavior = "MoveLastOne"
	LimitPreventAdding  LimitBehavior = "PreventAdding"
)

func (l *LimitBehavior) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, l, LimitDiscardOldOnes, LimitMoveLastOne, LimitPreventAdding)
}

type LimitScope string

const (
	ScopePerLayer LimitScope = "PerLayer"
	ScopePerLevel LimitScope = "PerLevel"
	ScopePerWorld LimitScope = "PerWorld"
)

func (l *LimitScope) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, l, ScopePerLayer, ScopePerLevel, ScopePerWorld)
}

type RenderMode string

const (
	RenderCross     RenderMode = "Cross"
	RenderEllipse   RenderMode = "Ellipse"
	RenderRectangle RenderMode = "Rectangle"
	RenderTile      RenderMode = "Tile"
)

func (r *RenderMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, r, RenderCross, RenderEllipse, RenderRectangle, RenderTile)
}

type TileRenderMode string

const (
	TileCover     TileRenderMode = "Cover"
	TileFitInside TileRenderMode = "FitInside"
	TileRepeat    TileRenderMode = "Repeat"
	TileStretch   TileRenderMode = "Stretch"
)

func (t *TileRenderMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, t, TileCover, TileFitInside, TileRepeat, TileStretch)
}

type Checker string

const (
	CheckerHorizontal Checker = "Horizontal"
	CheckerNone       Checker = "None"
	CheckerVertical   Checker = "Vertical"
)

func (c *Checker) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, c, CheckerHorizontal, CheckerNone, CheckerVertical)
}

type TileMode string

const (
	TileModeSingle TileMode = "Single"
	TileModeStamp  TileMode = "Stamp"
)

func (t *TileMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, t, TileModeSingle, TileModeStamp)
}

type Flag string

const (
	FlagDiscardPreCsvIntGrid Flag = "DiscardPreCsvIntGrid"
	FlagIgnoreBackupSuggest  Flag = "IgnoreBackupSuggest"
)

func (f *Flag) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, f, FlagDiscardPreCsvIntGrid, FlagIgnoreBackupSuggest)
}

type BgPos string

const (
	BgContain    BgPos = "Contain"
	BgCover      BgPos = "Cover"
	BgCoverDirty BgPos = "CoverDirty"
	BgUnscaled   BgPos = "Unscaled"
)

func (p *BgPos) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, p, BgContain, BgCover, BgCoverDirty, BgUnscaled)
}
