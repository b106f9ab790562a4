package v113

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

type AllowedRefs string

const (
	RefsAny      AllowedRefs = "Any"
	RefsOnlySame AllowedRefs = "OnlySame"
	RefsOnlyTags AllowedRefs = "OnlyTags"
)

func (a *AllowedRefs) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, a, RefsAny, RefsOnlySame, RefsOnlyTags)
}

type EditorDisplayMode string

const (
	DisplayArrayCountNoLabel     EditorDisplayMode = "ArrayCountNoLabel"
	DisplayArrayCountWithLabel   EditorDisplayMode = "ArrayCountWithLabel"
	DisplayEntityTile            EditorDisplayMode = "EntityTile"
	DisplayHidden                EditorDisplayMode = "Hidden"
	DisplayNameAndValue          EditorDisplayMode = "NameAndValue"
	DisplayPointPath             EditorDisplayMode = "PointPath"
	DisplayPointPathLoop         EditorDisplayMode = "PointPathLoop"
	DisplayPointStar             EditorDisplayMode = "PointStar"
	DisplayPoints                EditorDisplayMode = "Points"
	DisplayRadiusGrid            EditorDisplayMode = "RadiusGrid"
	DisplayRadiusPx              EditorDisplayMode = "RadiusPx"
	DisplayRefLinkBetweenCenters EditorDisplayMode = "RefLinkBetweenCenters"
	DisplayRefLinkBetweenPivots  EditorDisplayMode = "RefLinkBetweenPivots"
	DisplayValueOnly             EditorDisplayMode = "ValueOnly"
)

func (m *EditorDisplayMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, m,
		DisplayArrayCountNoLabel, DisplayArrayCountWithLabel, DisplayEntityTile, DisplayHidden,
		DisplayNameAndValue, DisplayPointPath, DisplayPointPathLoop, DisplayPointStar, DisplayPoints,
		DisplayRadiusGrid, DisplayRadiusPx, DisplayRefLinkBetweenCenters, DisplayRefLinkBetweenPivots,
		DisplayValueOnly)
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

type TextLanguageMode string

const (
	LangC        TextLanguageMode = "LangC"
	LangHaxe     TextLanguageMode = "LangHaxe"
	LangJS       TextLanguageMode = "LangJS"
	LangJSON     TextLanguageMode = "LangJson"
	LangLog      TextLanguageMode = "LangLog"
	LangLua      TextLanguageMode = "LangLua"
	LangMarkdown TextLanguageMode = "LangMarkdown"
	LangPython   TextLanguageMode = "LangPython"
	LangRuby     TextLanguageMode = "LangRuby"
	LangXML      TextLanguageMode = "LangXml"
)

func (m *TextLanguageMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, m,
		LangC, LangHaxe, LangJS, LangJSON, LangLog, LangLua, LangMarkdown, LangPython, LangRuby, LangXML)
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
	TileCover             TileRenderMode = "Cover"
	TileFitInside         TileRenderMode = "FitInside"
	TileFullSizeCropped   TileRenderMode = "FullSizeCropped"
	TileFullSizeUncropped TileRenderMode = "FullSizeUncropped"
	TileNineSlice         TileRenderMode = "NineSlice"
	TileRepeat            TileRenderMode = "Repeat"
	TileStretch           TileRenderMode = "Stretch"
)

func (t *TileRenderMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, t,
		TileCover, TileFitInside, TileFullSizeCropped, TileFullSizeUncropped, TileNineSlice, TileRepeat, TileStretch)
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

// EmbedAtlas names an atlas bundled with the editor rather than a file on disk.
type EmbedAtlas string

const AtlasLdtkIcons EmbedAtlas = "LdtkIcons"

func (e *EmbedAtlas) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, e, AtlasLdtkIcons)
}

type Flag string

const (
	FlagDiscardPreCsvIntGrid         Flag = "DiscardPreCsvIntGrid"
	FlagExportPreCsvIntGridFormat    Flag = "ExportPreCsvIntGridFormat"
	FlagIgnoreBackupSuggest          Flag = "IgnoreBackupSuggest"
	FlagMultiWorlds                  Flag = "MultiWorlds"
	FlagPrependIndexToLevelFileNames Flag = "PrependIndexToLevelFileNames"
	FlagUseMultilinesType            Flag = "UseMultilinesType"
)

func (f *Flag) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, f,
		FlagDiscardPreCsvIntGrid, FlagExportPreCsvIntGridFormat, FlagIgnoreBackupSuggest,
		FlagMultiWorlds, FlagPrependIndexToLevelFileNames, FlagUseMultilinesType)
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

type IdentifierStyle string

const (
	IdentCapitalize IdentifierStyle = "Capitalize"
	IdentFree       IdentifierStyle = "Free"
	IdentLowercase  IdentifierStyle = "Lowercase"
	IdentUppercase  IdentifierStyle = "Uppercase"
)

func (s *IdentifierStyle) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, s, IdentCapitalize, IdentFree, IdentLowercase, IdentUppercase)
}

type ImageExportMode string

const (
	ExportLayersAndLevels  ImageExportMode = "LayersAndLevels"
	ExportNone             ImageExportMode = "None"
	ExportOneImagePerLayer ImageExportMode = "OneImagePerLayer"
	ExportOneImagePerLevel ImageExportMode = "OneImagePerLevel"
)

func (m *ImageExportMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, m, ExportLayersAndLevels, ExportNone, ExportOneImagePerLayer, ExportOneImagePerLevel)
}
