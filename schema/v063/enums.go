package v063

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
	DisplayEntityTile   EditorDisplayMode = "EntityTile"
	DisplayHidden       EditorDisplayMode = "Hidden"
	DisplayNameAndValue EditorDisplayMode = "NameAndValue"
	DisplayPointPath    EditorDisplayMode = "PointPath"
	DisplayPointStar    EditorDisplayMode = "PointStar"
	DisplayRadiusGrid   EditorDisplayMode = "RadiusGrid"
	DisplayRadiusPx     EditorDisplayMode = "RadiusPx"
	DisplayValueOnly    EditorDisplayMode = "ValueOnly"
)

func (m *EditorDisplayMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, m,
		DisplayEntityTile, DisplayHidden, DisplayNameAndValue, DisplayPointPath,
		DisplayPointStar, DisplayRadiusGrid, DisplayRadiusPx, DisplayValueOnly)
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

type LimitBehavior string

const (
	LimitDiscardOldOnes LimitBehavior = "DiscardOldOnes"
	LimitMoveLastOne    LimitBehavior = "MoveLastOne"
	LimitPreventAdding  LimitBehavior = "PreventAdding"
)

func (l *LimitBehavior) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, l, LimitDiscardOldOnes, LimitMoveLastOne, LimitPreventAdding)
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
	TileCrop    TileRenderMode = "Crop"
	TileStretch TileRenderMode = "Stretch"
)

func (t *TileRenderMode) UnmarshalJSON(b []byte) error {
	return wire.UnmarshalEnum(b, t, TileCrop, TileStretch)
}
