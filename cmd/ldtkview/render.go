package main

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ldtk/levels"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
)

// tilesetCache loads tileset images relative to the project directory.
// Images that fail to load are remembered as nil so they are not retried
// every frame.
type tilesetCache struct {
	dir    string
	images map[string]*ebiten.Image
	log    zerolog.Logger
}

func newTilesetCache(dir string, log zerolog.Logger) *tilesetCache {
	return &tilesetCache{dir: dir, images: make(map[string]*ebiten.Image), log: log}
}

func (c *tilesetCache) get(relPath string) *ebiten.Image {
	if relPath == "" {
		return nil
	}
	if img, ok := c.images[relPath]; ok {
		return img
	}
	img, err := loadImage(filepath.Join(c.dir, filepath.FromSlash(relPath)))
	if err != nil {
		c.log.Warn().Err(err).Str("tileset", relPath).Msg("tileset image unavailable")
	}
	c.images[relPath] = img
	return img
}

func loadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// drawLevel paints lvl onto dst. LDtk lists layers top-most first, so they
// are drawn back to front.
func drawLevel(dst *ebiten.Image, lvl *levels.Level, defs *levels.Defs, bg color.NRGBA, tilesets *tilesetCache) {
	dst.Fill(bg)
	for i := len(lvl.Layers) - 1; i >= 0; i-- {
		layer := &lvl.Layers[i]
		if !layer.Visible {
			continue
		}
		drawTiles(dst, layer, defs, tilesets)
		if layer.Kind == levels.IntGrid {
			drawIntGrid(dst, layer, defs)
		}
		drawEntities(dst, layer, defs)
	}
}

func drawTiles(dst *ebiten.Image, layer *levels.Layer, defs *levels.Defs, tilesets *tilesetCache) {
	if len(layer.Tiles) == 0 {
		return
	}
	size := layer.GridSize
	relPath := layer.TilesetRelPath
	if ts, ok := defs.Tileset(layer.TilesetUID); ok {
		size = ts.TileGridSize
		if relPath == "" {
			relPath = ts.RelPath
		}
	}
	sheet := tilesets.get(relPath)

	for _, t := range layer.Tiles {
		x := float32(t.Px.X + layer.OffsetX)
		y := float32(t.Px.Y + layer.OffsetY)
		if sheet == nil {
			vector.FillRect(dst, x, y, float32(size), float32(size), colornames.Gray, false)
			continue
		}
		src := image.Rect(t.Src.X, t.Src.Y, t.Src.X+size, t.Src.Y+size)
		op := &ebiten.DrawImageOptions{}
		sx, sy := 1.0, 1.0
		if t.FlipX {
			sx = -1
			op.GeoM.Translate(-float64(size), 0)
		}
		if t.FlipY {
			sy = -1
			op.GeoM.Translate(0, -float64(size))
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		dst.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
	}
}

func drawIntGrid(dst *ebiten.Image, layer *levels.Layer, defs *levels.Defs) {
	def, _ := defs.LayerDef(layer.DefUID)
	size := float32(layer.GridSize)
	for cy := 0; cy < layer.CHei; cy++ {
		for cx := 0; cx < layer.CWid; cx++ {
			v := layer.IntGridAt(cx, cy)
			if v == 0 {
				continue
			}
			var c color.Color = colornames.Magenta
			if def != nil {
				if value, ok := def.IntGridValue(v); ok {
					c = value.Color
				}
			}
			x := float32(cx*layer.GridSize + layer.OffsetX)
			y := float32(cy*layer.GridSize + layer.OffsetY)
			vector.FillRect(dst, x, y, size, size, withAlpha(c, layer.Opacity), false)
		}
	}
}

func drawEntities(dst *ebiten.Image, layer *levels.Layer, defs *levels.Defs) {
	for _, e := range layer.Entities {
		var c color.Color = colornames.Yellow
		if def, ok := defs.EntityDef(e.DefUID); ok {
			c = def.Color
		}
		r := e.Bounds().Add(image.Pt(layer.OffsetX, layer.OffsetY))
		vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), withAlpha(c, 0.25), false)
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * alpha)
	return n
}
