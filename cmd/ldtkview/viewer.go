package main

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ldtk"
	"github.com/milk9111/ldtk/config"
	"github.com/milk9111/ldtk/levels"
	"github.com/milk9111/ldtk/watch"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/gofont/goregular"
)

const hudHeight = 20

// Viewer shows one level at a time. External levels are read the first time
// they are shown.
type Viewer struct {
	project *ldtk.Project
	view    *levels.Project
	index   int

	// resolved holds external levels already merged with their files.
	resolved map[int]levels.Level
	tilesets *tilesetCache
	canvas   *ebiten.Image
	redraw   ldtk.RedrawState
	reloads  <-chan watch.Reload

	hud   text.Face
	panel *levelPanel
	// clipboardOK is false when the platform clipboard could not be opened.
	clipboardOK bool

	cfg    config.ViewConfig
	log    zerolog.Logger
	status string
}

func NewViewer(p *ldtk.Project, cfg config.ViewConfig, log zerolog.Logger) (*Viewer, error) {
	v := &Viewer{cfg: cfg, log: log}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ldtkview: load font: %w", err)
	}
	v.hud = &text.GoTextFace{Source: s, Size: 14}

	if err := clipboard.Init(); err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable")
	} else {
		v.clipboardOK = true
	}

	if cfg.Scale <= 0 {
		v.cfg.Scale = 1
	}
	if err := v.setProject(p); err != nil {
		return nil, err
	}
	if cfg.Level != "" {
		for i, lvl := range v.view.Levels {
			if lvl.Identifier == cfg.Level {
				v.index = i
			}
		}
	}

	v.panel = newLevelPanel(&v.hud, v.selectLevel)
	v.panel.SetLevels(v.view, v.index)
	return v, nil
}

// selectLevel switches to level i of the current view.
func (v *Viewer) selectLevel(i int) {
	if i == v.index || i < 0 || i >= len(v.view.Levels) {
		return
	}
	v.index = i
	v.redraw.MarkDirty(v.project.ID)
	if v.panel != nil {
		v.panel.SetSelected(i)
	}
}

func (v *Viewer) setProject(p *ldtk.Project) error {
	view, err := p.View()
	if err != nil {
		return err
	}
	if len(view.Levels) == 0 {
		return fmt.Errorf("ldtkview: %s has no levels", p.Path)
	}
	v.project = p
	v.view = view
	v.resolved = make(map[int]levels.Level)
	v.tilesets = newTilesetCache(filepath.Dir(p.Path), v.log)
	v.index = min(v.index, len(view.Levels)-1)
	v.redraw.MarkDirty(p.ID)
	return nil
}

// level returns the current level, reading its file if it is external.
func (v *Viewer) level() levels.Level {
	lvl := v.view.Levels[v.index]
	if !lvl.External {
		return lvl
	}
	if merged, ok := v.resolved[v.index]; ok {
		return merged
	}
	l, err := v.project.ResolveLevel(v.index)
	if err != nil {
		v.log.Error().Err(err).Str("level", lvl.Identifier).Msg("resolve level")
		v.status = err.Error()
		return lvl
	}
	merged := lvl.Merge(l.View())
	v.view.Defs.SizeEntities(&merged)
	v.resolved[v.index] = merged
	return merged
}

func (v *Viewer) Update() error {
	select {
	case reload, ok := <-v.reloads:
		if !ok {
			v.reloads = nil
			break
		}
		if reload.Err != nil {
			v.status = reload.Err.Error()
			break
		}
		if err := v.setProject(reload.Project); err != nil {
			v.status = err.Error()
			break
		}
		v.panel.SetLevels(v.view, v.index)
		v.status = "reloaded " + filepath.Base(reload.Changed)
	default:
	}

	v.panel.ui.Update()

	n := len(v.view.Levels)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		v.selectLevel((v.index + 1) % n)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		v.selectLevel((v.index + n - 1) % n)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.copyLevel()
	}
	return nil
}

// copyLevel puts the YAML of the current level on the clipboard.
func (v *Viewer) copyLevel() {
	if !v.clipboardOK {
		v.status = "no clipboard"
		return
	}
	l, err := v.project.ResolveLevel(v.index)
	if err != nil {
		v.status = err.Error()
		return
	}
	out, err := ldtk.DumpLevel(l)
	if err != nil {
		v.status = err.Error()
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(out))
	v.status = "copied " + l.Identifier()
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.redraw.Take(v.project.ID) {
		lvl := v.level()
		w, h := max(lvl.PxWid, 1), max(lvl.PxHei, 1)
		if v.canvas == nil || v.canvas.Bounds().Dx() != w || v.canvas.Bounds().Dy() != h {
			v.canvas = ebiten.NewImage(w, h)
		}
		bg := lvl.BgColor
		if bg.A == 0 {
			bg = toNRGBA(v.cfg.Background)
		}
		drawLevel(v.canvas, &lvl, &v.view.Defs, bg, v.tilesets)
		v.log.Debug().Str("level", lvl.Identifier).Msg("rendered level")
	}

	screen.Fill(toNRGBA(v.cfg.Background))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.cfg.Scale, v.cfg.Scale)
	op.GeoM.Translate(panelWidth, hudHeight)
	screen.DrawImage(v.canvas, op)
	v.panel.ui.Draw(screen)

	lvl := v.view.Levels[v.index]
	hud := &text.DrawOptions{}
	hud.GeoM.Translate(panelWidth+4, 2)
	hud.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("%s (%d/%d)  PgUp/PgDn  C copy  %s",
		lvl.Identifier, v.index+1, len(v.view.Levels), v.status), v.hud, hud)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func toNRGBA(c config.YAMLColor) color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}
