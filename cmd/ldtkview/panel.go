package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ldtk/levels"
)

const panelWidth = 200

// levelEntry is one row of the level list.
type levelEntry struct {
	Index    int
	Name     string
	External bool
}

// levelPanel is the list of levels on the left of the window.
type levelPanel struct {
	ui      *ebitenui.UI
	list    *widget.List
	entries []any
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newPanelTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.White,
				Selected:            color.Black,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{90, 110, 150, 255},
				SelectedBackground:  color.RGBA{180, 200, 255, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{50, 50, 50, 255}),
				Mask: solidNineSlice(color.RGBA{50, 50, 50, 255}),
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(color.RGBA{80, 80, 80, 255}),
				Hover: solidNineSlice(color.RGBA{100, 100, 100, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{140, 140, 140, 255}),
				Hover:   solidNineSlice(color.RGBA{170, 170, 170, 255}),
				Pressed: solidNineSlice(color.RGBA{120, 120, 120, 255}),
			},
		},
	}
}

func newLevelPanel(fontFace *text.Face, onLevelSelected func(index int)) *levelPanel {
	lp := &levelPanel{ui: &ebitenui.UI{PrimaryTheme: newPanelTheme(fontFace)}}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 200),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Levels", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	lp.list = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(levelLabel),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if entry, ok := args.Entry.(levelEntry); ok && onLevelSelected != nil {
				onLevelSelected(entry.Index)
			}
		}),
	)
	lp.list.GetWidget().MinHeight = 400
	panel.AddChild(lp.list)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(panel)
	lp.ui.Container = root
	return lp
}

func levelLabel(e any) string {
	entry, ok := e.(levelEntry)
	if !ok {
		return ""
	}
	if entry.External {
		return fmt.Sprintf("%d. %s *", entry.Index+1, entry.Name)
	}
	return fmt.Sprintf("%d. %s", entry.Index+1, entry.Name)
}

// levelEntries lists the levels of view in the order the viewer pages them.
// External levels are marked so the list shows which ones read a file.
func levelEntries(view *levels.Project) []any {
	entries := make([]any, len(view.Levels))
	for i, lvl := range view.Levels {
		entries[i] = levelEntry{Index: i, Name: lvl.Identifier, External: lvl.External}
	}
	return entries
}

// SetLevels replaces the list contents after a load or reload.
func (lp *levelPanel) SetLevels(view *levels.Project, selected int) {
	lp.entries = levelEntries(view)
	lp.list.SetEntries(lp.entries)
	lp.SetSelected(selected)
}

func (lp *levelPanel) SetSelected(index int) {
	if index < 0 || index >= len(lp.entries) {
		return
	}
	lp.list.SetSelectedEntry(lp.entries[index])
}
