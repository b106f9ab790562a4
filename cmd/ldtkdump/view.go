package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/milk9111/ldtk/levels"
	"github.com/milk9111/ldtk/query"
)

// printView writes one line per level and one indented line per layer.
func printView(out io.Writer, view *levels.Project) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "jsonVersion %s\tlayout %s\tlevels %d\tworlds %d\n",
		view.JSONVersion, view.WorldLayout, len(view.Levels), len(view.Worlds))

	for i, lvl := range view.Levels {
		state := "inline"
		if lvl.External {
			state = "external " + lvl.ExternalRelPath
		}
		fmt.Fprintf(w, "%d\t%s\t%dx%d at %d,%d\t%s\n",
			i, lvl.Identifier, lvl.PxWid, lvl.PxHei, lvl.WorldX, lvl.WorldY, state)

		for _, layer := range lvl.Layers {
			var detail string
			switch layer.Kind {
			case levels.IntGrid:
				filled := 0
				for _, v := range layer.IntGrid {
					if v != 0 {
						filled++
					}
				}
				detail = fmt.Sprintf("%d/%d cells", filled, len(layer.IntGrid))
			case levels.Entities:
				detail = fmt.Sprintf("%d entities", len(layer.Entities))
			default:
				detail = fmt.Sprintf("%d tiles", len(layer.Tiles))
			}
			fmt.Fprintf(w, "\t%s\t%s %dx%d\t%s\n",
				layer.Identifier, layer.Kind, layer.CWid, layer.CHei, detail)
		}
	}

	for _, world := range view.Worlds {
		fmt.Fprintf(w, "world %s\t%s\t%s\tlevels %v\n", world.Identifier, world.IID, world.Layout, world.Levels)
	}
	return w.Flush()
}

func printEntities(out io.Writer, hits []query.Hit) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, h := range hits {
		e := h.Entity
		fmt.Fprintf(w, "%s\t%s\t%s\t%d,%d\t%s\n",
			h.Level.Identifier, h.Layer.Identifier, e.Identifier, e.Px.X, e.Px.Y, e.IID)
	}
	fmt.Fprintf(w, "%d entities\n", len(hits))
	return w.Flush()
}
