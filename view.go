package ldtk

import (
	"context"
	"errors"
	"slices"

	"github.com/milk9111/ldtk/levels"
)

var errEmptyProject = errors.New("project holds no decoded document")

// View returns the flattened view of the project. External levels appear as
// stubs without layers; use ResolvedView to merge them in.
//
// Load builds the view once and every call returns that same value, so it
// must be treated as read-only. A Project assembled by hand gets a fresh view
// on each call.
func (p *Project) View() (*levels.Project, error) {
	if p.view != nil {
		return p.view, nil
	}
	return p.buildView()
}

func (p *Project) buildView() (*levels.Project, error) {
	switch {
	case p.V063 != nil:
		return levels.FromV063(p.V063), nil
	case p.V092 != nil:
		return levels.FromV092(p.V092), nil
	case p.V113 != nil:
		return levels.FromV113(p.V113), nil
	}
	return nil, errEmptyProject
}

// ResolvedView is View with every external level merged with the contents
// of its .ldtkl file. The result is a new value; the view returned by View is
// left as it was.
func (p *Project) ResolvedView(ctx context.Context) (*levels.Project, error) {
	shared, err := p.View()
	if err != nil {
		return nil, err
	}
	view := *shared
	view.Levels = slices.Clone(shared.Levels)
	resolved, err := p.ResolveAll(ctx)
	if err != nil {
		return nil, err
	}
	for i, l := range resolved {
		if view.Levels[i].External {
			merged := view.Levels[i].Merge(l.View())
			view.Defs.SizeEntities(&merged)
			view.Levels[i] = merged
		}
	}
	return &view, nil
}

func (l *Level) View() levels.Level {
	switch {
	case l.V063 != nil:
		return levels.LevelFromV063(l.V063)
	case l.V092 != nil:
		return levels.LevelFromV092(l.V092)
	case l.V113 != nil:
		return levels.LevelFromV113(l.V113)
	}
	return levels.Level{}
}
