// Package query filters entities of a flattened project with tengo
// expressions such as
//
//	identifier == "Chest" && is_int(fields.count) && fields.count > 2
//
// An expression sees these variables:
//
//	identifier, iid, defUid, px, grid, width, height, tags, fields,
//	level, layer
//
// px and grid are [x, y] arrays. fields maps field identifiers to their
// values; a field the entity does not carry is undefined. The tengo
// standard library is importable, for example
// import("text").has_prefix(identifier, "Door").
package query

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ldtk/levels"
)

const resultVar = "__match"

var inputs = []string{"identifier", "iid", "defUid", "px", "grid", "width", "height", "tags", "fields", "level", "layer"}

// Filter is a compiled expression. It is not safe for concurrent use.
type Filter struct {
	expr     string
	compiled *tengo.Compiled
}

func Compile(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = "true"
	}
	script := tengo.NewScript([]byte(resultVar + " := (" + expr + ")"))
	for _, name := range inputs {
		_ = script.Add(name, nil)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("query: compile %q: %w", expr, err)
	}
	return &Filter{expr: expr, compiled: compiled}, nil
}

func (f *Filter) String() string { return f.expr }

// Match reports whether the expression is truthy for e, which sits on layer
// of lvl.
func (f *Filter) Match(lvl *levels.Level, layer *levels.Layer, e *levels.Entity) (bool, error) {
	tags := make([]any, len(e.Tags))
	for i, t := range e.Tags {
		tags[i] = t
	}
	fields := make(map[string]any, len(e.Fields))
	for _, field := range e.Fields {
		fields[field.Identifier] = field.Value.Interface()
	}

	values := map[string]any{
		"identifier": e.Identifier,
		"iid":        e.IID.String(),
		"defUid":     e.DefUID,
		"px":         []any{e.Px.X, e.Px.Y},
		"grid":       []any{e.Grid.X, e.Grid.Y},
		"width":      e.Width,
		"height":     e.Height,
		"tags":       tags,
		"fields":     fields,
		"level":      lvl.Identifier,
		"layer":      layer.Identifier,
	}
	for name, v := range values {
		if err := f.compiled.Set(name, v); err != nil {
			return false, fmt.Errorf("query: set %s: %w", name, err)
		}
	}
	if err := f.compiled.Run(); err != nil {
		return false, fmt.Errorf("query: %s: %w", e.Identifier, err)
	}
	return f.compiled.Get(resultVar).Bool(), nil
}

// Hit is one matching entity and where it was found.
type Hit struct {
	Level  *levels.Level
	Layer  *levels.Layer
	Entity *levels.Entity
}

// Entities returns every entity of view that matches, in level, layer and
// entity order. Levels without layers are skipped.
func (f *Filter) Entities(view *levels.Project) ([]Hit, error) {
	var hits []Hit
	for li := range view.Levels {
		lvl := &view.Levels[li]
		for yi := range lvl.Layers {
			layer := &lvl.Layers[yi]
			for ei := range layer.Entities {
				e := &layer.Entities[ei]
				ok, err := f.Match(lvl, layer, e)
				if err != nil {
					return nil, err
				}
				if ok {
					hits = append(hits, Hit{Level: lvl, Layer: layer, Entity: e})
				}
			}
		}
	}
	return hits, nil
}
