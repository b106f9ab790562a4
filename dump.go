package ldtk

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/ldtk/wire"
	"gopkg.in/yaml.v3"
)

// Dump renders the project, or part of it, as YAML for debugging. subtree is
// one of:
//
//	""                 the whole document
//	"defs"             definitions only
//	"levels"           the level list
//	"levels[N]"        one level by index
//	"level:<name>"     one level by identifier, searching worlds too
//
// Any other top level key of the document is accepted as well. The output is
// not a stable format.
func (p *Project) Dump(subtree string) (string, error) {
	data, err := p.Encode()
	if err != nil {
		return "", fmt.Errorf("ldtk: dump: %w", err)
	}
	root, err := yamlTree(data)
	if err != nil {
		return "", fmt.Errorf("ldtk: dump: %w", err)
	}
	node, err := selectSubtree(root, subtree)
	if err != nil {
		return "", fmt.Errorf("ldtk: dump %q: %w", subtree, err)
	}
	return renderYAML(node)
}

// DumpLevel renders a single level, typically one returned by ResolveLevel.
func DumpLevel(l *Level) (string, error) {
	data, err := l.Encode()
	if err != nil {
		return "", fmt.Errorf("ldtk: dump level: %w", err)
	}
	root, err := yamlTree(data)
	if err != nil {
		return "", fmt.Errorf("ldtk: dump level: %w", err)
	}
	return renderYAML(root)
}

// yamlTree decodes encoded JSON into a YAML node tree. Going through
// wire.Any unescapes strings first, so JSON escapes YAML does not know
// (such as \/ in retained unknown keys) never reach the YAML layer.
func yamlTree(data []byte) (*yaml.Node, error) {
	var doc wire.Any
	if err := doc.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return yamlNode(doc), nil
}

func yamlNode(a wire.Any) *yaml.Node {
	switch a.Kind() {
	case wire.KindString:
		s, _ := a.Str()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case wire.KindInteger, wire.KindFloat:
		tag := "!!int"
		if a.Kind() == wire.KindFloat {
			tag = "!!float"
		}
		lit, _ := a.MarshalJSON()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(lit)}
	case wire.KindBool:
		b, _ := a.Bool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case wire.KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range a.Members() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				yamlNode(m.Value))
		}
		return n
	case wire.KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range a.Items() {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func renderYAML(node *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("ldtk: dump: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("ldtk: dump: %w", err)
	}
	return buf.String(), nil
}

func selectSubtree(root *yaml.Node, subtree string) (*yaml.Node, error) {
	switch {
	case subtree == "":
		return root, nil
	case strings.HasPrefix(subtree, "level:"):
		name := strings.TrimPrefix(subtree, "level:")
		for _, lvl := range allLevelNodes(root) {
			if id, ok := member(lvl, "identifier"); ok && id.Value == name {
				return lvl, nil
			}
		}
		return nil, fmt.Errorf("no level named %s", name)
	case strings.HasPrefix(subtree, "levels[") && strings.HasSuffix(subtree, "]"):
		i, err := strconv.Atoi(subtree[len("levels[") : len(subtree)-1])
		if err != nil {
			return nil, fmt.Errorf("bad level index: %w", err)
		}
		all := allLevelNodes(root)
		if i < 0 || i >= len(all) {
			return nil, fmt.Errorf("level index %d out of range (%d levels)", i, len(all))
		}
		return all[i], nil
	default:
		node, ok := member(root, subtree)
		if !ok {
			return nil, fmt.Errorf("no key %s", subtree)
		}
		return node, nil
	}
}

// allLevelNodes lists levels in the same order as Project.Level.
func allLevelNodes(root *yaml.Node) []*yaml.Node {
	var out []*yaml.Node
	if levels, ok := member(root, "levels"); ok {
		out = append(out, levels.Content...)
	}
	if worlds, ok := member(root, "worlds"); ok {
		for _, w := range worlds.Content {
			if levels, ok := member(w, "levels"); ok {
				out = append(out, levels.Content...)
			}
		}
	}
	return out
}

func member(m *yaml.Node, key string) (*yaml.Node, bool) {
	if m.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1], true
		}
	}
	return nil, false
}
