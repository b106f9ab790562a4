package ldtk

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/milk9111/ldtk/config"
	"github.com/milk9111/ldtk/schema/v113"
	"github.com/milk9111/ldtk/wire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTiles(t *testing.T) {
	p, err := Load("testdata/tiles.ldtk")
	require.NoError(t, err)
	require.Equal(t, Version113, p.Version)
	require.NotNil(t, p.V113)
	assert.Nil(t, p.V063)
	assert.Nil(t, p.V092)
	assert.Equal(t, v113.WorldFree, p.V113.WorldLayout.Or(""))

	require.Equal(t, 1, p.LevelCount())
	lvl := p.V113.Levels[0]
	assert.Equal(t, 256, lvl.PxHei)
	assert.Equal(t, 256, lvl.PxWid)

	layer, ok := lvl.Layer("Ground")
	require.True(t, ok)
	assert.Equal(t, v113.LayerTiles, layer.Kind)
	assert.Equal(t, 16, layer.GridSize)

	require.Len(t, layer.GridTiles, 1)
	tile := layer.GridTiles[0]
	assert.Equal(t, 4, tile.T)
	assert.True(t, tile.FlipX())
	assert.True(t, tile.FlipY())
	assert.Equal(t, []int{32, 48}, tile.Px)
}

func TestLoadRevisions(t *testing.T) {
	cases := []struct {
		path    string
		version Version
		levels  int
	}{
		{"schema/v063/testdata/project.ldtk", Version063, 1},
		{"schema/v092/testdata/project.ldtk", Version092, 1},
		{"schema/v113/testdata/project.ldtk", Version113, 2},
		{"testdata/tiles.ldtk", Version113, 1},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			p, err := Load(c.path)
			require.NoError(t, err)
			assert.Equal(t, c.version, p.Version)
			assert.Equal(t, c.version.String(), p.JSONVersion())
			assert.Equal(t, c.levels, p.LevelCount())
			assert.Equal(t, c.path, p.Path)

			lvl, ok := p.Level(0)
			require.True(t, ok)
			assert.Equal(t, c.version, lvl.Version)
			assert.NotEmpty(t, lvl.Identifier())

			_, ok = p.Level(c.levels)
			assert.False(t, ok)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	cases := []struct {
		name  string
		path  string
		kind  ErrorKind
		field string
	}{
		{"missing_file", filepath.Join(dir, "nope.ldtk"), SourceUnavailable, ""},
		{"truncated", write("truncated.ldtk", `{"jsonVersion": "1.1.3", "levels": [`), MalformedDocument, ""},
		{"not_json", write("text.ldtk", "levels: []"), MalformedDocument, ""},
		{"no_version", write("noversion.ldtk", `{"levels": []}`), SchemaMismatch, "jsonVersion"},
		{"bad_version", write("badversion.ldtk", `{"jsonVersion": "one point one"}`), SchemaMismatch, "jsonVersion"},
		{"missing_uid", "testdata/missing_uid.ldtk", SchemaMismatch, "defs.tilesets[0].uid"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Load(c.path)
			require.Error(t, err)
			assert.Nil(t, p)

			var le *Error
			require.True(t, errors.As(err, &le), "expected *Error, got %T", err)
			assert.Equal(t, c.kind, le.Kind)
			assert.True(t, errors.Is(err, le.Kind.sentinel()))
			assert.Equal(t, c.path, le.Path)
			if c.field != "" {
				assert.Equal(t, c.field, le.Field)
			}
		})
	}
}

func TestLoadMissingUID(t *testing.T) {
	_, err := Load("testdata/missing_uid.ldtk")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.False(t, errors.Is(err, ErrMalformedDocument))

	var se *wire.SchemaError
	require.True(t, errors.As(err, &se))
	assert.True(t, strings.HasSuffix(se.FieldPath(), ".uid"))
	assert.Equal(t, "missing", se.Actual)
	assert.Contains(t, err.Error(), "testdata/missing_uid.ldtk")
}

func TestLoadMalformedPosition(t *testing.T) {
	_, err := LoadReader(strings.NewReader("{\n\t\"jsonVersion\": \"1.1.3\",\n\t\"levels\": ]\n}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDocument))

	var syn *wire.SyntaxError
	require.True(t, errors.As(err, &syn))
	assert.Equal(t, 3, syn.Line)
}

func TestWithVersion(t *testing.T) {
	// 0.6.3 documents have no worlds, which 1.1.3 requires.
	_, err := Load("schema/v063/testdata/project.ldtk", WithVersion(Version113))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	p, err := Load("schema/v092/testdata/project.ldtk", WithVersion(Version092))
	require.NoError(t, err)
	assert.NotNil(t, p.V092)
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Version = "0.9.2"
	p, err := Load("schema/v092/testdata/project.ldtk", WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, Version092, p.Version)

	cfg.Version = "latest"
	_, err = Load("schema/v092/testdata/project.ldtk", WithConfig(cfg))
	assert.ErrorIs(t, err, errNotSemver)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := Load("testdata/tiles.ldtk", WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"detected schema version"`)
	assert.Contains(t, buf.String(), `"version":"1.1.3"`)
	assert.Contains(t, buf.String(), `"source":"testdata/tiles.ldtk"`)
}

func TestLoadReader(t *testing.T) {
	data, err := os.ReadFile("testdata/external/project.ldtk")
	require.NoError(t, err)

	p, err := LoadReader(bytes.NewReader(data), WithBaseDir("testdata/external"))
	require.NoError(t, err)
	assert.Empty(t, p.Path)

	lvl, err := p.ResolveLevel(0)
	require.NoError(t, err)
	assert.Equal(t, 1, lvl.LayerCount())
}

func TestLoadFS(t *testing.T) {
	project, err := os.ReadFile("testdata/external/project.ldtk")
	require.NoError(t, err)
	level0, err := os.ReadFile("testdata/external/level_0.ldtkl")
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"maps/project.ldtk":  {Data: project},
		"maps/level_0.ldtkl": {Data: level0},
	}
	p, err := LoadFS(fsys, "maps/project.ldtk")
	require.NoError(t, err)

	lvl, err := p.ResolveLevel(0)
	require.NoError(t, err)
	assert.Equal(t, "Level_0", lvl.Identifier())

	_, err = p.ResolveLevel(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExternalReferenceUnresolved))
	var le *Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "maps/level_1.ldtkl", le.Path)

	_, err = LoadFS(fsys, "maps/other.ldtk")
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, path := range []string{
		"schema/v063/testdata/project.ldtk",
		"schema/v092/testdata/project.ldtk",
		"testdata/tiles.ldtk",
		"testdata/external/project.ldtk",
	} {
		t.Run(path, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)
			p, err := Load(path)
			require.NoError(t, err)

			out, err := p.Encode()
			require.NoError(t, err)
			assert.JSONEq(t, string(src), string(out))

			again, err := LoadReader(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, p.Version, again.Version)
			assert.Equal(t, p.LevelCount(), again.LevelCount())
		})
	}
}
