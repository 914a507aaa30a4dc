package documents

import (
	"context"
	"fmt"

	"github.com/typesupply/feafofum/files"
	"github.com/typesupply/feafofum/logs"
	"go.starlark.net/starlark"
	"gopkg.in/yaml.v3"
)

type fontFile struct {
	GlyphOrder []string            `yaml:"glyphOrder,omitempty"`
	Glyphs     []*Glyph            `yaml:"glyphs"`
	Groups     map[string][]string `yaml:"groups,omitempty"`
	Kerning    []KerningPair       `yaml:"kerning,omitempty"`
	Lib        map[string]any      `yaml:"lib,omitempty"`
}

// Unmarshal decodes a YAML or JSON font description.
func Unmarshal(path string, content []byte) (*Font, error) {
	var file fontFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	font := NewFont(path)
	for _, glyph := range file.Glyphs {
		if glyph == nil || glyph.Name == "" {
			return nil, errorf("glyph without name in %s", path)
		}
		if _, ok := font.glyphs[glyph.Name]; ok {
			return nil, errorf("duplicated glyph %s in %s", glyph.Name, path)
		}
		font.glyphs[glyph.Name] = glyph
	}

	// listed order first, then glyphs the order misses
	seen := make(map[string]bool)
	for _, name := range file.GlyphOrder {
		if _, ok := font.glyphs[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		font.glyphOrder = append(font.glyphOrder, name)
	}
	for _, glyph := range file.Glyphs {
		if !seen[glyph.Name] {
			seen[glyph.Name] = true
			font.glyphOrder = append(font.glyphOrder, glyph.Name)
		}
	}

	for name, members := range file.Groups {
		if err := font.SetGroup(name, members); err != nil {
			return nil, err
		}
	}
	for _, pair := range file.Kerning {
		if err := font.SetKerning(pair.Left, pair.Right, pair.Value); err != nil {
			return nil, err
		}
	}
	if file.Lib != nil {
		lib, err := toStarlark(file.Lib)
		if err != nil {
			return nil, err
		}
		font.lib = lib.(*starlark.Dict)
	}

	return font, nil
}

func (f *Font) Marshal() ([]byte, error) {
	file := fontFile{
		GlyphOrder: f.GlyphOrder(),
	}
	for _, name := range f.glyphOrder {
		file.Glyphs = append(file.Glyphs, f.glyphs[name])
	}
	var err error
	file.Groups, err = f.Groups()
	if err != nil {
		return nil, err
	}
	if len(file.Groups) == 0 {
		file.Groups = nil
	}
	file.Kerning, err = f.Kerning()
	if err != nil {
		return nil, err
	}
	file.Lib, err = f.Lib()
	if err != nil {
		return nil, err
	}
	if len(file.Lib) == 0 {
		file.Lib = nil
	}
	return yaml.Marshal(file)
}

type Load func(ctx context.Context, path string) (*Font, error)

func (Module) Load(
	readFile files.ReadFile,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, path string) (*Font, error) {
		content, err := readFile(ctx, path)
		if err != nil {
			return nil, err
		}
		font, err := Unmarshal(path, []byte(content))
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "font loaded",
			"path", path,
			"glyphs", len(font.glyphOrder),
		)
		return font, nil
	}
}

// Save writes the font, including script mutations, to path.
type Save func(ctx context.Context, font *Font, path string) error

func (Module) Save(
	writeFile files.WriteFile,
) Save {
	return func(ctx context.Context, font *Font, path string) error {
		content, err := font.Marshal()
		if err != nil {
			return err
		}
		return writeFile(ctx, path, string(content))
	}
}
