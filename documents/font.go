package documents

import (
	"path/filepath"
	"slices"
	"sort"

	"go.starlark.net/starlark"
)

type Anchor struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type Glyph struct {
	Name     string   `yaml:"name"`
	Unicodes []int    `yaml:"unicodes,omitempty"`
	Width    float64  `yaml:"width,omitempty"`
	Anchors  []Anchor `yaml:"anchors,omitempty"`
}

type KerningPair struct {
	Left  string  `yaml:"left"`
	Right string  `yaml:"right"`
	Value float64 `yaml:"value"`
}

// Font is the document scripts query and mutate.
// Groups, kerning and lib are kept as script values so that mutations made by one block are seen by the next.
type Font struct {
	path       string
	glyphOrder []string
	glyphs     map[string]*Glyph
	groups     *starlark.Dict
	kerning    *starlark.Dict
	lib        *starlark.Dict
	frozen     bool
}

func NewFont(path string) *Font {
	if path != "" {
		path = filepath.Clean(path)
	}
	return &Font{
		path:    path,
		glyphs:  make(map[string]*Glyph),
		groups:  new(starlark.Dict),
		kerning: new(starlark.Dict),
		lib:     new(starlark.Dict),
	}
}

// Path is the file the font was loaded from, or empty.
func (f *Font) Path() string {
	return f.path
}

func (f *Font) GlyphOrder() []string {
	return slices.Clone(f.glyphOrder)
}

func (f *Font) Glyph(name string) (*Glyph, bool) {
	glyph, ok := f.glyphs[name]
	return glyph, ok
}

// NewGlyph adds an empty glyph, replacing any glyph with the same name.
func (f *Font) NewGlyph(name string) *Glyph {
	glyph := &Glyph{
		Name: name,
	}
	if _, ok := f.glyphs[name]; !ok {
		f.glyphOrder = append(f.glyphOrder, name)
	}
	f.glyphs[name] = glyph
	return glyph
}

func (f *Font) Groups() (map[string][]string, error) {
	ret := make(map[string][]string)
	for _, item := range f.groups.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			return nil, errorf("group name must be string, got %s", item[0].Type())
		}
		members, err := fromStarlark(item[1])
		if err != nil {
			return nil, err
		}
		list, ok := members.([]any)
		if !ok {
			return nil, errorf("group %s must be a list", name)
		}
		for _, member := range list {
			s, ok := member.(string)
			if !ok {
				return nil, errorf("group %s has non-string member", name)
			}
			ret[name] = append(ret[name], s)
		}
	}
	return ret, nil
}

func (f *Font) SetGroup(name string, members []string) error {
	return f.groups.SetKey(starlark.String(name), stringList(members))
}

func (f *Font) Kerning() ([]KerningPair, error) {
	var ret []KerningPair
	for _, item := range f.kerning.Items() {
		key, ok := item[0].(starlark.Tuple)
		if !ok || len(key) != 2 {
			return nil, errorf("kerning key must be a pair, got %s", item[0].String())
		}
		left, ok1 := starlark.AsString(key[0])
		right, ok2 := starlark.AsString(key[1])
		value, ok3 := starlark.AsFloat(item[1])
		if !ok1 || !ok2 || !ok3 {
			return nil, errorf("bad kerning entry %s: %s", item[0].String(), item[1].String())
		}
		ret = append(ret, KerningPair{
			Left:  left,
			Right: right,
			Value: value,
		})
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].Left != ret[j].Left {
			return ret[i].Left < ret[j].Left
		}
		return ret[i].Right < ret[j].Right
	})
	return ret, nil
}

func (f *Font) SetKerning(left, right string, value float64) error {
	return f.kerning.SetKey(
		starlark.Tuple{starlark.String(left), starlark.String(right)},
		toNumber(value),
	)
}

func (f *Font) Lib() (map[string]any, error) {
	v, err := fromStarlark(f.lib)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func (f *Font) SetLib(key string, value any) error {
	v, err := toStarlark(value)
	if err != nil {
		return err
	}
	return f.lib.SetKey(starlark.String(key), v)
}
