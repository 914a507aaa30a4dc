package documents

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

var (
	_ starlark.HasAttrs    = new(Font)
	_ starlark.HasSetField = new(Font)
	_ starlark.Mapping     = new(Font)
	_ starlark.Sequence    = new(Font)
	_ starlark.HasSetField = new(glyphValue)
)

func (f *Font) String() string {
	if f.path == "" {
		return "<font>"
	}
	return fmt.Sprintf("<font %s>", f.path)
}

func (f *Font) Type() string {
	return "font"
}

func (f *Font) Freeze() {
	if f.frozen {
		return
	}
	f.frozen = true
	f.groups.Freeze()
	f.kerning.Freeze()
	f.lib.Freeze()
}

func (f *Font) Truth() starlark.Bool {
	return starlark.True
}

func (f *Font) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: font")
}

var fontAttrNames = []string{
	"glyphOrder",
	"groups",
	"keys",
	"kerning",
	"lib",
	"newGlyph",
	"path",
}

func (f *Font) AttrNames() []string {
	return fontAttrNames
}

func (f *Font) Attr(name string) (starlark.Value, error) {
	switch name {
	case "path":
		if f.path == "" {
			return starlark.None, nil
		}
		return starlark.String(f.path), nil
	case "glyphOrder":
		return stringList(f.glyphOrder), nil
	case "groups":
		return f.groups, nil
	case "kerning":
		return f.kerning, nil
	case "lib":
		return f.lib, nil
	case "keys":
		return starlark.NewBuiltin("keys", f.keys), nil
	case "newGlyph":
		return starlark.NewBuiltin("newGlyph", f.newGlyph), nil
	}
	return nil, nil
}

func (f *Font) SetField(name string, value starlark.Value) error {
	if f.frozen {
		return fmt.Errorf("cannot set %s of frozen font", name)
	}
	switch name {
	case "glyphOrder":
		names, err := stringsOf(value)
		if err != nil {
			return err
		}
		order := make([]string, 0, len(f.glyphs))
		seen := make(map[string]bool)
		for _, name := range names {
			if _, ok := f.glyphs[name]; !ok {
				return fmt.Errorf("glyphOrder: no glyph named %s", name)
			}
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
		for _, name := range f.glyphOrder {
			if !seen[name] {
				order = append(order, name)
			}
		}
		f.glyphOrder = order
		return nil
	}
	return starlark.NoSuchAttrError(fmt.Sprintf("font has no settable field .%s", name))
}

func (f *Font) Get(key starlark.Value) (starlark.Value, bool, error) {
	name, ok := starlark.AsString(key)
	if !ok {
		return nil, false, fmt.Errorf("font key must be string, got %s", key.Type())
	}
	glyph, ok := f.glyphs[name]
	if !ok {
		return nil, false, nil
	}
	return &glyphValue{
		font:  f,
		glyph: glyph,
	}, true, nil
}

func (f *Font) Iterate() starlark.Iterator {
	return stringList(f.glyphOrder).Iterate()
}

func (f *Font) Len() int {
	return len(f.glyphOrder)
}

func (f *Font) keys(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return stringList(f.glyphOrder), nil
}

func (f *Font) newGlyph(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}
	if f.frozen {
		return nil, fmt.Errorf("%s: font is frozen", fn.Name())
	}
	if name == "" {
		return nil, fmt.Errorf("%s: empty glyph name", fn.Name())
	}
	return &glyphValue{
		font:  f,
		glyph: f.NewGlyph(name),
	}, nil
}

type glyphValue struct {
	font   *Font
	glyph  *Glyph
	frozen bool
}

func (g *glyphValue) String() string {
	return fmt.Sprintf("<glyph %s>", g.glyph.Name)
}

func (g *glyphValue) Type() string {
	return "glyph"
}

func (g *glyphValue) Freeze() {
	g.frozen = true
}

func (g *glyphValue) Truth() starlark.Bool {
	return starlark.True
}

func (g *glyphValue) Hash() (uint32, error) {
	return starlark.String(g.glyph.Name).Hash()
}

var glyphAttrNames = []string{
	"anchors",
	"name",
	"unicode",
	"unicodes",
	"width",
}

func (g *glyphValue) AttrNames() []string {
	return glyphAttrNames
}

func (g *glyphValue) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(g.glyph.Name), nil
	case "width":
		return toNumber(g.glyph.Width), nil
	case "unicodes":
		elems := make([]starlark.Value, 0, len(g.glyph.Unicodes))
		for _, u := range g.glyph.Unicodes {
			elems = append(elems, starlark.MakeInt(u))
		}
		return starlark.NewList(elems), nil
	case "unicode":
		if len(g.glyph.Unicodes) == 0 {
			return starlark.None, nil
		}
		return starlark.MakeInt(g.glyph.Unicodes[0]), nil
	case "anchors":
		elems := make([]starlark.Value, 0, len(g.glyph.Anchors))
		for _, anchor := range g.glyph.Anchors {
			elems = append(elems, starlarkstruct.FromStringDict(
				starlark.String("anchor"),
				starlark.StringDict{
					"name": starlark.String(anchor.Name),
					"x":    toNumber(anchor.X),
					"y":    toNumber(anchor.Y),
				},
			))
		}
		return starlark.Tuple(elems), nil
	}
	return nil, nil
}

func (g *glyphValue) SetField(name string, value starlark.Value) error {
	if g.frozen || g.font.frozen {
		return fmt.Errorf("cannot set %s of frozen glyph", name)
	}
	switch name {
	case "width":
		width, ok := starlark.AsFloat(value)
		if !ok {
			return fmt.Errorf("width must be a number, got %s", value.Type())
		}
		g.glyph.Width = width
		return nil
	case "unicodes":
		iterable, ok := value.(starlark.Iterable)
		if !ok {
			return fmt.Errorf("unicodes must be a list, got %s", value.Type())
		}
		var unicodes []int
		iter := iterable.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			var u int
			if err := starlark.AsInt(elem, &u); err != nil {
				return fmt.Errorf("unicodes: %w", err)
			}
			unicodes = append(unicodes, u)
		}
		g.glyph.Unicodes = unicodes
		return nil
	case "unicode":
		if value == starlark.None {
			g.glyph.Unicodes = nil
			return nil
		}
		var u int
		if err := starlark.AsInt(value, &u); err != nil {
			return fmt.Errorf("unicode: %w", err)
		}
		g.glyph.Unicodes = append([]int{u}, slices.DeleteFunc(g.glyph.Unicodes, func(v int) bool {
			return v == u
		})...)
		return nil
	}
	return starlark.NoSuchAttrError(fmt.Sprintf("glyph has no settable field .%s", name))
}

func stringsOf(value starlark.Value) ([]string, error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("want list of strings, got %s", value.Type())
	}
	var ret []string
	iter := iterable.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		s, ok := starlark.AsString(elem)
		if !ok {
			return nil, fmt.Errorf("want string, got %s", elem.Type())
		}
		ret = append(ret, s)
	}
	return ret, nil
}
