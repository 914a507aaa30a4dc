package documents

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/modes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func loadTestFont(t *testing.T) *Font {
	var font *Font
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		load Load,
	) {
		var err error
		font, err = load(t.Context(), filepath.Join("testdata", "font.yaml"))
		if err != nil {
			t.Fatal(err)
		}
	})
	return font
}

func runScript(t *testing.T, font *Font, code string) string {
	var out string
	thread := &starlark.Thread{
		Print: func(_ *starlark.Thread, msg string) {
			out += msg + "\n"
		},
	}
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		thread, "test", code,
		starlark.StringDict{
			"font": font,
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestLoad(t *testing.T) {
	font := loadTestFont(t)
	if font.Path() != filepath.Join("testdata", "font.yaml") {
		t.Fatalf("got %s", font.Path())
	}
	if diff := cmp.Diff([]string{"a", "b", "acutecomb", "f_i"}, font.GlyphOrder()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	glyph, ok := font.Glyph("a")
	if !ok {
		t.Fatal("no glyph a")
	}
	if diff := cmp.Diff(&Glyph{
		Name:     "a",
		Unicodes: []int{97},
		Width:    500,
		Anchors: []Anchor{
			{Name: "top", X: 250, Y: 480.5},
		},
	}, glyph); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	kerning, err := font.Kerning()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]KerningPair{{Left: "a", Right: "b", Value: -15}}, kerning); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScriptAccess(t *testing.T) {
	font := loadTestFont(t)
	out := runScript(t, font, `
print(len(font), "a" in font, "z" in font)
print(" ".join([name for name in font]))
print(font["a"].width, font["a"].unicode, font["acutecomb"].unicode)
for anchor in font["a"].anchors:
    print(anchor.name, anchor.x, anchor.y)
print(font.groups["lowercase"])
print(font.kerning[("a", "b")])
print(font.lib["com.example.stylisticSets"]["ss01"])
print(font.path)
`)
	expected := "4 True False\n" +
		"a b acutecomb f_i\n" +
		"500 97 None\n" +
		"top 250 480.5\n" +
		`["a", "b"]` + "\n" +
		"-15\n" +
		"Alternate a\n" +
		filepath.Join("testdata", "font.yaml") + "\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScriptMutation(t *testing.T) {
	font := loadTestFont(t)
	runScript(t, font, `
g = font.newGlyph("a.alt")
g.width = 510
g.unicodes = [0xE000]
font["a"].unicode = 0x61
font.groups["alternates"] = ["a.alt"]
font.kerning[("a.alt", "b")] = -20
font.lib["generated"] = True
font.glyphOrder = ["a.alt"]
`)
	// mutations persist for later scripts
	out := runScript(t, font, `
print(font.glyphOrder)
print(font["a.alt"].width, font["a.alt"].unicodes)
print(font.lib["generated"])
`)
	expected := `["a.alt", "a", "b", "acutecomb", "f_i"]` + "\n" +
		"510 [57344]\n" +
		"True\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	groups, err := font.Groups()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a.alt"}, groups["alternates"]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	kerning, err := font.Kerning()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]KerningPair{
		{Left: "a", Right: "b", Value: -15},
		{Left: "a.alt", Right: "b", Value: -20},
	}, kerning); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	font := loadTestFont(t)
	runScript(t, font, `
font.newGlyph("b.sc").width = 400
font.lib["note"] = ["x", 1, 2.5, None]
`)
	path := filepath.Join(t.TempDir(), "out.yaml")
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		save Save,
		load Load,
	) {
		if err := save(t.Context(), font, path); err != nil {
			t.Fatal(err)
		}
		loaded, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(font.GlyphOrder(), loaded.GlyphOrder()); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
		glyph, ok := loaded.Glyph("b.sc")
		if !ok || glyph.Width != 400 {
			t.Fatalf("got %v", glyph)
		}
		lib, err := loaded.Lib()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{"x", int64(1), 2.5, nil}, lib["note"]); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
		groups, err := loaded.Groups()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(map[string][]string{
			"public.kern1.round": {"b"},
			"lowercase":          {"a", "b"},
		}, groups); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestUnmarshalErrors(t *testing.T) {
	for _, content := range []string{
		"glyphs: [{width: 1}]",
		"glyphs: [{name: a}, {name: a}]",
		"glyphs: {",
	} {
		if _, err := Unmarshal("bad.yaml", []byte(content)); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

func TestFrozenFont(t *testing.T) {
	font := NewFont("")
	font.NewGlyph("a")
	font.Freeze()
	thread := new(starlark.Thread)
	_, err := starlark.ExecFile(thread, "test", `font["a"].width = 1`, starlark.StringDict{
		"font": font,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if font.String() != "<font>" {
		t.Fatalf("got %s", font.String())
	}
}
