package feas

import (
	"strconv"
	"strings"
)

// Member is one position of a glyph sequence: a single glyph name, or a group of alternatives.
type Member struct {
	Names []string
	Group bool
}

func Glyph(name string) Member {
	return Member{
		Names: []string{name},
	}
}

func Group(names ...string) Member {
	return Member{
		Names: names,
		Group: true,
	}
}

func (m Member) String() string {
	if !m.Group && len(m.Names) == 1 {
		return m.Names[0]
	}
	return "[" + strings.Join(m.Names, " ") + "]"
}

// Sequence is an ordered run of members.
// A nil Sequence and an empty one differ for context lists: nil means no context.
type Sequence []Member

func Glyphs(names ...string) Sequence {
	ret := make(Sequence, 0, len(names))
	for _, name := range names {
		ret = append(ret, Glyph(name))
	}
	return ret
}

func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, member := range s {
		parts = append(parts, member.String())
	}
	return strings.Join(parts, " ")
}

// class renders the whole sequence as one bracketed class.
func (s Sequence) class() string {
	return "[" + s.String() + "]"
}

type Anchor struct {
	X float64
	Y float64
}

func (a Anchor) String() string {
	return "<anchor " + strconv.Itoa(int(a.X)) + " " + strconv.Itoa(int(a.Y)) + ">"
}

// ValueRecord is a positioning value: a literal token or four numbers.
type ValueRecord struct {
	Literal string
	Numbers [4]float64
	numeric bool
}

func Literal(token string) *ValueRecord {
	return &ValueRecord{
		Literal: token,
	}
}

func Record(xPlacement, yPlacement, xAdvance, yAdvance float64) *ValueRecord {
	return &ValueRecord{
		Numbers: [4]float64{xPlacement, yPlacement, xAdvance, yAdvance},
		numeric: true,
	}
}

func (v ValueRecord) String() string {
	if !v.numeric {
		return v.Literal
	}
	parts := make([]string, 0, len(v.Numbers))
	for _, n := range v.Numbers {
		parts = append(parts, strconv.FormatFloat(n, 'f', -1, 64))
	}
	return "<" + strings.Join(parts, " ") + ">"
}

// NameEntry is one line of a featureNames block.
// Script is used only when Platform is set, Language only when both are.
type NameEntry struct {
	Text     string
	Platform string
	Script   string
	Language string
}

func (n NameEntry) String() string {
	fields := []string{"name"}
	if n.Platform != "" {
		fields = append(fields, n.Platform)
		if n.Script != "" {
			fields = append(fields, n.Script)
			if n.Language != "" {
				fields = append(fields, n.Language)
			}
		}
	}
	fields = append(fields, `"`+n.Text+`"`)
	return strings.Join(fields, " ") + ";"
}
