package feas

import (
	"fmt"
	"strings"
)

// Render returns the text of all appended statements.
// Rendering does not modify the writer and may be repeated.
func (w *Writer) Render() string {
	r := &renderer{
		writer: w,
		marked: w.needsContextMarkers(),
	}
	var lines []string
	for _, op := range w.ops {
		lines = append(lines, r.render(op)...)
		r.last = op.Kind()
		r.started = true
	}
	if r.started && spaceAfter[r.last] {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// needsContextMarkers reports whether any rule in this writer has a non-empty backtrack or lookahead.
// When it does, every rule of the writer is rendered with marked targets.
func (w *Writer) needsContextMarkers() bool {
	for _, op := range w.ops {
		backtrack, lookahead, ok := contextOf(op)
		if ok && (len(backtrack) > 0 || len(lookahead) > 0) {
			return true
		}
	}
	return false
}

type renderer struct {
	writer     *Writer
	marked     bool
	started    bool
	last       Kind
	inScript   bool
	inLanguage bool
}

func (r *renderer) indentLevel() int {
	level := r.writer.indent
	if r.inScript {
		level++
	}
	if r.inLanguage {
		level++
	}
	return level
}

func (r *renderer) indentLines(lines []string) []string {
	indent := strings.Repeat(r.writer.whitespace, r.indentLevel())
	for i, line := range lines {
		lines[i] = indent + line
	}
	return lines
}

func (r *renderer) breakBefore(kind Kind) []string {
	if spaceBefore[kind] {
		if r.indentLevel() == 0 && (kind == KindFeature || kind == KindLookup) {
			return []string{"", ""}
		}
		return []string{""}
	}
	if r.started && kind != r.last {
		return []string{""}
	}
	return nil
}

// line renders a single-statement op: separator lines and text, indented together
func (r *renderer) line(kind Kind, text ...string) []string {
	lines := r.breakBefore(kind)
	lines = append(lines, text...)
	return r.indentLines(lines)
}

// block renders a feature or lookup; the opening and closing lines use this writer's indent
func (r *renderer) block(kind Kind, name string, child *Writer) []string {
	lines := r.breakBefore(kind)
	lines = append(lines, r.indentLines([]string{kind.String() + " " + name + " {"})...)
	body := ""
	if child != nil {
		body = child.Render()
	}
	lines = append(lines, body)
	lines = append(lines, r.indentLines([]string{"} " + name + ";"})...)
	return lines
}

func (r *renderer) render(op Op) []string {
	switch op := op.(type) {

	case BlankLine:
		return append(r.breakBefore(KindBlankLine), "")

	case Comment:
		return r.line(KindComment, FormatComment(op.Text))

	case FileReference:
		return r.line(KindFileReference, FormatFileReference(op.Path))

	case LanguageSystem:
		return r.line(KindLanguageSystem, FormatLanguageSystem(op.Script, op.Language))

	case Script:
		r.inScript = false
		r.inLanguage = false
		lines := r.line(KindScript, FormatScript(op.Name))
		r.inScript = true
		return lines

	case Language:
		r.inLanguage = false
		lines := r.line(KindLanguage, FormatLanguage(op.Name, op.IncludeDefault))
		r.inLanguage = true
		return lines

	case ClassDefinition:
		return r.line(KindClassDefinition, FormatClassDefinition(op.Name, op.Members))

	case MarkClassDefinition:
		return r.line(KindMarkClassDefinition, FormatMarkClassDefinition(op.Members, op.Anchor, op.Name))

	case Feature:
		return r.block(KindFeature, op.Name, op.Writer)

	case Lookup:
		return r.block(KindLookup, op.Name, op.Writer)

	case LookupFlag:
		return r.line(KindLookupFlag, FormatLookupFlag(op.Flags))

	case FeatureReference:
		return r.line(KindFeatureReference, FormatFeatureReference(op.Name))

	case LookupReference:
		return r.line(KindLookupReference, FormatLookupReference(op.Name))

	case Substitution:
		return r.line(KindSubstitution, formatSubstitution(op, r.marked))

	case PositionSingle:
		return r.line(KindPositionSingle, formatPosition(
			op.Target, op.Backtrack, op.Lookahead, op.Value, false, r.marked,
		))

	case PositionPair:
		return r.line(KindPositionPair, formatPosition(
			op.Target, op.Backtrack, op.Lookahead, op.Value, op.Enumerate, r.marked,
		))

	case StylisticSetNames:
		return r.line(KindStylisticSetNames, FormatStylisticSetNames(r.writer.whitespace, op.Names)...)

	}
	panic(fmt.Errorf("unknown op %T", op))
}
