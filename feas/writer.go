package feas

import "strings"

// Writer accumulates feature file statements and renders them on demand.
type Writer struct {
	whitespace string
	indent     int
	ops        []Op

	// set by Script and Language as they are appended; only used to fix the indent of children
	inScript   bool
	inLanguage bool
}

func NewWriter(whitespace string) *Writer {
	if whitespace == "" {
		whitespace = "\t"
	}
	return &Writer{
		whitespace: whitespace,
	}
}

func (w *Writer) Whitespace() string {
	return w.whitespace
}

// Indent returns the nesting level fixed when the writer was created.
func (w *Writer) Indent() int {
	return w.indent
}

func (w *Writer) Ops() []Op {
	return w.ops
}

func (w *Writer) Append(op Op) {
	w.ops = append(w.ops, op)
}

func (w *Writer) indentLevel() int {
	level := w.indent
	if w.inScript {
		level++
	}
	if w.inLanguage {
		level++
	}
	return level
}

func (w *Writer) child() *Writer {
	return &Writer{
		whitespace: w.whitespace,
		indent:     w.indentLevel() + 1,
	}
}

func (w *Writer) BlankLine() {
	w.Append(BlankLine{})
}

func (w *Writer) Comment(text string) {
	if !strings.HasPrefix(text, "# ") {
		text = "# " + text
	}
	w.Append(Comment{
		Text: text,
	})
}

func (w *Writer) FileReference(path string) {
	w.Append(FileReference{
		Path: path,
	})
}

func (w *Writer) LanguageSystem(script, language string) {
	w.Append(LanguageSystem{
		Script:   script,
		Language: language,
	})
}

func (w *Writer) Script(name string) {
	w.Append(Script{
		Name: name,
	})
	w.inScript = true
	w.inLanguage = false
}

// Language appends a language statement; an empty name means dflt.
func (w *Writer) Language(name string, includeDefault bool) {
	w.Append(Language{
		Name:           name,
		IncludeDefault: includeDefault,
	})
	w.inLanguage = true
}

func (w *Writer) ClassDefinition(name string, members Member) {
	w.Append(ClassDefinition{
		Name:    name,
		Members: members,
	})
}

func (w *Writer) MarkClassDefinition(members Member, anchor Anchor, name string) {
	w.Append(MarkClassDefinition{
		Members: members,
		Anchor:  anchor,
		Name:    name,
	})
}

// Feature appends a feature block and returns the writer for its body.
func (w *Writer) Feature(name string) *Writer {
	child := w.child()
	w.Append(Feature{
		Name:   name,
		Writer: child,
	})
	return child
}

// Lookup appends a lookup block and returns the writer for its body.
func (w *Writer) Lookup(name string) *Writer {
	child := w.child()
	w.Append(Lookup{
		Name:   name,
		Writer: child,
	})
	return child
}

func (w *Writer) LookupFlag(flags ...string) {
	w.Append(LookupFlag{
		Flags: flags,
	})
}

func (w *Writer) FeatureReference(name string) {
	w.Append(FeatureReference{
		Name: name,
	})
}

func (w *Writer) LookupReference(name string) {
	w.Append(LookupReference{
		Name: name,
	})
}

func (w *Writer) Substitution(sub Substitution) {
	w.Append(sub)
}

func (w *Writer) IgnoreSubstitution(target, backtrack, lookahead Sequence) {
	w.Append(Substitution{
		Target:    target,
		Backtrack: backtrack,
		Lookahead: lookahead,
	})
}

func (w *Writer) PositionSingle(pos PositionSingle) {
	w.Append(pos)
}

func (w *Writer) IgnorePositionSingle(target, backtrack, lookahead Sequence) {
	w.Append(PositionSingle{
		Target:    target,
		Backtrack: backtrack,
		Lookahead: lookahead,
	})
}

func (w *Writer) PositionPair(pos PositionPair) {
	w.Append(pos)
}

func (w *Writer) StylisticSetNames(names ...NameEntry) {
	w.Append(StylisticSetNames{
		Names: names,
	})
}
