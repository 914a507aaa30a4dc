package scripts

import (
	"fmt"
	"slices"

	"github.com/typesupply/feafofum/feas"
	"go.starlark.net/starlark"
)

// WriterValue exposes a feas.Writer to scripts.
type WriterValue struct {
	writer *feas.Writer
}

var _ starlark.HasAttrs = new(WriterValue)

func NewWriterValue(w *feas.Writer) *WriterValue {
	return &WriterValue{
		writer: w,
	}
}

func (v *WriterValue) Writer() *feas.Writer {
	return v.writer
}

func (v *WriterValue) String() string {
	return fmt.Sprintf("<writer indent=%d>", v.writer.Indent())
}

func (v *WriterValue) Type() string {
	return "writer"
}

func (v *WriterValue) Freeze() {}

func (v *WriterValue) Truth() starlark.Bool {
	return starlark.True
}

func (v *WriterValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: writer")
}

func (v *WriterValue) Attr(name string) (starlark.Value, error) {
	method, ok := writerMethods[name]
	if !ok {
		return nil, nil
	}
	return starlark.NewBuiltin(name, method).BindReceiver(v), nil
}

func (v *WriterValue) AttrNames() []string {
	names := make([]string, 0, len(writerMethods))
	for name := range writerMethods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type builtinFunc = func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// method adapts fn to a builtin bound to a WriterValue
func method(fn func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return fn(b.Receiver().(*WriterValue).writer, b, args, kwargs)
	}
}

var writerMethods map[string]builtinFunc

func init() {
	writerMethods = map[string]builtinFunc{

		"write": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.String(w.Render()), nil
		}),

		"blankLine": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			w.BlankLine()
			return starlark.None, nil
		}),

		"comment": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "comment", &text); err != nil {
				return nil, err
			}
			w.Comment(text)
			return starlark.None, nil
		}),

		"fileReference": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var path string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "path", &path); err != nil {
				return nil, err
			}
			w.FileReference(path)
			return starlark.None, nil
		}),

		"languageSystem": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var script, language string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "script", &script, "language", &language); err != nil {
				return nil, err
			}
			w.LanguageSystem(script, language)
			return starlark.None, nil
		}),

		"script": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			w.Script(name)
			return starlark.None, nil
		}),

		"language": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name starlark.Value = starlark.None
			includeDefault := true
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name?", &name, "includeDefault?", &includeDefault); err != nil {
				return nil, err
			}
			var str string
			if name != starlark.None {
				s, ok := starlark.AsString(name)
				if !ok {
					return nil, fmt.Errorf("%s: name: want string or None, got %s", b.Name(), name.Type())
				}
				str = s
			}
			w.Language(str, includeDefault)
			return starlark.None, nil
		}),

		"classDefinition": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var members starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "members", &members); err != nil {
				return nil, err
			}
			member, err := toMember(members)
			if err != nil {
				return nil, fmt.Errorf("%s: members: %w", b.Name(), err)
			}
			w.ClassDefinition(name, member)
			return starlark.None, nil
		}),

		"markClassDefinition": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var members, anchor starlark.Value
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "members", &members, "anchor", &anchor, "name", &name); err != nil {
				return nil, err
			}
			member, err := toMember(members)
			if err != nil {
				return nil, fmt.Errorf("%s: members: %w", b.Name(), err)
			}
			numbers, err := toNumbers(anchor, 2)
			if err != nil {
				return nil, fmt.Errorf("%s: anchor: %w", b.Name(), err)
			}
			w.MarkClassDefinition(member, feas.Anchor{X: numbers[0], Y: numbers[1]}, name)
			return starlark.None, nil
		}),

		"feature": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			return NewWriterValue(w.Feature(name)), nil
		}),

		"lookup": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			return NewWriterValue(w.Lookup(name)), nil
		}),

		"lookupflag": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var flags starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "flags", &flags); err != nil {
				return nil, err
			}
			strs, err := toStrings(flags)
			if err != nil {
				return nil, fmt.Errorf("%s: flags: %w", b.Name(), err)
			}
			w.LookupFlag(strs...)
			return starlark.None, nil
		}),

		"featureReference": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			w.FeatureReference(name)
			return starlark.None, nil
		}),

		"lookupReference": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			w.LookupReference(name)
			return starlark.None, nil
		}),

		"substitution": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var target, replacement starlark.Value
			var backtrack, lookahead starlark.Value = starlark.None, starlark.None
			var choice bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"target", &target,
				"substitution", &replacement,
				"backtrack?", &backtrack,
				"lookahead?", &lookahead,
				"choice?", &choice,
			); err != nil {
				return nil, err
			}
			rule, err := toRule(target, backtrack, lookahead)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			repl, err := toSequence(replacement)
			if err != nil {
				return nil, fmt.Errorf("%s: substitution: %w", b.Name(), err)
			}
			w.Substitution(feas.Substitution{
				Target:      rule.target,
				Replacement: repl,
				Backtrack:   rule.backtrack,
				Lookahead:   rule.lookahead,
				Choice:      choice,
			})
			return starlark.None, nil
		}),

		"ignoreSubstitution": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var target starlark.Value
			var backtrack, lookahead starlark.Value = starlark.None, starlark.None
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"target", &target,
				"backtrack?", &backtrack,
				"lookahead?", &lookahead,
			); err != nil {
				return nil, err
			}
			rule, err := toRule(target, backtrack, lookahead)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			w.IgnoreSubstitution(rule.target, rule.backtrack, rule.lookahead)
			return starlark.None, nil
		}),

		"positionSingle": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var target, value starlark.Value
			var backtrack, lookahead starlark.Value = starlark.None, starlark.None
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"target", &target,
				"value", &value,
				"backtrack?", &backtrack,
				"lookahead?", &lookahead,
			); err != nil {
				return nil, err
			}
			rule, err := toRule(target, backtrack, lookahead)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			record, err := toValueRecord(value)
			if err != nil {
				return nil, fmt.Errorf("%s: value: %w", b.Name(), err)
			}
			w.PositionSingle(feas.PositionSingle{
				Target:    rule.target,
				Value:     record,
				Backtrack: rule.backtrack,
				Lookahead: rule.lookahead,
			})
			return starlark.None, nil
		}),

		"ignorePositionSingle": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var target starlark.Value
			var backtrack, lookahead starlark.Value = starlark.None, starlark.None
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"target", &target,
				"backtrack?", &backtrack,
				"lookahead?", &lookahead,
			); err != nil {
				return nil, err
			}
			rule, err := toRule(target, backtrack, lookahead)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			w.IgnorePositionSingle(rule.target, rule.backtrack, rule.lookahead)
			return starlark.None, nil
		}),

		"positionPair": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var target, value starlark.Value
			var backtrack, lookahead starlark.Value = starlark.None, starlark.None
			var enumerate bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"target", &target,
				"value", &value,
				"backtrack?", &backtrack,
				"lookahead?", &lookahead,
				"enumerate?", &enumerate,
			); err != nil {
				return nil, err
			}
			rule, err := toRule(target, backtrack, lookahead)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			record, err := toValueRecord(value)
			if err != nil {
				return nil, fmt.Errorf("%s: value: %w", b.Name(), err)
			}
			if record == nil && enumerate {
				// enum pos needs a value
				return nil, fmt.Errorf("%s: enumerate requires a value", b.Name())
			}
			w.PositionPair(feas.PositionPair{
				Target:    rule.target,
				Value:     record,
				Backtrack: rule.backtrack,
				Lookahead: rule.lookahead,
				Enumerate: enumerate,
			})
			return starlark.None, nil
		}),

		"stylisticSetNames": method(func(w *feas.Writer, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			entries := make([]feas.NameEntry, 0, len(args))
			for i, arg := range args {
				entry, err := toNameEntry(arg)
				if err != nil {
					return nil, fmt.Errorf("%s: argument %d: %w", b.Name(), i+1, err)
				}
				entries = append(entries, entry)
			}
			w.StylisticSetNames(entries...)
			return starlark.None, nil
		}),
	}
}
