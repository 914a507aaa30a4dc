package scripts

import (
	"fmt"
	"strconv"

	"github.com/typesupply/feafofum/feas"
	"go.starlark.net/starlark"
)

func toStrings(v starlark.Value) ([]string, error) {
	if s, ok := starlark.AsString(v); ok {
		return []string{s}, nil
	}
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("want string or list of strings, got %s", v.Type())
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

// toMember maps a string to a glyph and a list of strings to a group
func toMember(v starlark.Value) (feas.Member, error) {
	if s, ok := starlark.AsString(v); ok {
		return feas.Glyph(s), nil
	}
	names, err := toStrings(v)
	if err != nil {
		return feas.Member{}, err
	}
	return feas.Group(names...), nil
}

// toSequence maps None to nil, a string to a one-glyph sequence and a list to one member per element
func toSequence(v starlark.Value) (feas.Sequence, error) {
	if v == starlark.None {
		return nil, nil
	}
	if s, ok := starlark.AsString(v); ok {
		return feas.Glyphs(s), nil
	}
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("want string, list or None, got %s", v.Type())
	}
	ret := feas.Sequence{}
	iter := iterable.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		member, err := toMember(elem)
		if err != nil {
			return nil, err
		}
		ret = append(ret, member)
	}
	return ret, nil
}

func toNumbers(v starlark.Value, n int) ([]float64, error) {
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("want %d numbers, got %s", n, v.Type())
	}
	var ret []float64
	iter := iterable.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		f, ok := starlark.AsFloat(elem)
		if !ok {
			return nil, fmt.Errorf("want number, got %s", elem.Type())
		}
		ret = append(ret, f)
	}
	if len(ret) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(ret))
	}
	return ret, nil
}

type rule struct {
	target    feas.Sequence
	backtrack feas.Sequence
	lookahead feas.Sequence
}

func toRule(target, backtrack, lookahead starlark.Value) (ret rule, err error) {
	ret.target, err = toSequence(target)
	if err != nil {
		return ret, fmt.Errorf("target: %w", err)
	}
	ret.backtrack, err = toSequence(backtrack)
	if err != nil {
		return ret, fmt.Errorf("backtrack: %w", err)
	}
	ret.lookahead, err = toSequence(lookahead)
	if err != nil {
		return ret, fmt.Errorf("lookahead: %w", err)
	}
	return ret, nil
}

// toValueRecord maps None to nil, a string to a literal and four numbers to a record
func toValueRecord(v starlark.Value) (*feas.ValueRecord, error) {
	if v == starlark.None {
		return nil, nil
	}
	if s, ok := starlark.AsString(v); ok {
		return feas.Literal(s), nil
	}
	if i, ok := v.(starlark.Int); ok {
		return feas.Literal(i.String()), nil
	}
	if f, ok := v.(starlark.Float); ok {
		return feas.Literal(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
	}
	numbers, err := toNumbers(v, 4)
	if err != nil {
		return nil, err
	}
	return feas.Record(numbers[0], numbers[1], numbers[2], numbers[3]), nil
}

func toNameEntry(v starlark.Value) (entry feas.NameEntry, err error) {
	mapping, ok := v.(starlark.Mapping)
	if !ok {
		return entry, fmt.Errorf("want dict, got %s", v.Type())
	}
	field := func(key string) (string, error) {
		value, found, err := mapping.Get(starlark.String(key))
		if err != nil {
			return "", err
		}
		if !found || value == starlark.None {
			return "", nil
		}
		if s, ok := starlark.AsString(value); ok {
			return s, nil
		}
		return value.String(), nil
	}
	if entry.Text, err = field("text"); err != nil {
		return
	}
	if entry.Platform, err = field("platform"); err != nil {
		return
	}
	if entry.Script, err = field("script"); err != nil {
		return
	}
	if entry.Language, err = field("language"); err != nil {
		return
	}
	return entry, nil
}
