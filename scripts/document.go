package scripts

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"
)

type pathDocument interface {
	Path() string
}

// DocumentValue returns the value scripts see as font.
// Go values are copied into Starlark, so one compilation must convert once and share the result
// for blocks to see each other's changes. Documents with a Path method get a path attribute.
func DocumentValue(doc any) starlark.Value {
	if v, ok := doc.(starlark.Value); ok {
		return v
	}
	value := toStarlarkValue(doc)
	if p, ok := doc.(pathDocument); ok {
		return &documentValue{
			value: value,
			path:  p.Path(),
		}
	}
	return value
}

// documentValue adds a path attribute to a converted document and forwards everything else.
type documentValue struct {
	value starlark.Value
	path  string
}

const pathAttr = "path"

var (
	_ starlark.HasAttrs    = new(documentValue)
	_ starlark.HasSetField = new(documentValue)
	_ starlark.HasSetKey   = new(documentValue)
	_ starlark.Iterable    = new(documentValue)
)

func (d *documentValue) String() string {
	return d.value.String()
}

func (d *documentValue) Type() string {
	return d.value.Type()
}

func (d *documentValue) Freeze() {
	d.value.Freeze()
}

func (d *documentValue) Truth() starlark.Bool {
	return d.value.Truth()
}

func (d *documentValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", d.Type())
}

func (d *documentValue) Attr(name string) (starlark.Value, error) {
	if name == pathAttr {
		return starlark.String(d.path), nil
	}
	if v, ok := d.value.(starlark.HasAttrs); ok {
		return v.Attr(name)
	}
	return nil, nil
}

func (d *documentValue) AttrNames() (names []string) {
	if v, ok := d.value.(starlark.HasAttrs); ok {
		names = append(names, v.AttrNames()...)
	}
	if !slices.Contains(names, pathAttr) {
		names = append(names, pathAttr)
	}
	slices.Sort(names)
	return
}

func (d *documentValue) SetField(name string, value starlark.Value) error {
	if v, ok := d.value.(starlark.HasSetField); ok && name != pathAttr {
		return v.SetField(name, value)
	}
	return starlark.NoSuchAttrError(fmt.Sprintf("%s has no settable field %s", d.Type(), name))
}

func (d *documentValue) Get(key starlark.Value) (starlark.Value, bool, error) {
	if v, ok := d.value.(starlark.Mapping); ok {
		return v.Get(key)
	}
	return nil, false, fmt.Errorf("%s is not indexable", d.Type())
}

func (d *documentValue) SetKey(key, value starlark.Value) error {
	if v, ok := d.value.(starlark.HasSetKey); ok {
		return v.SetKey(key, value)
	}
	return fmt.Errorf("%s does not support item assignment", d.Type())
}

func (d *documentValue) Iterate() starlark.Iterator {
	if v, ok := d.value.(starlark.Iterable); ok {
		return v.Iterate()
	}
	return emptyIterator{}
}

type emptyIterator struct{}

func (emptyIterator) Next(*starlark.Value) bool {
	return false
}

func (emptyIterator) Done() {}
