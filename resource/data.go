/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resource defines the resolved, ordered data that export drivers
// consume, along with the minimal resource and collection interfaces the
// drivers need to name their output.
package resource

import "slices"

// Data is an insertion-ordered mapping from field name to value.
//
// Values are scalars (string, numeric kinds, bool, nil), fmt.Stringer
// values, nested *Data mappings, []any sub-collections, or nested
// Resource and Collection values.
type Data struct {
	keys   []string
	values map[string]any
}

// Field is a single key/value pair used to build Data literals.
type Field struct {
	Key   string
	Value any
}

// New creates Data from the given fields in order.
func New(fields ...Field) *Data {
	d := &Data{values: make(map[string]any, len(fields))}
	for _, f := range fields {
		d.Set(f.Key, f.Value)
	}
	return d
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Set stores value under key. Overwriting an existing key keeps its
// original position.
func (d *Data) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d *Data) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Data) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes key if present.
func (d *Data) Delete(key string) {
	if d == nil {
		return
	}
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

// Keys returns a copy of the keys in insertion order.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Len returns the number of fields.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Each calls fn for every field in insertion order.
func (d *Data) Each(fn func(key string, value any)) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		fn(k, d.values[k])
	}
}

// Clone returns a shallow copy. Nested values are shared.
func (d *Data) Clone() *Data {
	c := &Data{values: make(map[string]any, d.Len())}
	d.Each(func(k string, v any) {
		c.Set(k, v)
	})
	return c
}
