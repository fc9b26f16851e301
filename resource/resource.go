/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resource

// Resource is a single exportable item.
type Resource interface {
	// Name returns the resource's type name, e.g. "User".
	Name() string

	// Resolve returns the resource's resolved data.
	Resolve() *Data
}

// Collection is an ordered set of resources of one type.
type Collection interface {
	// Collects returns the type name of the collected resources,
	// e.g. "UserResource".
	Collects() string

	// Items returns the collected resources in order.
	Items() []Resource
}

// Item is a Resource backed by already-resolved data.
type Item struct {
	TypeName string
	Fields   *Data
}

// NewItem creates an Item with the given type name and data.
func NewItem(typeName string, data *Data) *Item {
	return &Item{TypeName: typeName, Fields: data}
}

// Name implements Resource.
func (i *Item) Name() string { return i.TypeName }

// Resolve implements Resource.
func (i *Item) Resolve() *Data {
	if i.Fields == nil {
		return New()
	}
	return i.Fields
}

// List is a Collection of resources.
type List struct {
	TypeName  string
	Resources []Resource
}

// NewList creates a List collecting resources of the given type.
func NewList(typeName string, resources ...Resource) *List {
	return &List{TypeName: typeName, Resources: resources}
}

// ListOf wraps each data value in an Item of the given type.
func ListOf(typeName string, rows ...*Data) *List {
	l := &List{TypeName: typeName, Resources: make([]Resource, 0, len(rows))}
	for _, row := range rows {
		l.Resources = append(l.Resources, NewItem(typeName, row))
	}
	return l
}

// Collects implements Collection.
func (l *List) Collects() string { return l.TypeName }

// Items implements Collection.
func (l *List) Items() []Resource { return l.Resources }
