/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package xml provides the XML export driver.
//
// Resolved resource data is rebuilt into an element tree: field keys become
// PascalCase element names, nested mappings become nested elements, and
// sub-collections become a container element with one singular-named child
// per member. For example, a User with data
//
//	{"name": "Ada", "address": {"city": "London"}, "roles": ["admin"]}
//
// exports as
//
//	<User>
//	  <Name>Ada</Name>
//	  <Address>
//	    <City>London</City>
//	  </Address>
//	  <Roles>
//	    <Role>admin</Role>
//	  </Roles>
//	</User>
package xml

import (
	"fmt"

	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/naming"
	"bennypowers.dev/exporter/resource"
)

// DriverName is the registry id of the XML driver.
const DriverName = "xml"

// Configuration keys understood by the XML driver.
const (
	RootElementKey         = "root_element"
	PrettyPrintKey         = "pretty_print"
	IncludeSubResourcesKey = "include_sub_resources"
)

// Defaults returns the XML driver's built-in configuration.
func Defaults() driver.Config {
	return driver.Config{
		RootElementKey:         nil,
		PrettyPrintKey:         true,
		IncludeSubResourcesKey: true,
	}
}

// Exporter rebuilds resource data as an XML document.
type Exporter struct {
	*driver.Base

	rootElement         string
	prettyPrint         bool
	includeSubResources bool
}

// New creates an XML exporter with config merged over Defaults.
func New(config driver.Config) *Exporter {
	base := driver.NewBase(Defaults(), config)
	cfg := base.Config()
	return &Exporter{
		Base:                base,
		rootElement:         cfg.String(RootElementKey),
		prettyPrint:         cfg.Bool(PrettyPrintKey),
		includeSubResources: cfg.Bool(IncludeSubResourcesKey),
	}
}

// WithoutFields implements driver.Exporter.
func (e *Exporter) WithoutFields(fields ...string) driver.Exporter {
	e.SetIgnored(fields...)
	return e
}

// ExportItem implements driver.Exporter. The root element is the configured
// root_element, or the PascalCase resource type name.
func (e *Exporter) ExportItem(r resource.Resource) (string, error) {
	name := e.rootElement
	if name == "" {
		name = naming.ToPascalCase(r.Name())
	}

	root, err := newElement(name)
	if err != nil {
		return "", err
	}
	if err := e.dataToXML(e.Filter(r.Resolve(), false), root); err != nil {
		return "", err
	}
	return e.render(root)
}

// ExportCollection implements driver.Exporter. The root element is the
// configured root_element, or the pluralized PascalCase name of the
// collected type with any "Resource" suffix removed.
func (e *Exporter) ExportCollection(c resource.Collection) (string, error) {
	name := e.rootElement
	if name == "" {
		name = naming.ToPascalCase(naming.Pluralize(naming.ResourceBaseName(c.Collects())))
	}

	root, err := newElement(name)
	if err != nil {
		return "", err
	}
	if err := e.collectionToXML(c.Items(), root); err != nil {
		return "", err
	}
	return e.render(root)
}

func (e *Exporter) render(root *element) (string, error) {
	if e.prettyPrint {
		return indent(root)
	}
	return compact(root)
}

// dataToXML appends one element per field of data to parent.
func (e *Exporter) dataToXML(data *resource.Data, parent *element) error {
	for _, key := range data.Keys() {
		value, _ := data.Get(key)
		if err := e.valueToXML(naming.ToPascalCase(key), value, parent); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

// valueToXML appends value to parent under name. Nested mappings are always
// descended; sub-collections and sub-resources only when
// include_sub_resources is set. Values that are neither structural nor
// stringable are skipped.
func (e *Exporter) valueToXML(name string, value any, parent *element) error {
	switch v := value.(type) {
	case *resource.Data:
		child, err := parent.add(name)
		if err != nil {
			return err
		}
		return e.dataToXML(v, child)

	case []any:
		if !e.includeSubResources {
			return nil
		}
		child, err := parent.add(name)
		if err != nil {
			return err
		}
		return e.sequenceToXML(v, child)

	case resource.Collection:
		if !e.includeSubResources {
			return nil
		}
		child, err := parent.add(name)
		if err != nil {
			return err
		}
		return e.collectionToXML(v.Items(), child)

	case resource.Resource:
		if !e.includeSubResources {
			return nil
		}
		child, err := parent.add(name)
		if err != nil {
			return err
		}
		return e.dataToXML(e.Filter(v.Resolve(), false), child)
	}

	if driver.IsStringable(value) {
		return parent.addText(name, driver.ToString(value))
	}
	return nil
}

// collectionToXML appends each resource under parent as a child named by
// the singular form of parent, with its filtered data.
func (e *Exporter) collectionToXML(items []resource.Resource, parent *element) error {
	name := memberName(parent)
	for _, item := range items {
		child, err := parent.add(name)
		if err != nil {
			return err
		}
		if err := e.dataToXML(e.Filter(item.Resolve(), false), child); err != nil {
			return err
		}
	}
	return nil
}

// sequenceToXML appends each member under parent using the singular form of
// parent as the member element name.
func (e *Exporter) sequenceToXML(seq []any, parent *element) error {
	name := memberName(parent)
	for _, member := range seq {
		if err := e.valueToXML(name, member, parent); err != nil {
			return err
		}
	}
	return nil
}

func memberName(parent *element) string {
	return naming.ToPascalCase(naming.Singularize(parent.name))
}
