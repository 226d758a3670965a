// Package catalog holds the templates a generated project is rendered from.
//
// The catalog is an embedded catalog.yaml manifest plus a templates/ tree of
// text/template files. Each manifest entry is keyed by an identifier; file
// entries render through a pure function of Data, so rendering the same
// entry with the same Data always yields byte-identical output.
package catalog
