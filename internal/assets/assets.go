// Package assets holds the python probe snippets and snapshot
// templates as versioned files rather than string literals, so they
// can be inspected and tested on their own.
package assets

import "embed"

// Snippets are short python programs run through the command runner.
// Each prints exactly one JSON object on stdout.
//
//go:embed snippets/*.py
var Snippets embed.FS

// Templates are the static and templated snapshot artifacts.
//
//go:embed templates
var Templates embed.FS

// Snippet returns the named snippet's source. Panics on unknown
// names; the set is fixed at compile time.
func Snippet(name string) []byte {
	data, err := Snippets.ReadFile("snippets/" + name)
	if err != nil {
		panic("unknown snippet " + name)
	}
	return data
}

// Template returns the named template file's content. Panics on
// unknown names; the set is fixed at compile time.
func Template(name string) []byte {
	data, err := Templates.ReadFile("templates/" + name)
	if err != nil {
		panic("unknown template " + name)
	}
	return data
}
