// Package guide provides the embedded pages shown by "docrec guide".
package guide

import (
	"embed"
	"strings"
)

//go:embed *.md
var files embed.FS

// Main is the page shown when no name is given.
const Main = "guide"

// Get returns the content of a guide page by name. If name is empty the
// main page is returned.
func Get(name string) (string, error) {
	if name == "" {
		name = Main
	}
	data, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available topic names, excluding the main page.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != Main {
			names = append(names, name)
		}
	}
	return names, nil
}
