package main

import (
	"path/filepath"
	"strings"
)

// outputPath names the cleaned file. It goes in the input's directory
// unless name is an absolute path. An empty name gives <input>_Clean.svg,
// and ".svg" is appended to a name that lacks it.
func outputPath(input, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		base := filepath.Base(input)
		name = strings.TrimSuffix(base, filepath.Ext(base)) + "_Clean"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".svg") {
		name += ".svg"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(filepath.Dir(input), name)
}
