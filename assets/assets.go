// Package assets serves embedded static art by logical name.
package assets

import "embed"

//go:embed banner.txt
var content embed.FS

// Bytes returns the named asset, or nil if it does not exist.
func Bytes(name string) []byte {
	data, err := content.ReadFile(name)
	if err != nil {
		return nil
	}
	return data
}

// Banner is the header art for the TUI.
func Banner() string {
	return string(Bytes("banner.txt"))
}
