package assets

import "embed"

// BatThemes holds the Rosé Pine syntax themes installed into bat's themes directory.
//
//go:embed bat/*.tmTheme
var BatThemes embed.FS

// BatThemesDir is the directory inside BatThemes holding the theme files.
const BatThemesDir = "bat"
