package main

import "embed"

// layoutFS holds the bundled layouts, used when the asset directory has none
//
//go:embed assets/layouts
var layoutFS embed.FS
