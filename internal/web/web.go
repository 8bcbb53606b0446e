package web

import _ "embed"

// IndexHTML is the single page explorer UI. It talks to /search and /voice.
//
//go:embed index.html
var IndexHTML []byte
