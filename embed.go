package folio

import "embed"

// EmbeddedAssets contains the page assets shipped with the binary:
// folio.js (reveal observer, typewriter, async contact form) and folio.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
