// Package maplib provides a small built-in catalog of known controller
// contexts. The conversion core never consults it; it exists so the CLI can
// pick sensible per-family quirks (URI routing, device-descriptor blocks)
// from the controller named in a canonical map.
package maplib
