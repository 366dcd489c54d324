// Package file stores shotsearch settings in a TOML file, by default
// ~/.shotsearch/config.toml.
//
// Keys are flat dot-notation names ("results.path", "browse.limit") that map
// onto TOML tables when written.
package file
