// Package config provides the naming conventions that decide which files
// are tests and how a test maps back to its source.
//
// # Settings File
//
// Settings are read from settings.yaml (or .yml, .toml, .json) in the
// current directory, then from ~/.config/testswitch. The file holds four
// string lists, all optional:
//
//	version: 1
//	prefixes: [test_]
//	suffixes: [_test, _spec]
//	source_extensions: [py, js]
//	test_extensions: [py, js]
//
// Missing keys default to empty lists. Every entry is lowercased on load, so
// matching is case-insensitive. An empty extension list accepts any
// extension.
//
// # Environment
//
// Each key can be overridden with TESTSWITCH_<KEY>, for example
// TESTSWITCH_SUFFIXES="_test,_spec".
//
// # Loading
//
//	config.Init()
//	cfg, err := config.Load("")
package config
