// Package paths resolves where testswitch keeps its settings.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. The settings file lives in
// <ConfigHome>/testswitch/settings.<ext>, where ext is one of yaml, yml, toml
// or json. A settings file in the current directory takes precedence, and
// $TESTSWITCH_CONFIG_DIR replaces the XDG location entirely:
//
//	paths.ConfigDir()           // ~/.config/testswitch
//	paths.SettingsFile("toml")  // ~/.config/testswitch/settings.toml
package paths
