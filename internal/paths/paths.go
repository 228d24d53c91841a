package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "testswitch"

// ConfigDirEnv overrides the settings directory when set.
const ConfigDirEnv = "TESTSWITCH_CONFIG_DIR"

// SettingsName is the base name (without extension) of the settings file.
const SettingsName = "settings"

// ErrUnsupportedFormat indicates a settings file format we cannot write.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// settingsFormats lists the file formats accepted for the settings file, in
// the order they are preferred when more than one exists.
var settingsFormats = []string{"yaml", "yml", "toml", "json"}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the testswitch settings file.
// $TESTSWITCH_CONFIG_DIR wins over <ConfigHome>/testswitch.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// SettingsFile returns the settings file path for the given format
// (yaml, yml, toml or json).
func SettingsFile(format string) (string, error) {
	if !ValidFormat(format) {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return filepath.Join(ConfigDir(), SettingsName+"."+format), nil
}

// ValidFormat reports whether format is an accepted settings file extension.
func ValidFormat(format string) bool {
	for _, f := range settingsFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Formats returns the accepted settings file extensions.
func Formats() []string {
	out := make([]string, len(settingsFormats))
	copy(out, settingsFormats)
	return out
}

// SearchDirs returns the directories searched for an implicit settings
// file, highest precedence first.
func SearchDirs() []string {
	return []string{".", ConfigDir()}
}
