// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// fileName is the config file looked up in the config directory and then
// in the working directory.
const fileName = ConfigFileName + "." + ConfigFileExt

// ConfigDir returns the argvkit configuration directory. ARGVKIT_CONFIG_DIR
// wins when set. Otherwise Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support and other systems use $XDG_CONFIG_HOME,
// defaulting to ~/.config.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	base, err := platformConfigBase()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

func platformConfigBase() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	}
}

// FilePath returns the config file Load would read for opts, whether or not
// it exists: the explicit file, or config.cue in the (overridden) config dir.
func FilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath.String(), nil
	}
	dir, err := opts.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// candidates lists the files Load tries, in order. An explicit file is the
// only candidate.
func (o LoadOptions) candidates() ([]string, error) {
	if o.ConfigFilePath != "" {
		return []string{o.ConfigFilePath.String()}, nil
	}
	dir, err := o.configDir()
	if err != nil {
		return nil, err
	}
	return []string{filepath.Join(dir, fileName), fileName}, nil
}

func (o LoadOptions) configDir() (string, error) {
	if o.ConfigDirPath != "" {
		return o.ConfigDirPath.String(), nil
	}
	return ConfigDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
