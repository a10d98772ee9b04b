// FILE: lixenwraith/kvconfig/discovery.go
package kvconfig

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions configures config file discovery
type DiscoveryOptions struct {
	// File name to look for, including extension (default DefaultPath)
	Name string

	// Directory name under the XDG config roots
	AppName string

	// Custom search directories, checked first
	Paths []string

	// Whether to search in current directory
	UseCurrentDir bool

	// Whether to search in XDG config directories
	UseXDG bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          DefaultPath,
		AppName:       appName,
		UseCurrentDir: true,
		UseXDG:        true,
	}
}

// Discover returns the first existing regular file named opts.Name in the
// search directories: opts.Paths, then the working directory, then the XDG
// config directories. It returns ErrConfigNotFound when no file exists.
func Discover(opts DiscoveryOptions) (string, error) {
	name := opts.Name
	if name == "" {
		name = DefaultPath
	}

	for _, dir := range searchDirs(opts) {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", ErrConfigNotFound
}

// searchDirs lists the discovery directories in priority order
func searchDirs(opts DiscoveryOptions) []string {
	var dirs []string

	dirs = append(dirs, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}

	if opts.UseXDG && opts.AppName != "" {
		dirs = append(dirs, getXDGConfigPaths(opts.AppName)...)
	}

	return dirs
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	var paths []string

	// XDG_CONFIG_HOME
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// XDG_CONFIG_DIRS
	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		// Default system paths
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
