// Package launch builds and resolves the subprocess launch configuration for
// the trading server.
package launch

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/errors"
)

// BinaryName is the name of the trading server binary searched for in PATH.
const BinaryName = "ethereum-trading-mcp"

// Config describes how the trading server subprocess is started: the command
// (or an empty string to trigger discovery), extra arguments, and the
// environment variables handed to the process.
type Config struct {
	// Command is the explicit path to the server binary.
	// If empty, Find is used to locate it.
	Command string

	// Args are additional command line arguments.
	Args []string

	// Env holds the environment variables set for the server process,
	// merged over the parent environment.
	Env map[string]string
}

// Environ returns the parent environment extended with the configured
// variables, sorted for deterministic ordering.
func (c *Config) Environ() []string {
	env := os.Environ()

	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, c.Env[k]))
	}

	return env
}

// Find locates the trading server binary.
//
// If explicit is non-empty it is used and only it. Otherwise the search order
// is the system PATH followed by common installation directories.
// Returns ServerNotFoundError listing the searched paths on failure.
func Find(log *slog.Logger, explicit string) (string, error) {
	if explicit != "" {
		log.Debug("Using explicit server path", "path", explicit)

		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}

		return "", &errors.ServerNotFoundError{SearchedPaths: []string{explicit}}
	}

	searchedPaths := make([]string, 0, 4)

	if path, err := exec.LookPath(BinaryName); err == nil {
		log.Debug("Found server binary in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	commonPaths := []string{
		filepath.Join("/usr/local/bin", BinaryName),
		filepath.Join("/usr/bin", BinaryName),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin", BinaryName))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)

		if _, err := os.Stat(path); err == nil {
			log.Debug("Found server binary at common path", "path", path)

			return path, nil
		}
	}

	log.Warn("Trading server binary not found", "searched_paths", searchedPaths)

	return "", &errors.ServerNotFoundError{SearchedPaths: searchedPaths}
}
