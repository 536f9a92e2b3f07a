package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// reads a json5 file into T, reporting os.ErrNotExist untouched so
// callers can tell "missing" apart from "malformed".
func readInto[T any](path string, out *T) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json5.Unmarshal(contents, out)
}

// reads a configuration file, `name` should come with a file extension.
// a sibling `<name>.local.<ext>` file, if present, is merged on top of
// the base file so deployments can override individual keys.
func ReadConfig[T any](name string) (T, error) {
	var out T

	ext := filepath.Ext(name)
	localName := fmt.Sprintf("%s.local%s", strings.TrimSuffix(name, ext), ext)

	baseErr := readInto(name, &out)
	if baseErr != nil && !os.IsNotExist(baseErr) {
		return out, baseErr
	}

	var local T
	localErr := readInto(localName, &local)
	if localErr != nil && !os.IsNotExist(localErr) {
		return out, localErr
	}
	if localErr == nil {
		err := mergo.Merge(&out, local, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localName)
	}

	if os.IsNotExist(baseErr) && os.IsNotExist(localErr) {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig but it walks up the filesystem from the cwd until it
// finds a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return zero, os.ErrNotExist
		}
		current = parent
	}
}
