package config

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Override is a manual correction for a specific ISBN, patching known
// data-quality defects in provider records. Zero-valued fields leave the
// record untouched.
type Override struct {
	Binding string `json:"binding,omitempty"`
	Edition int    `json:"edition,omitempty"`
}

// loadOverrides reads the ISBN correction file. A missing or unset path is
// not an error; corrections are optional.
func loadOverrides(path string) (map[string]Override, error) {
	if path == "" {
		return map[string]Override{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]Override{}, nil
		}
		return nil, errors.WithStack(err)
	}

	overrides := map[string]Override{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, errors.Wrap(err, "failed to parse overrides file")
	}

	return overrides, nil
}
