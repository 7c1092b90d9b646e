package fixedstr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Options controls how storage is laid out and initialised.
type Options struct {
	// AllowUninit skips zero-filling the payload when a string is cleared;
	// only the size and the terminator are reset. Forced on by the
	// fixedstr_uninit build tag.
	AllowUninit bool `yaml:"allow_uninit" toml:"allow_uninit"`

	// NoNullOptimization always carries an explicit size field instead of
	// encoding the remaining capacity in the terminator slot. Forced on by
	// the fixedstr_nonullopt build tag.
	NoNullOptimization bool `yaml:"no_null_optimization" toml:"no_null_optimization"`
}

// DefaultOptions returns the options selected by build tags.
func DefaultOptions() Options {
	return Options{
		AllowUninit:        allowUninitMem,
		NoNullOptimization: noNullOptimization,
	}
}

// LoadOptionsYAML decodes options from YAML on top of DefaultOptions.
func LoadOptionsYAML(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		// empty, comment-only and bare "---" documents keep the defaults
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return opts, nil
}

// LoadOptionsTOML decodes options from TOML on top of DefaultOptions.
func LoadOptionsTOML(data []byte) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Options{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(names, ", "))
	}
	return opts, nil
}
