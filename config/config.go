// Package config loads the compile-time configuration recognized by the
// lowering core: the ordered list of entry points whose functions receive
// an automatic call to __main_init (spec.md §6).
package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

// EntryPoint names a shader-stage entry function. Only Name is consumed
// by the lowering core; the remaining fields exist for a future backend
// to read (spec.md §6 says only Name is consumed here).
type EntryPoint struct {
	Name  string `toml:"name"`
	Stage string `toml:"stage,omitempty"`
}

// CompileOptions is the configuration surface the lowering core reads.
type CompileOptions struct {
	EntryPoints []EntryPoint `toml:"entry-points"`
}

// EntryPointNames returns the set of configured entry-point names, for
// the program driver's membership test (spec.md §4.7 phase 6).
func (o *CompileOptions) EntryPointNames() map[string]bool {
	names := make(map[string]bool, len(o.EntryPoints))
	for _, ep := range o.EntryPoints {
		names[ep.Name] = true
	}
	return names
}

// tomlOptions is the on-disk shape of a compile-options manifest.
type tomlOptions struct {
	Compile *CompileOptions `toml:"compile"`
}

// Load reads and validates the compile options manifest at path, the
// same role github.com/pelletier/go-toml plays loading the teacher
// corpus's chai module manifest (ComedicChimera-chai/src/mods/load.go).
func Load(path string) (*CompileOptions, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	to := &tomlOptions{}
	if err := toml.Unmarshal(buf, to); err != nil {
		return nil, err
	}
	if to.Compile == nil {
		return &CompileOptions{}, nil
	}
	return to.Compile, nil
}
