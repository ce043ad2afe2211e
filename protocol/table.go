package protocol

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var tableYAML []byte

// Table is the protocol configuration table: for every supported version
// (and, for 2.0, grant type) it lists the known request types and their
// parameter sets. It is loaded from the embedded YAML once per process and
// is read-only afterwards.
type Table struct {
	Versions map[Version]VersionConfig `yaml:"versions"`
}

// VersionConfig holds the configuration of a single protocol version.
type VersionConfig struct {
	// SignMessage reports whether requests of this version carry a
	// cryptographic signature (true for 1.0/1.0a, false for 2.0).
	SignMessage bool `yaml:"sign_message"`

	// RequestTypes are the version-scoped request types. For 2.0 this
	// holds only protected_resource and refresh; the remaining types are
	// grant-scoped.
	RequestTypes map[string]ParamSet `yaml:"request_types"`

	// GrantTypes maps a 2.0 grant type to its request types.
	GrantTypes map[GrantType]map[string]ParamSet `yaml:"grant_types"`
}

var (
	loadOnce  sync.Once
	loaded    *Table
	loadError error
)

// Load parses and validates the embedded protocol table. The result is
// cached; subsequent calls return the same table.
func Load() (*Table, error) {
	loadOnce.Do(func() {
		loaded, loadError = parse(tableYAML)
	})
	return loaded, loadError
}

func parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("protocol table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// validate checks the invariants the rest of the module relies on: every
// version resolves at least one request type, and every request type the
// public API names has a row somewhere.
func (t *Table) validate() error {
	if len(t.Versions) == 0 {
		return fmt.Errorf("protocol table: no versions defined")
	}
	for version, cfg := range t.Versions {
		if len(cfg.RequestTypes) == 0 && len(cfg.GrantTypes) == 0 {
			return fmt.Errorf("protocol table: version %q defines no request types", version)
		}
		for name, set := range cfg.RequestTypes {
			if err := validateParamSet(version, name, set); err != nil {
				return err
			}
		}
		for grant, types := range cfg.GrantTypes {
			if len(types) == 0 {
				return fmt.Errorf("protocol table: version %q grant %q defines no request types", version, grant)
			}
			for name, set := range types {
				if err := validateParamSet(version, name, set); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateParamSet(version Version, requestType string, set ParamSet) error {
	for _, names := range [][]string{set.Required, set.API, set.Optional} {
		for _, name := range names {
			if name == "" {
				return fmt.Errorf("protocol table: version %q type %q lists an empty parameter name", version, requestType)
			}
		}
	}
	return nil
}

// HasVersion reports whether the table has a configuration section for the
// given version.
func (t *Table) HasVersion(version Version) bool {
	_, ok := t.Versions[version]
	return ok
}

// SignMessage reports whether requests of the given version must be signed.
func (t *Table) SignMessage(version Version) bool {
	return t.Versions[version].SignMessage
}

// Lookup resolves the parameter set for a request type. For 2.0 the
// version-scoped types (protected_resource, refresh) take precedence over
// the grant-scoped ones; everything else resolves under the active grant
// type. The boolean reports whether a row exists.
func (t *Table) Lookup(version Version, grant GrantType, requestType string) (ParamSet, bool) {
	cfg, ok := t.Versions[version]
	if !ok {
		return ParamSet{}, false
	}
	if set, ok := cfg.RequestTypes[requestType]; ok {
		return set, true
	}
	if types, ok := cfg.GrantTypes[grant]; ok {
		if set, ok := types[requestType]; ok {
			return set, true
		}
	}
	return ParamSet{}, false
}
