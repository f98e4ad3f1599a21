package feature

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// flagsFile is the on-disk shape of a feature flag file:
//
//	flags:
//	  - name: beta-reports
//	    enabled: true
//	    disabled_tenants: [tenant-123]
type flagsFile struct {
	Flags []Flag `yaml:"flags"`
}

// LoadFile reads feature flags from a YAML file. A missing `flags` key
// yields an empty set, not an error, so a fresh deployment can start from
// an empty file.
func LoadFile(path string) ([]Flag, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feature flags file: %w", err)
	}
	return parseFlags(content)
}

func parseFlags(content []byte) ([]Flag, error) {
	var file flagsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Join(ErrInvalidFlag, err)
	}
	return file.Flags, nil
}
