// Package pipelinefile loads pipeline descriptions from YAML files.
//
// A pipeline file lists pass names in execution order:
//
//	passes:
//	  - hello
//	  - print-opcodes
package pipelinefile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoPasses is returned for a file that names no passes.
var ErrNoPasses = errors.New("pipeline file names no passes")

// File is the decoded form of a pipeline file.
type File struct {
	Passes []string `yaml:"passes"`
}

// Load reads and decodes the named pipeline file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(f.Passes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPasses)
	}
	return &f, nil
}

// Pipeline renders the file as a pipeline description string.
func (f *File) Pipeline() string {
	return strings.Join(f.Passes, ",")
}
