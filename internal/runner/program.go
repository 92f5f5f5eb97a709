package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProgramFile is a bytecode program on disk: the instruction listing plus
// optional labels to register past the end of the program.
type ProgramFile struct {
	Program []string `yaml:"program"`
	Labels  []string `yaml:"labels,omitempty"`
}

// LoadProgramFile reads and decodes a YAML bytecode program
func LoadProgramFile(path string) (*ProgramFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file ProgramFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(file.Program) == 0 {
		return nil, fmt.Errorf("%s: empty program", path)
	}

	return &file, nil
}

// DemoProgram exercises arithmetic, the heap, and a label jump
var DemoProgram = []string{
	"MOV R0 10",
	"MOV R1 5",
	"MUL R0 R1",
	"MOD R0 R1",
	"EXP R0 R1",
	"STORE R0 0",
	"LOAD R0 0",
	"PRINT R0",
	"JMP end",
	"end:",
	"PRINT R0",
}
