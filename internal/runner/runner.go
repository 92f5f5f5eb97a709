package runner

import (
	"fmt"
	"os"

	"torshi/pkg/color"
	"torshi/pkg/interp"
	"torshi/pkg/lexer"
	"torshi/pkg/vm"

	"github.com/charmbracelet/log"
	"github.com/goforj/godump"
)

type Runner struct {
	Help        bool   // Show help message
	Verbose     bool   // Enable verbose output
	NoColor     bool   // Disable colored output
	Bytecode    bool   // Run the bytecode VM instead of the interpreter
	MaxSteps    int    // Step limit for bytecode runs (0 = unlimited)
	SourceFile  string // Path to an interpreter source file
	ProgramFile string // Path to a YAML bytecode program file
}

// Run dispatches on the configured mode: bytecode VM, source file
// interpretation, or the interactive prompt.
func (opts *Runner) Run() error {
	if opts.Bytecode {
		return opts.runBytecode()
	}

	if opts.SourceFile != "" {
		return opts.runFile()
	}

	return opts.runPrompt()
}

// runFile interprets a source file
func (opts *Runner) runFile() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		log.Fatal("Failed to read file", "file", opts.SourceFile, "error", err)
	}

	return opts.interpret(string(input))
}

// interpret runs one source buffer through the expression interpreter.
// A failure aborts the run and is presented as text; nothing after the
// faulting statement executes.
func (opts *Runner) interpret(source string) error {
	if opts.Verbose {
		fmt.Println(color.GreenText("=== Token Stream ==="))
		godump.Dump(lexer.Tokenize(source))
	}

	it := interp.New()
	if err := it.Interpret(source); err != nil {
		fmt.Fprintln(os.Stderr, color.Error(err.Error()))
		return fmt.Errorf("interpretation failed: %w", err)
	}

	return nil
}

// runBytecode loads and runs a bytecode program: from a YAML file when one
// is given, otherwise the built-in demo.
func (opts *Runner) runBytecode() error {
	var (
		lines  []string
		labels []string
	)

	if opts.ProgramFile != "" {
		log.Info("Loading program", "file", opts.ProgramFile)

		file, err := LoadProgramFile(opts.ProgramFile)
		if err != nil {
			return fmt.Errorf("loading program failed: %w", err)
		}

		lines = file.Program
		labels = file.Labels
	} else {
		lines = DemoProgram
	}

	machine := vm.New(vm.WithMaxSteps(opts.MaxSteps))
	if err := machine.Load(lines); err != nil {
		fmt.Fprintln(os.Stderr, color.Error(err.Error()))
		return fmt.Errorf("loading bytecode failed: %w", err)
	}

	for _, name := range labels {
		machine.DefineLabel(name)
	}

	if opts.Verbose {
		fmt.Println(color.GreenText("=== Decoded Program ==="))
		for i, in := range machine.Program() {
			fmt.Printf("%s: %s\n", color.CyanText(fmt.Sprintf("%d", i)), color.YellowText(in.String()))
		}
		godump.Dump(machine.Labels())
	}

	fmt.Println(color.GreenText("\n=== Program Output ==="))
	if err := machine.Run(); err != nil {
		fmt.Fprintln(os.Stderr, color.Error(err.Error()))
		return fmt.Errorf("execution failed: %w", err)
	}

	return nil
}
