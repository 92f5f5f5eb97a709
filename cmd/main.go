package main

import (
	"flag"
	"fmt"
	"os"

	"torshi/internal/logger"
	"torshi/internal/runner"
	"torshi/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the torshi interpreter and VM.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Bytecode, "b", false, "Run a bytecode program (built-in demo unless a file is given)")
	flag.IntVar(&options.MaxSteps, "s", 0, "Step limit for bytecode runs (0 = unlimited)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("With no file, reads a program interactively until a blank line.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		if options.Bytecode {
			options.ProgramFile = args[0]
		} else {
			options.SourceFile = args[0]
		}
	}

	if err := options.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
