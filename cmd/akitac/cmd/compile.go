package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mguinhos/akitac/internal/codegen"
	"github.com/mguinhos/akitac/internal/compiler"
	"github.com/mguinhos/akitac/internal/errors"
	"github.com/mguinhos/akitac/internal/units"
	"github.com/spf13/cobra"
)

var (
	outputFile     string
	searchPaths    []string
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile an Akita file to C",
	Long: `Compile an Akita program to portable C and save it as a .c file.

Imports are resolved relative to the source file's directory and any
additional -I search paths, recursively compiling each module to its
own <module>.py.c file alongside the source.

Examples:
  # Compile a script to C
  akitac compile script.py

  # Compile with a custom output file
  akitac compile script.py -o output.c

  # Add extra directories to the module search path
  akitac compile script.py -I lib -I vendor`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.c)")
	compileCmd.Flags().StringArrayVarP(&searchPaths, "search-path", "I", nil, "additional module search path (repeatable)")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileScript(_ *cobra.Command, args []string) error {
	filename := args[0]

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	paths := append([]string{filepath.Dir(filename)}, searchPaths...)
	reg := units.NewRegistry(paths)
	ns := codegen.NewNamespace()

	output, err := compiler.CompileFile(filename, reg, ns)
	if err != nil {
		if compilerErr, ok := err.(*errors.CompilerError); ok {
			fmt.Fprint(os.Stderr, compilerErr.Format(true))
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("compilation failed")
		}
		return err
	}

	outFile := outputFile
	if outFile == "" {
		outFile = filename + ".c"
	}

	if err := os.WriteFile(outFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "C written to %s (%d bytes)\n", outFile, len(output))
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}

	return nil
}
