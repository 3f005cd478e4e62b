package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/lexer"
	"github.com/mguinhos/akitac/internal/parser"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an Akita file and display the AST",
	Long: `Parse Akita source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use --dump-ast to show the full tree structure instead of the
round-tripped source text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	l := lexer.New(input)
	p := parser.New(l)

	decls, err := p.Parse()
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		for _, decl := range decls {
			dumpNode(decl, 0)
		}
		return nil
	}

	for _, decl := range decls {
		fmt.Println(decl.String())
	}

	return nil
}

func dumpNode(node ast.Node, indent int) {
	pad := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Def:
		fmt.Printf("%sDef %s(%s)\n", pad, n.Name.Value, argNames(n.Args))
		dumpNode(n.Body, indent+1)
	case *ast.Class:
		fmt.Printf("%sClass %s\n", pad, n.Name.Value)
		dumpNode(n.Body, indent+1)
	case *ast.Body:
		for _, line := range n.Lines {
			dumpNode(line, indent)
		}
	case *ast.If:
		fmt.Printf("%sIf %s\n", pad, n.Operand.String())
		dumpNode(n.Body, indent+1)
	case *ast.Elif:
		fmt.Printf("%sElif %s\n", pad, n.Operand.String())
		dumpNode(n.Body, indent+1)
	case *ast.Else:
		fmt.Printf("%sElse\n", pad)
		dumpNode(n.Body, indent+1)
	case *ast.While:
		fmt.Printf("%sWhile %s\n", pad, n.Operand.String())
		dumpNode(n.Body, indent+1)
	case *ast.For:
		fmt.Printf("%sFor %s in %s\n", pad, n.Name.Value, n.Operand.String())
		dumpNode(n.Body, indent+1)
	case *ast.Set:
		fmt.Printf("%sSet %s\n", pad, n.String())
	case *ast.Return:
		fmt.Printf("%sReturn %s\n", pad, n.Operand.String())
	case *ast.Import:
		fmt.Printf("%sImport %s\n", pad, n.String())
	case *ast.Comment:
		fmt.Printf("%sComment %q\n", pad, n.Text)
	case *ast.KeywordLine:
		fmt.Printf("%s%s\n", pad, n.String())
	case *ast.ExprStatement:
		fmt.Printf("%sExprStatement %s\n", pad, n.Expr.String())
	default:
		fmt.Printf("%s%T: %s\n", pad, node, node.String())
	}
}

func argNames(args []*ast.Name) string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Value
	}
	return strings.Join(names, ", ")
}
