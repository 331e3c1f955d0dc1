package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swipc/internal/ast"
	"swipc/internal/diagfmt"
	"swipc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.id",
	Short: "Parse a definition file",
	Long:  `Parse checks one definition file and prints its items or the diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		switch format {
		case "json":
			if err := diagfmt.JSON(os.Stderr, result.Bag, result.FileSet, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
				return err
			}
		default:
			opts := diagfmt.PrettyOpts{
				Color:      useColor(cmd, os.Stderr),
				ShowLabels: true,
			}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		}
	}

	if result.File == nil {
		os.Exit(1)
	}

	for _, item := range result.File.Items {
		fmt.Fprintf(os.Stdout, "%s %s\n", itemKind(item), item.ItemName())
	}
	return nil
}

func itemKind(item ast.Item) string {
	switch item.(type) {
	case *ast.TypeAlias:
		return "type"
	case *ast.Struct:
		return "struct"
	case *ast.Enum:
		return "enum"
	case *ast.Bitflags:
		return "bitflags"
	case *ast.Interface:
		return "interface"
	}
	return "item"
}
