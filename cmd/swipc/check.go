package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swipc/internal/diagfmt"
	"swipc/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Check every definition file of a project",
	Long: `Check locates the project manifest (swipc.toml), parses every
registered definition directory in parallel, and reports all diagnostics`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	manifest, found, err := loadProjectManifest(startDir)
	if err != nil {
		return err
	}

	// without a manifest, treat the argument as one definition directory
	defDirs := []string{startDir}
	if found {
		defDirs = manifest.DefDirs()
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("swipc")
		if err != nil {
			// a broken cache dir must not break checking
			cache = nil
		}
	}

	color := useColor(cmd, os.Stderr)
	failed := false
	checked := 0

	for _, dir := range defDirs {
		fileSet, results, err := driver.ParseDir(cmd.Context(), dir, maxDiagnostics(cmd), jobs, cache)
		if err != nil {
			return fmt.Errorf("checking %s: %w", dir, err)
		}

		for _, res := range results {
			checked++
			if res.Cached {
				if !res.CachedClean {
					failed = true
					if res.CachedDiags != "" {
						fmt.Fprintln(os.Stderr, res.CachedDiags)
					}
				}
				continue
			}

			if res.Bag.Len() > 0 {
				res.Bag.Sort()
				diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
					Color:      color,
					ShowLabels: true,
				})
			}
			hasErrors := res.Bag.HasErrors()
			if hasErrors {
				failed = true
			}

			if cache != nil {
				itemCount := 0
				if res.File != nil {
					itemCount = len(res.File.Items)
				}
				file := fileSet.Get(res.FileID)
				_ = cache.Put(file.Hash, &driver.DiskPayload{
					Path:       res.Path,
					ItemCount:  itemCount,
					HasErrors:  hasErrors,
					ShortDiags: diagfmt.FormatShort(res.Bag, fileSet),
				})
			}
		}
	}

	fmt.Fprintf(os.Stdout, "checked %d file(s)\n", checked)
	if failed {
		os.Exit(1)
	}
	return nil
}
