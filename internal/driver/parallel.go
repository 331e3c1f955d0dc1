package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"swipc/internal/ast"
	"swipc/internal/diag"
	"swipc/internal/parser"
	"swipc/internal/source"
)

// DirResult holds the outcome for one file of a directory run. Cached
// results carry the rendered short diagnostics from a previous run instead
// of a live bag.
type DirResult struct {
	Path   string
	FileID source.FileID
	File   *ast.IpcFile
	Bag    *diag.Bag

	Cached      bool
	CachedClean bool
	CachedDiags string
}

// listDefFiles returns the sorted list of *.id files under dir.
func listDefFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".id") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ParseDir parses every *.id file under dir. Files are loaded sequentially
// into one FileSet, then parsed in parallel by independent invocations —
// the FileSet is read-only by the time the workers start. jobs <= 0 means
// GOMAXPROCS. A non-nil cache short-circuits files whose content hash was
// seen before.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) (*source.FileSet, []DirResult, error) {
	files, err := listDefFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	results := make([]DirResult, len(files))
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, err
		}
		results[i] = DirResult{Path: path, FileID: id}
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range results {
		g.Go(func() error {
			res := &results[i]
			file := fileSet.Get(res.FileID)

			if cache != nil {
				if payload, ok := cache.Get(file.Hash); ok && payload.Schema == diskCacheSchemaVersion {
					res.Cached = true
					res.CachedClean = !payload.HasErrors
					res.CachedDiags = payload.ShortDiags
					return nil
				}
			}

			ipcFile, bag := parser.ParseFile(file, parser.Options{MaxDiagnostics: maxDiagnostics})
			res.File = ipcFile
			res.Bag = bag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
