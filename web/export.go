package web

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/runsha/sketchfolio/model"
	"github.com/runsha/sketchfolio/web/assets"
	cs "github.com/runsha/sketchfolio/web/components"
)

// IndexFile is the entry page of a static export; it shows the default section.
const IndexFile = "index.html"

// ExportFiles lists the page files Export writes, in order.
func ExportFiles() []string {
	files := []string{IndexFile}
	for _, section := range model.AllSections() {
		files = append(files, cs.ExportFileName(section))
	}

	return files
}

// Export renders every section of profile as static HTML into outDir and copies
// the assets next to them. progress is called after each page is written.
func Export(ctx context.Context, profile *model.Profile, outDir string, progress func(file string)) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", outDir, err)
	}

	// index.html is the initial load, so it uses a fresh selector.
	if err := exportPage(ctx, profile, model.NewSelector(), filepath.Join(outDir, IndexFile)); err != nil {
		return err
	}

	progress(IndexFile)

	for _, section := range model.AllSections() {
		selector := model.NewSelector()
		selector.Select(section)

		name := cs.ExportFileName(section)
		if err := exportPage(ctx, profile, selector, filepath.Join(outDir, name)); err != nil {
			return err
		}

		progress(name)
	}

	if err := copyAssets(filepath.Join(outDir, "assets")); err != nil {
		return err
	}

	slog.Info("Exported site", "dir", outDir)

	return nil
}

func exportPage(ctx context.Context, profile *model.Profile, selector *model.Selector, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	rc := cs.RenderContext{Profile: profile, Selector: selector, Links: cs.LinkModeStatic}

	return writePage(ctx, cs.Page(&rc), file, path)
}

// writePage renders page into file and closes it; a failed close fails the export.
func writePage(ctx context.Context, page templ.Component, file io.WriteCloser, path string) error {
	if err := page.Render(ctx, file); err != nil {
		_ = file.Close()

		return fmt.Errorf("could not render %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

func copyAssets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}

	err := fs.WalkDir(assets.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(assets.FS, path)
		if err != nil {
			return err
		}

		return os.WriteFile(filepath.Join(dir, path), data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("could not copy assets: %w", err)
	}

	return nil
}
