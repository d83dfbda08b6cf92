package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

// exportPaths are rendered through the app and written under the output
// directory. "/" becomes index.html.
var exportPaths = []string{"/", "/robots.txt", "/sitemap.xml", "/feed.xml", "/og.png"}

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Render the site into a directory of static files",
	Long: `Render the page, feed, sitemap and OpenGraph image into dir and copy
the page assets to dir/public. Below-the-fold sections are revealed by the
page script. The contact form needs a running server.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := args[0]
	cfg := loadConfig()
	cfg.StatsDisabled = true
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = uuid.NewString()
	}

	app := folio.New(cfg, folio.WithStaticExport())
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()

	if err := os.MkdirAll(filepath.Join(dir, "public"), 0o755); err != nil {
		return err
	}

	for _, p := range exportPaths {
		req := httptest.NewRequest(http.MethodGet, p, nil)
		rec := httptest.NewRecorder()
		app.Echo.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			return fmt.Errorf("export %s: status %d", p, rec.Code)
		}
		name := strings.TrimPrefix(p, "/")
		if name == "" {
			name = "index.html"
		}
		out := filepath.Join(dir, name)
		if err := os.WriteFile(out, rec.Body.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", out)
	}

	assets, err := fs.Sub(folio.EmbeddedAssets, "embedded")
	if err != nil {
		return err
	}
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dir, "public", path)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", out)
		return nil
	})
}
