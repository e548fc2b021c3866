package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-builder-backend/internal/examples"
	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/resume"
	"resume-builder-backend/internal/site"
)

var (
	renderExampleID string
	renderTemplate  string
	renderOutPath   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a bundled example resume to a standalone HTML site",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderExampleID, "example", "product-engineer", "Bundled example id to render")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template id (defaults to the example's own)")
	renderCmd.Flags().StringVar(&renderOutPath, "out", "./out/sample_site.html", "Output path for the generated site")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	samples, err := examples.Load()
	if err != nil {
		return err
	}

	var doc resume.Document
	found := false
	for _, s := range samples {
		if s.ID == renderExampleID {
			doc = s.Document
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown example %q", renderExampleID)
	}

	if renderTemplate != "" {
		doc.Template = resume.ParseTemplateID(renderTemplate)
	}

	html := site.Generate(doc)

	dir := filepath.Dir(renderOutPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(renderOutPath, []byte(html), 0o644); err != nil {
		return err
	}

	treePath := filepath.Join(dir, "sample_render_tree.json")
	payload, err := json.MarshalIndent(render.Render(doc, doc.Template), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(treePath, payload, 0o644); err != nil {
		return err
	}

	fmt.Printf("OK: wrote %s\n", renderOutPath)
	return nil
}
