package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-blogsync/cmd/blogsync/internal/bootstrap"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("blogsync preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("blogsync-preview", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to a config file (defaults to ./config.yaml)")
	documentsDir := fs.String("content-dir", "", "Path to the folder of Markdown drafts")
	filePath := fs.String("file", "", "Markdown file to preview (relative to the content root)")
	renderHTML := fs.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *filePath == "" {
		return fmt.Errorf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigFile:   *configFile,
		DocumentsDir: *documentsDir,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Documents == nil {
		return fmt.Errorf("document store not configured")
	}

	ctx := context.Background()

	path := *filePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(module.Config.DocumentsDir, path)
	}

	doc, err := module.Documents.Read(ctx, path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nTitle: %s\nModified: %s\n\n",
		doc.FilePath, doc.Meta.Title, doc.LastModified.Format("2006-01-02 15:04:05"))

	if doc.Meta.Raw != nil {
		header, err := json.MarshalIndent(doc.Meta.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Metadata:\n%s\n\n", header)
		}
	}

	if *renderHTML {
		html, err := module.Parser.ParseWithOptions(doc.Body, interfaces.ParseOptions{})
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}

	return nil
}
