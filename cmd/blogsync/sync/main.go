package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-blogsync/cmd/blogsync/internal/bootstrap"
	synccmd "github.com/goliatone/go-blogsync/internal/commands/sync"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("blogsync sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("blogsync-sync", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to a config file (defaults to ./config.yaml)")
	documentsDir := fs.String("content-dir", "", "Path to the folder of Markdown drafts")
	imagesDir := fs.String("images-dir", "", "Root folder local image embeds resolve against")
	remoteFolder := fs.String("remote-folder", "", "Cloud storage folder rehosted images land in")
	rehost := fs.Bool("rehost", false, "Upload local images to cloud storage before publishing")
	dryRun := fs.Bool("dry-run", false, "Parse and resolve documents without publishing")
	logLevel := fs.String("log-level", "", "Minimum log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		ConfigFile:   *configFile,
		DocumentsDir: *documentsDir,
		ImagesDir:    *imagesDir,
		RemoteFolder: *remoteFolder,
		LogLevel:     *logLevel,
	}
	if flagWasSet(fs, "rehost") {
		opts.Rehost = rehost
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Sync == nil {
		return fmt.Errorf("sync service not configured")
	}

	handler := synccmd.NewSyncDocumentsHandler(module.Sync, module.Logger, synccmd.FeatureGates{
		SyncEnabled: func() bool { return module.Config.Features.Sync },
	})
	cmd := synccmd.SyncDocumentsCommand{
		Directory: module.Config.DocumentsDir,
		DryRun:    *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "sync command executed successfully")

	return nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
