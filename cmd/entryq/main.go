package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/suparena/contentstore"
	"github.com/suparena/contentstore/datastore"
	"github.com/suparena/contentstore/datastore/rest"
	"github.com/suparena/contentstore/registry"
	"github.com/suparena/contentstore/storagemodels"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	configFlag   = flag.String("config", "contentstore.yaml", "Path to the resource configuration")
	resourceFlag = flag.String("resource", "", "Resource name to query (required)")
	idFlag       = flag.String("id", "", "Fetch a single entry by id or documentId")
	localeFlag   = flag.String("locale", "", "Locale to query")
	limitFlag    = flag.Int("limit", 10, "Page size for collection queries")
	debugFlag    = flag.Bool("debug", false, "Log requests to stderr")
)

// entry is the dynamic shape used for resources configured at runtime.
type entry = map[string]interface{}

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := contentstore.GetVersionInfo()
		fmt.Printf("ContentStore entryq version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "entryq: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *resourceFlag == "" {
		return fmt.Errorf("-resource is required")
	}

	// A .env next to the config may supply the token referenced there.
	_ = godotenv.Load()

	cfg, err := registry.LoadConfigFile(*configFlag)
	if err != nil {
		return err
	}
	cfg.RegisterAll()

	desc, err := registry.LookupNamed(*resourceFlag)
	if err != nil {
		return err
	}

	opts := []rest.Option{}
	if cfg.Token != "" {
		opts = append(opts, rest.WithToken(cfg.Token))
	}
	if desc.DefaultLocale != "" {
		opts = append(opts, rest.WithDefaultLocale(desc.DefaultLocale))
	}
	if *debugFlag {
		opts = append(opts, rest.WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:  "entryq",
			Level: hclog.Debug,
		})))
	}

	store := rest.New[entry](cfg.BaseURL, desc.Name, opts...)
	ctx := context.Background()

	var result interface{}
	if *idFlag != "" {
		found, err := store.Find(ctx, datastore.FindOptions{
			ID:     *idFlag,
			Locale: *localeFlag,
		})
		if err != nil {
			return err
		}
		result = found
	} else {
		entries, err := store.FindMany(ctx, &storagemodels.QueryParams{
			Pagination: &storagemodels.PaginationParams{Page: 1, PageSize: *limitFlag},
		}, *localeFlag)
		if err != nil {
			return err
		}
		result = entries
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
