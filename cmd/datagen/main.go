// Command datagen builds a data pack from declarative manifests and Lua
// scripts. Configuration layers, strongest first: flags, a JSON config
// file, MODKIT_* environment variables, built-in defaults.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/caarlos0/env/v11"

	"github.com/mosbergapi/modkit/pkg/contentpack"
	"github.com/mosbergapi/modkit/pkg/datagen"
	"github.com/mosbergapi/modkit/pkg/engine"
	"github.com/mosbergapi/modkit/pkg/modkit"
	"github.com/mosbergapi/modkit/pkg/script"
	"github.com/mosbergapi/modkit/pkg/vanilla"
)

type config struct {
	Namespace   string `env:"MODKIT_NAMESPACE" envDefault:"mosbergapi" json:"namespace"`
	OutDir      string `env:"MODKIT_OUT" envDefault:"pack" json:"out_dir"`
	ManifestDir string `env:"MODKIT_MANIFESTS" json:"manifest_dir"`
	ScriptDir   string `env:"MODKIT_SCRIPTS" json:"script_dir"`
	Description string `env:"MODKIT_PACK_DESCRIPTION" envDefault:"Generated by modkit" json:"description"`
	Catalog     string `env:"MODKIT_CATALOG" envDefault:"core" json:"catalog"`
	Verbose     bool   `env:"MODKIT_VERBOSE" json:"verbose"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("parse env", "error", err)
		os.Exit(1)
	}

	configPath := flag.String("config", "", "JSON config file")
	flag.StringVar(&cfg.Namespace, "namespace", cfg.Namespace, "namespace for registered content")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "data pack output directory")
	flag.StringVar(&cfg.ManifestDir, "manifests", cfg.ManifestDir, "directory of .hcl content manifests")
	flag.StringVar(&cfg.ScriptDir, "scripts", cfg.ScriptDir, "directory of .lua content scripts")
	flag.StringVar(&cfg.Description, "description", cfg.Description, "pack.mcmeta description")
	flag.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "vanilla catalog to seed, empty to skip")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	flag.Parse()

	if *configPath != "" {
		if err := mergeFile(&cfg, *configPath); err != nil {
			slog.Error("load config file", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	eng := engine.New()
	if cfg.Catalog != "" {
		catalog, err := vanilla.Load(cfg.Catalog)
		if err != nil {
			log.Error("load catalog", "error", err)
			os.Exit(1)
		}
		if err := vanilla.Seed(eng, catalog); err != nil {
			log.Error("seed catalog", "catalog", cfg.Catalog, "error", err)
			os.Exit(1)
		}
		log.Info("catalog seeded", "catalog", cfg.Catalog)
	}

	kit, err := modkit.New(eng, modkit.WithNamespace(cfg.Namespace), modkit.WithLogger(log))
	if err != nil {
		log.Error("create kit", "error", err)
		os.Exit(1)
	}

	if cfg.ManifestDir != "" {
		pack, err := contentpack.LoadDir(cfg.ManifestDir)
		if err != nil {
			log.Error("load manifests", "dir", cfg.ManifestDir, "error", err)
			os.Exit(1)
		}
		if err := pack.Apply(kit); err != nil {
			log.Error("apply manifests", "dir", cfg.ManifestDir, "error", err)
			os.Exit(1)
		}
	}

	if cfg.ScriptDir != "" {
		runner := script.NewRunner(kit, log)
		for _, path := range luaScripts(log, cfg.ScriptDir) {
			if err := runner.RunFile(path); err != nil {
				log.Error("run script", "script", path, "error", err)
				os.Exit(1)
			}
		}
	}

	kit.Initialize()

	writer := datagen.New(cfg.OutDir, log)
	meta := datagen.PackMeta{Description: cfg.Description, Format: datagen.DefaultPackFormat}
	if err := writer.WritePack(kit, meta); err != nil {
		log.Error("write data pack", "error", err)
		os.Exit(1)
	}
}

// mergeFile applies config file values into cfg, but only for settings
// that were not set explicitly on the command line.
func mergeFile(cfg *config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fromFile := *cfg
	if err := json.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if !explicit["namespace"] {
		cfg.Namespace = fromFile.Namespace
	}
	if !explicit["out"] {
		cfg.OutDir = fromFile.OutDir
	}
	if !explicit["manifests"] {
		cfg.ManifestDir = fromFile.ManifestDir
	}
	if !explicit["scripts"] {
		cfg.ScriptDir = fromFile.ScriptDir
	}
	if !explicit["description"] {
		cfg.Description = fromFile.Description
	}
	if !explicit["catalog"] {
		cfg.Catalog = fromFile.Catalog
	}
	if !explicit["v"] {
		cfg.Verbose = fromFile.Verbose
	}
	return nil
}

// luaScripts lists the .lua files directly under dir, in name order.
func luaScripts(log *slog.Logger, dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Error("read script dir", "dir", dir, "error", err)
		os.Exit(1)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths
}
