// Command datafetch downloads reference game data (PrismarineJS
// minecraft-data) for one platform/version pair. Catalog authors diff the
// fetched registries against pkg/vanilla when updating stock content.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "reference data repository")
		platform = flag.String("platform", "pc", "platform to fetch")
		ver      = flag.String("version", "1.20.4", "game version to fetch")
		out      = flag.String("o", "./refdata", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *out == "" || *platform == "" || *ver == "" {
		log.Error("output dir, platform and version are all required")
		os.Exit(1)
	}

	dest := fmt.Sprintf("%s/%s-%s", *out, *platform, *ver)
	if err := os.RemoveAll(dest); err != nil {
		log.Error("clear output dir", "dir", dest, "error", err)
		os.Exit(1)
	}

	// Data lives under data/<platform>/<version> in the upstream repo.
	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)

	log.Info("fetching reference data", "url", url, "dir", dest)
	if err := get.Get(dest, url); err != nil {
		log.Error("fetch reference data", "error", err)
		os.Exit(1)
	}
	log.Info("reference data ready", "dir", dest)
}
