// Command cataloggen generates a pkg/vanilla catalog source file from a
// fetched minecraft-data version directory (see cmd/datafetch).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mosbergapi/modkit/cmd/cataloggen/internal/generator"
)

func main() {
	dataDir := flag.String("data", "", "fetched minecraft-data version directory (e.g. ./refdata/pc-1.20.4)")
	name := flag.String("name", "", "catalog name override (default: derived from data dir name)")
	out := flag.String("out", "", "output file (default: ./pkg/vanilla/catalog_<name>.go)")
	pkg := flag.String("pkg", "vanilla", "package name for the generated file")
	flag.Parse()

	if *dataDir == "" {
		fmt.Fprintln(os.Stderr, "error: -data flag is required")
		flag.Usage()
		os.Exit(1)
	}

	catalogName := *name
	if catalogName == "" {
		catalogName = sanitizeName(filepath.Base(*dataDir))
	}

	outFile := *out
	if outFile == "" {
		outFile = filepath.Join("pkg", "vanilla", "catalog_"+catalogName+".go")
	}

	fmt.Printf("cataloggen: generating %s from %s\n", catalogName, *dataDir)

	cfg := generator.Config{
		DataDir: *dataDir,
		Name:    catalogName,
		Package: *pkg,
		OutFile: outFile,
	}
	if err := generator.Run(cfg); err != nil {
		log.Fatalf("cataloggen failed: %v", err)
	}

	fmt.Printf("cataloggen: done, output in %s\n", outFile)
}

func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ToLower(name)
}
