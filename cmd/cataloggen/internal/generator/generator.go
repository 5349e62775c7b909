// Package generator renders a pkg/vanilla catalog source file from fetched
// minecraft-data registries. Potions and sounds have no upstream registry
// file and stay in hand-written catalogs.
package generator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/mosbergapi/modkit/cmd/cataloggen/internal/schema"
	"github.com/mosbergapi/modkit/pkg/id"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Config struct {
	DataDir string
	Name    string
	Package string
	OutFile string
}

// entry is one catalog map line: a path key and a content struct literal.
type entry struct {
	Name    string
	Literal string
}

type catalogData struct {
	Package       string
	Name          string
	Source        string
	Blocks        []entry
	Items         []entry
	Entities      []entry
	Particles     []entry
	StatusEffects []entry
	Enchantments  []entry
	Biomes        []entry
}

func Run(cfg Config) error {
	data := catalogData{
		Package: cfg.Package,
		Name:    cfg.Name,
		Source:  filepath.ToSlash(cfg.DataDir),
	}

	loaders := []struct {
		file string
		load func(raw []byte) error
	}{
		{"blocks.json", func(raw []byte) error {
			blocks, err := schema.LoadJSON[schema.Block](raw)
			if err != nil {
				return err
			}
			data.Blocks, err = buildEntries(blocks, func(b schema.Block) (string, string) {
				return b.Name, blockLiteral(b)
			})
			return err
		}},
		{"items.json", func(raw []byte) error {
			items, err := schema.LoadJSON[schema.Item](raw)
			if err != nil {
				return err
			}
			data.Items, err = buildEntries(items, func(i schema.Item) (string, string) {
				return i.Name, itemLiteral(i)
			})
			return err
		}},
		{"entities.json", func(raw []byte) error {
			entities, err := schema.LoadJSON[schema.Entity](raw)
			if err != nil {
				return err
			}
			data.Entities, err = buildEntries(entities, func(e schema.Entity) (string, string) {
				return e.Name, entityLiteral(e)
			})
			return err
		}},
		{"particles.json", func(raw []byte) error {
			particles, err := schema.LoadJSON[schema.Particle](raw)
			if err != nil {
				return err
			}
			data.Particles, err = buildEntries(particles, func(p schema.Particle) (string, string) {
				return p.Name, fmt.Sprintf("{DisplayName: %q}", p.Name)
			})
			return err
		}},
		{"effects.json", func(raw []byte) error {
			effects, err := schema.LoadJSON[schema.Effect](raw)
			if err != nil {
				return err
			}
			data.StatusEffects, err = buildEntries(effects, func(e schema.Effect) (string, string) {
				return effectPath(e.Name), effectLiteral(e)
			})
			return err
		}},
		{"enchantments.json", func(raw []byte) error {
			enchantments, err := schema.LoadJSON[schema.Enchantment](raw)
			if err != nil {
				return err
			}
			data.Enchantments, err = buildEntries(enchantments, func(e schema.Enchantment) (string, string) {
				return e.Name, enchantmentLiteral(e)
			})
			return err
		}},
		{"biomes.json", func(raw []byte) error {
			biomes, err := schema.LoadJSON[schema.Biome](raw)
			if err != nil {
				return err
			}
			data.Biomes, err = buildEntries(biomes, func(b schema.Biome) (string, string) {
				return b.Name, biomeLiteral(b)
			})
			return err
		}},
	}

	loaded := 0
	for _, l := range loaders {
		raw, err := os.ReadFile(filepath.Join(cfg.DataDir, l.file))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", l.file, err)
		}
		if err := l.load(raw); err != nil {
			return fmt.Errorf("parse %s: %w", l.file, err)
		}
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("no registry data found in %s", cfg.DataDir)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	return renderToFile(tmpl, "catalog.go.tmpl", cfg.OutFile, data)
}

func renderToFile(tmpl *template.Template, name, outFile string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", outFile, err)
	}
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

// buildEntries maps raw registry rows to sorted catalog entries, rejecting
// names that are not valid identifier paths.
func buildEntries[T any](rows []T, build func(T) (string, string)) ([]entry, error) {
	entries := make([]entry, 0, len(rows))
	for _, row := range rows {
		name, literal := build(row)
		if err := id.ValidatePath(name); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		entries = append(entries, entry{Name: name, Literal: literal})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func blockLiteral(b schema.Block) string {
	fields := []string{fmt.Sprintf("DisplayName: %q", b.DisplayName)}
	if b.Material != "" {
		fields = append(fields, fmt.Sprintf("Material: %q", b.Material))
	}
	if b.Hardness != nil && *b.Hardness != 0 {
		fields = append(fields, "Hardness: "+formatFloat(*b.Hardness))
	}
	if b.Resistance != 0 {
		fields = append(fields, "Resistance: "+formatFloat(b.Resistance))
	}
	if b.EmitLight != 0 {
		fields = append(fields, fmt.Sprintf("LightLevel: %d", b.EmitLight))
	}
	if b.Transparent {
		fields = append(fields, "Transparent: true")
	}
	if b.Diggable {
		fields = append(fields, "Diggable: true")
	}
	return structLiteral(fields)
}

func itemLiteral(i schema.Item) string {
	fields := []string{fmt.Sprintf("DisplayName: %q", i.DisplayName)}
	if i.StackSize != 0 {
		fields = append(fields, fmt.Sprintf("StackSize: %d", i.StackSize))
	}
	if i.MaxDurability != 0 {
		fields = append(fields, fmt.Sprintf("MaxDurability: %d", i.MaxDurability))
	}
	return structLiteral(fields)
}

func entityLiteral(e schema.Entity) string {
	fields := []string{fmt.Sprintf("DisplayName: %q", e.DisplayName)}
	category := e.Type
	if category == "" {
		category = e.Category
	}
	if category != "" {
		fields = append(fields, fmt.Sprintf("Category: %q", category))
	}
	if e.Width != nil && *e.Width != 0 {
		fields = append(fields, "Width: "+formatFloat(*e.Width))
	}
	if e.Height != nil && *e.Height != 0 {
		fields = append(fields, "Height: "+formatFloat(*e.Height))
	}
	return structLiteral(fields)
}

func effectLiteral(e schema.Effect) string {
	fields := []string{fmt.Sprintf("DisplayName: %q", e.DisplayName)}
	if e.Type != "" {
		fields = append(fields, fmt.Sprintf("Type: %q", effectType(e.Type)))
	}
	return structLiteral(fields)
}

func enchantmentLiteral(e schema.Enchantment) string {
	fields := []string{fmt.Sprintf("DisplayName: %q", e.DisplayName)}
	if e.Category != "" {
		fields = append(fields, fmt.Sprintf("Category: %q", e.Category))
	}
	if e.MaxLevel != 0 {
		fields = append(fields, fmt.Sprintf("MaxLevel: %d", e.MaxLevel))
	}
	if e.Weight != 0 {
		fields = append(fields, fmt.Sprintf("Weight: %d", e.Weight))
	}
	if e.TreasureOnly {
		fields = append(fields, "TreasureOnly: true")
	}
	if e.Curse {
		fields = append(fields, "Curse: true")
	}
	return structLiteral(fields)
}

func biomeLiteral(b schema.Biome) string {
	fields := []string{fmt.Sprintf("DisplayName: %q", b.DisplayName)}
	if b.Category != "" {
		fields = append(fields, fmt.Sprintf("Category: %q", b.Category))
	}
	if b.Temperature != 0 {
		fields = append(fields, "Temperature: "+formatFloat(b.Temperature))
	}
	if b.Rainfall != 0 {
		fields = append(fields, "Rainfall: "+formatFloat(b.Rainfall))
	}
	if b.Precipitation != "" {
		fields = append(fields, fmt.Sprintf("Precipitation: %q", b.Precipitation))
	}
	if b.Color != 0 {
		fields = append(fields, fmt.Sprintf("Color: %d", b.Color))
	}
	return structLiteral(fields)
}

func structLiteral(fields []string) string {
	return "{" + strings.Join(fields, ", ") + "}"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// effectType maps the upstream good/bad labels onto the catalog vocabulary.
func effectType(t string) string {
	switch t {
	case "good":
		return "beneficial"
	case "bad":
		return "harmful"
	default:
		return t
	}
}

// effectPath lowercases the upstream camelCase effect names into identifier
// paths: "FireResistance" becomes "fire_resistance".
func effectPath(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
