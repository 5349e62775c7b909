// Package datagen writes a data pack from everything registered in a Kit:
// loot tables, recipes, models, blockstates, sound definitions and language
// entries, plus generated defaults for content that declared none.
package datagen

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mosbergapi/modkit/internal/atomicfile"
	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/loot"
	"github.com/mosbergapi/modkit/pkg/model"
	"github.com/mosbergapi/modkit/pkg/modkit"
	"github.com/mosbergapi/modkit/pkg/recipe"
)

// DefaultPackFormat is the engine's current data pack format.
const DefaultPackFormat = 15

// PackMeta describes the pack.mcmeta header.
type PackMeta struct {
	Description string
	Format      int
}

// Writer emits data packs rooted at a directory.
type Writer struct {
	dir   string
	log   *slog.Logger
	files int
}

// New creates a Writer rooted at dir.
func New(dir string, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	return &Writer{dir: dir, log: log}
}

// WritePack writes the full pack for the kit's namespace. Registered loot
// tables, recipes and models are written as declared; blocks without a
// "blocks/<name>" loot table get a drop-self default, every block gets a
// blockstate and a cube-all display model, items get generated display
// models, and display names are collected into the language file.
func (w *Writer) WritePack(k *modkit.Kit, meta PackMeta) error {
	w.files = 0
	ns := k.Namespace()

	if meta.Format == 0 {
		meta.Format = DefaultPackFormat
	}
	if err := w.writeMeta(meta); err != nil {
		return fmt.Errorf("write pack.mcmeta: %w", err)
	}
	if err := w.writeLootTables(k, ns); err != nil {
		return fmt.Errorf("write loot tables: %w", err)
	}
	if err := w.writeRecipes(k, ns); err != nil {
		return fmt.Errorf("write recipes: %w", err)
	}
	if err := w.writeGeometry(k, ns); err != nil {
		return fmt.Errorf("write models: %w", err)
	}
	if err := w.writeBlockAssets(k, ns); err != nil {
		return fmt.Errorf("write block assets: %w", err)
	}
	if err := w.writeItemModels(k, ns); err != nil {
		return fmt.Errorf("write item models: %w", err)
	}
	if err := w.writeSounds(k, ns); err != nil {
		return fmt.Errorf("write sounds.json: %w", err)
	}
	if err := w.writeLang(k, ns); err != nil {
		return fmt.Errorf("write lang file: %w", err)
	}

	w.log.Info("data pack written", "dir", w.dir, "namespace", ns, "files", w.files)
	return nil
}

func (w *Writer) writeMeta(meta PackMeta) error {
	type section struct {
		Format      int    `json:"pack_format"`
		Description string `json:"description"`
	}
	return w.writeJSON(filepath.Join(w.dir, "pack.mcmeta"), struct {
		Pack section `json:"pack"`
	}{section{meta.Format, meta.Description}})
}

func (w *Writer) writeLootTables(k *modkit.Kit, ns string) error {
	var err error
	k.LootTables.Each(func(name string, t *loot.Table) bool {
		err = w.writeJSON(w.dataPath(ns, "loot_tables", name), t)
		return err == nil
	})
	if err != nil {
		return err
	}

	// Blocks that declared no table drop themselves.
	k.Blocks.Each(func(name string, _ *content.Block) bool {
		if k.LootTables.Has("blocks/" + name) {
			return true
		}
		self := id.MustNew(ns, name)
		err = w.writeJSON(w.dataPath(ns, "loot_tables", "blocks/"+name), loot.DropSelf(self))
		return err == nil
	})
	return err
}

func (w *Writer) writeRecipes(k *modkit.Kit, ns string) error {
	var err error
	k.Recipes.Each(func(name string, r recipe.Recipe) bool {
		err = w.writeJSON(w.dataPath(ns, "recipes", name), r)
		return err == nil
	})
	return err
}

func (w *Writer) writeGeometry(k *modkit.Kit, ns string) error {
	var err error
	k.Models.Each(func(name string, m *model.Model) bool {
		payload := struct {
			Parts []model.Part `json:"parts"`
		}{m.Parts()}
		err = w.writeJSON(w.assetPath(ns, "models", name), payload)
		return err == nil
	})
	return err
}

type displayModel struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures,omitempty"`
}

func (w *Writer) writeBlockAssets(k *modkit.Kit, ns string) error {
	type variant struct {
		Model string `json:"model"`
	}
	type blockstate struct {
		Variants map[string]variant `json:"variants"`
	}

	var err error
	k.Blocks.Each(func(name string, _ *content.Block) bool {
		modelRef := ns + ":block/" + name

		err = w.writeJSON(w.assetPath(ns, "blockstates", name), blockstate{
			Variants: map[string]variant{"": {Model: modelRef}},
		})
		if err != nil {
			return false
		}
		err = w.writeJSON(w.assetPath(ns, "models", "block/"+name), displayModel{
			Parent:   "minecraft:block/cube_all",
			Textures: map[string]string{"all": modelRef},
		})
		return err == nil
	})
	return err
}

func (w *Writer) writeItemModels(k *modkit.Kit, ns string) error {
	var err error

	// Blocks get item models pointing at their block model.
	k.Blocks.Each(func(name string, _ *content.Block) bool {
		err = w.writeJSON(w.assetPath(ns, "models", "item/"+name), displayModel{
			Parent: ns + ":block/" + name,
		})
		return err == nil
	})
	if err != nil {
		return err
	}

	// Plain items get the flat generated model. A name that is also a block
	// keeps its block-derived model.
	k.Items.Each(func(name string, _ *content.Item) bool {
		if k.Blocks.Has(name) {
			return true
		}
		err = w.writeJSON(w.assetPath(ns, "models", "item/"+name), displayModel{
			Parent:   "minecraft:item/generated",
			Textures: map[string]string{"layer0": ns + ":item/" + name},
		})
		return err == nil
	})
	return err
}

func (w *Writer) writeSounds(k *modkit.Kit, ns string) error {
	if k.Sounds.Len() == 0 {
		return nil
	}

	type soundEntry struct {
		Subtitle string   `json:"subtitle,omitempty"`
		Sounds   []string `json:"sounds"`
	}
	defs := make(map[string]soundEntry, k.Sounds.Len())
	k.Sounds.Each(func(name string, s *content.Sound) bool {
		entry := soundEntry{Sounds: s.Paths}
		if s.Subtitle != "" {
			entry.Subtitle = "subtitles." + name
		}
		defs[name] = entry
		return true
	})
	return w.writeJSON(filepath.Join(w.dir, "assets", ns, "sounds.json"), defs)
}

func (w *Writer) writeLang(k *modkit.Kit, ns string) error {
	entries := map[string]string{}
	add := func(key, display string) {
		if display != "" {
			entries[key] = display
		}
	}

	k.Blocks.Each(func(name string, b *content.Block) bool {
		add("block."+ns+"."+name, b.DisplayName)
		return true
	})
	k.Items.Each(func(name string, i *content.Item) bool {
		add("item."+ns+"."+name, i.DisplayName)
		return true
	})
	k.Entities.Each(func(name string, e *content.Entity) bool {
		add("entity."+ns+"."+name, e.DisplayName)
		return true
	})
	k.StatusEffects.Each(func(name string, e *content.StatusEffect) bool {
		add("effect."+ns+"."+name, e.DisplayName)
		return true
	})
	k.Potions.Each(func(name string, p *content.Potion) bool {
		add("potion."+ns+"."+name, p.DisplayName)
		return true
	})
	k.Enchantments.Each(func(name string, e *content.Enchantment) bool {
		add("enchantment."+ns+"."+name, e.DisplayName)
		return true
	})
	k.Biomes.Each(func(name string, b *content.Biome) bool {
		add("biome."+ns+"."+name, b.DisplayName)
		return true
	})
	k.Sounds.Each(func(name string, s *content.Sound) bool {
		add("subtitles."+name, s.Subtitle)
		return true
	})

	if len(entries) == 0 {
		return nil
	}
	return w.writeJSON(filepath.Join(w.dir, "assets", ns, "lang", "en_us.json"), entries)
}

func (w *Writer) dataPath(ns, kind, name string) string {
	return filepath.Join(w.dir, "data", ns, kind, filepath.FromSlash(name)+".json")
}

func (w *Writer) assetPath(ns, kind, name string) string {
	return filepath.Join(w.dir, "assets", ns, kind, filepath.FromSlash(name)+".json")
}

func (w *Writer) writeJSON(path string, v any) error {
	if err := atomicfile.WriteJSON(path, v); err != nil {
		return err
	}
	w.files++
	w.log.Debug("wrote pack file", "path", path)
	return nil
}
