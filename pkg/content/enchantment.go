package content

type Enchantment struct {
	DisplayName  string
	Category     string
	MaxLevel     int
	Weight       int
	TreasureOnly bool
	Curse        bool
}

type Biome struct {
	DisplayName   string
	Category      string
	Temperature   float64
	Rainfall      float64
	Precipitation string
	Color         int
}
