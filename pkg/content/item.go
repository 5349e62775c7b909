package content

type Item struct {
	DisplayName   string
	StackSize     int
	MaxDurability int
	Rarity        string
}

type Food struct {
	Item
	FoodPoints   float64
	Saturation   float64
	AlwaysEdible bool
}
