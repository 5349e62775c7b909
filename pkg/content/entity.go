package content

type Entity struct {
	DisplayName string
	Category    string
	Width       float64
	Height      float64
	MaxHealth   float64
	Fireproof   bool
}
