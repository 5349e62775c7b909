package content

import "github.com/mosbergapi/modkit/pkg/id"

type StatusEffect struct {
	DisplayName string
	Type        string
	Color       int
}

type Potion struct {
	DisplayName string
	Effects     []EffectInstance
}

type EffectInstance struct {
	Effect    id.ID
	Duration  int
	Amplifier int
}
