package content

type Sound struct {
	Subtitle string
	Paths    []string
}

type Particle struct {
	DisplayName string
}
