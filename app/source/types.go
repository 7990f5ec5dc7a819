package source

// Source describes one configured feed endpoint. The list is static
// configuration: ordered, loaded once at startup, never mutated at runtime.
type Source struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label,omitempty"`
}

type fileFormat struct {
	Sources []Source `yaml:"sources"`
}
