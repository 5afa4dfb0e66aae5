package config

// Apkofile represents the parts of an apko.yaml image configuration that apkpin reads.
// Unknown fields are ignored.
type Apkofile struct {
	Contents ContentsDTO `yaml:"contents"`
	Archs    []string    `yaml:"archs"`
}

// ContentsDTO represents the contents section of an apko configuration.
type ContentsDTO struct {
	Repositories []string `yaml:"repositories"`
	Packages     []string `yaml:"packages"`
}
