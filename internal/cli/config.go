package cli

// Config stores CLI options for a single generation run.
type Config struct {
	// Path is the package pattern the types are loaded from.
	Path  string
	Types []string
	// Positional lists types whose builders construct with unkeyed literals.
	Positional []string
	// Desc is a YAML description file used instead of Path.
	Desc        string
	Filename    string
	Plan        string
	LogLevel    string
	ShowVersion bool
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Filename
}

// PlanFilename returns the JSON dump path, empty when disabled.
func (c *Config) PlanFilename() string {
	return c.Plan
}
