package config

// Merge merges a loaded config on top of defaults. Every field the loaded
// config sets wins; docs URLs are merged per tool. Ignore comes from the
// loaded config only.
func Merge(defaults, loaded *Config) *Config {
	out := &Config{
		Color:       defaults.Color,
		FixCommand:  defaults.FixCommand,
		TestCommand: defaults.TestCommand,
		Docs:        make(map[string]string, len(defaults.Docs)),
	}
	for k, v := range defaults.Docs {
		out.Docs[k] = v
	}
	if loaded == nil {
		return out
	}

	if loaded.Color != "" {
		out.Color = loaded.Color
	}
	if loaded.FixCommand != "" {
		out.FixCommand = loaded.FixCommand
	}
	if loaded.TestCommand != "" {
		out.TestCommand = loaded.TestCommand
	}
	for k, v := range loaded.Docs {
		out.Docs[k] = v
	}
	if len(loaded.Ignore) > 0 {
		out.Ignore = append(Patterns(nil), loaded.Ignore...)
	}
	return out
}
