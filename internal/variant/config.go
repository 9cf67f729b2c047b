package variant

// Config carries caller-supplied axis values and flag settings for one
// resolution. Zero value is a valid empty configuration: every axis falls
// back to its declared default and no flag is set.
type Config struct {
	values map[string]string
	flags  map[string]bool
}

// NewConfig creates an empty configuration.
func NewConfig() Config {
	return Config{}
}

// Set returns a copy of the config with the axis bound to value.
func (c Config) Set(axis, value string) Config {
	next := c.clone()
	next.values[axis] = value
	return next
}

// Enable returns a copy of the config with the flag set.
func (c Config) Enable(flag string) Config {
	next := c.clone()
	next.flags[flag] = true
	return next
}

// Value reports the caller-supplied value for the axis, if any.
func (c Config) Value(axis string) (string, bool) {
	v, ok := c.values[axis]
	return v, ok
}

// Flag reports whether the named flag is set.
func (c Config) Flag(flag string) bool {
	return c.flags[flag]
}

func (c Config) clone() Config {
	next := Config{
		values: make(map[string]string, len(c.values)+1),
		flags:  make(map[string]bool, len(c.flags)+1),
	}
	for k, v := range c.values {
		next.values[k] = v
	}
	for k, v := range c.flags {
		next.flags[k] = v
	}
	return next
}
