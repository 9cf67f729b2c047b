package variant

// Combinations returns one Config per valid axis-value assignment of the
// spec, in deterministic order: the cartesian product of the axis domains,
// iterated in axis declaration order with the last axis varying fastest.
// Flags are not enumerated; every returned config has none set.
func Combinations(spec Spec) []Config {
	if len(spec.Axes) == 0 {
		return []Config{NewConfig()}
	}

	total := 1
	for _, axis := range spec.Axes {
		total *= len(axis.Values)
	}

	combos := make([]Config, 0, total)
	indices := make([]int, len(spec.Axes))
	for {
		cfg := NewConfig()
		for i, axis := range spec.Axes {
			cfg = cfg.Set(axis.Name, axis.Values[indices[i]])
		}
		combos = append(combos, cfg)

		position := len(indices) - 1
		for position >= 0 {
			indices[position]++
			if indices[position] < len(spec.Axes[position].Values) {
				break
			}
			indices[position] = 0
			position--
		}
		if position < 0 {
			return combos
		}
	}
}
