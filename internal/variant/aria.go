package variant

// ariaTable maps flag names to the ARIA attribute they assert. A flag
// without an entry (and without a per-spec override) contributes a class
// token only. Attributes are emitted solely when their flag holds; the
// semantic default for every entry is "attribute omitted".
var ariaTable = map[string]string{
	"disabled": "aria-disabled",
	"loading":  "aria-busy",
	"busy":     "aria-busy",
	"pressed":  "aria-pressed",
	"checked":  "aria-checked",
	"selected": "aria-selected",
	"expanded": "aria-expanded",
	"required": "aria-required",
	"invalid":  "aria-invalid",
	"hidden":   "aria-hidden",
	"readonly": "aria-readonly",
}

// ariaAttribute resolves the attribute a set flag asserts: the spec's
// override when present, otherwise the fixed table entry.
func (f Flag) ariaAttribute() string {
	if f.ARIA != "" {
		return f.ARIA
	}
	return ariaTable[f.Name]
}

// ARIAAttribute exposes the attribute a flag would assert, for
// documentation and inspection tooling.
func (f Flag) ARIAAttribute() string {
	return f.ariaAttribute()
}
