package item

// Func transforms an in-progress item description into a new one. Implementations
// must be pure: same input description, same output, no side effects.
type Func func(Description) Description

// Modifier is a named pure transform applied to an item description during
// the build pipeline. Modifiers are contributed by mechanics at construction
// and applied in declaration order; later modifiers observe earlier output.
type Modifier struct {
	Name  string
	Apply Func
}

// ApplyAll folds the modifiers over the description left to right and returns
// the final description.
func ApplyAll(d Description, mods []Modifier) Description {
	for _, mod := range mods {
		d = mod.Apply(d)
	}
	return d
}
