// Package merge holds the conflict-resolution primitives behind schema merges.
//
// A merge walks two values side by side. Keys present on one side only are
// always kept; nested maps are merged key by key; everything else (scalars,
// slices, functions) is a leaf, and a leaf present on both sides is settled
// by the Policy.
package merge

// Policy decides which side wins a leaf conflict.
type Policy int

const (
	// KeepLeft keeps the current value (left-biased merge).
	KeepLeft Policy = iota
	// KeepRight lets the incoming value replace the current one (right-biased merge).
	KeepRight
)

// PolicyFor maps the public override flag to a Policy.
func PolicyFor(override bool) Policy {
	if override {
		return KeepRight
	}
	return KeepLeft
}

// String returns the policy name used in log lines.
func (p Policy) String() string {
	if p == KeepRight {
		return "keep_right"
	}
	return "keep_left"
}

// Pick resolves a single leaf. A side that is not set never wins.
func Pick[T any](p Policy, left, right T, leftSet, rightSet bool) T {
	switch {
	case leftSet && rightSet:
		if p == KeepRight {
			return right
		}
		return left
	case rightSet:
		return right
	default:
		return left
	}
}

// Maps merges two maps into a new one. Shared keys are combined with both;
// neither input is modified. Two nil maps merge to nil.
func Maps[K comparable, V any](left, right map[K]V, both func(l, r V) V) map[K]V {
	if left == nil && right == nil {
		return nil
	}
	out := make(map[K]V, len(left)+len(right))
	for k, v := range left {
		out[k] = v
	}
	for k, r := range right {
		if l, ok := left[k]; ok {
			out[k] = both(l, r)
			continue
		}
		out[k] = r
	}
	return out
}

// Leaves merges two maps whose values are all leaves.
func Leaves[K comparable, V any](p Policy, left, right map[K]V) map[K]V {
	return Maps(left, right, func(l, r V) V {
		return Pick(p, l, r, true, true)
	})
}

// Values deep-merges two untyped values as produced by JSON or YAML
// decoding. Only map[string]any values are descended into; slices are
// replaced whole.
func Values(p Policy, left, right any) any {
	lm, lok := left.(map[string]any)
	rm, rok := right.(map[string]any)
	if lok && rok {
		return Maps(lm, rm, func(l, r any) any { return Values(p, l, r) })
	}
	return Pick(p, left, right, left != nil, right != nil)
}

// Untyped deep-merges two opaque extension maps.
func Untyped(p Policy, left, right map[string]any) map[string]any {
	return Maps(left, right, func(l, r any) any { return Values(p, l, r) })
}
