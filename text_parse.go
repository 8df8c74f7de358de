package isla

// ParseElem applies fn to the i-th element of v and returns its result,
// or fallback if v is not a list, the index is out of range, or fn
// fails. Go methods cannot carry their own type parameter, so this
// family of accessors is a set of package-level generic functions
// rather than methods on TextValue.
func ParseElem[T any](v TextValue, i int, fn func(TextValue) (T, error), fallback T) T {
	el, err := v.Elem(i)
	if err != nil {
		return fallback
	}
	res, err := fn(el)
	if err != nil {
		return fallback
	}
	return res
}

// ParseField applies fn to the value stored under key and returns its
// result, or fallback if v is not a map, key is absent, or fn fails.
func ParseField[T any](v TextValue, key string, fn func(TextValue) (T, error), fallback T) T {
	val, err := v.Field(key)
	if err != nil {
		return fallback
	}
	res, err := fn(val)
	if err != nil {
		return fallback
	}
	return res
}

// ParseLeafElem applies fn to the leaf payload of the i-th element.
func ParseLeafElem[T any](v TextValue, i int, fn func(string) (T, error), fallback T) T {
	return ParseElem(v, i, func(el TextValue) (T, error) {
		leaf, err := el.AsLeaf()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(leaf)
	}, fallback)
}

// ParseLeafField applies fn to the leaf payload stored under key.
func ParseLeafField[T any](v TextValue, key string, fn func(string) (T, error), fallback T) T {
	return ParseField(v, key, func(val TextValue) (T, error) {
		leaf, err := val.AsLeaf()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(leaf)
	}, fallback)
}

// ParseListElem applies fn to the list payload of the i-th element.
func ParseListElem[T any](v TextValue, i int, fn func([]TextValue) (T, error), fallback T) T {
	return ParseElem(v, i, func(el TextValue) (T, error) {
		list, err := el.AsList()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(list)
	}, fallback)
}

// ParseListField applies fn to the list payload stored under key.
func ParseListField[T any](v TextValue, key string, fn func([]TextValue) (T, error), fallback T) T {
	return ParseField(v, key, func(val TextValue) (T, error) {
		list, err := val.AsList()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(list)
	}, fallback)
}

// ParseMapElem applies fn to the map payload of the i-th element.
func ParseMapElem[T any](v TextValue, i int, fn func(map[string]TextValue) (T, error), fallback T) T {
	return ParseElem(v, i, func(el TextValue) (T, error) {
		m, err := el.AsMap()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(m)
	}, fallback)
}

// ParseMapField applies fn to the map payload stored under key.
func ParseMapField[T any](v TextValue, key string, fn func(map[string]TextValue) (T, error), fallback T) T {
	return ParseField(v, key, func(val TextValue) (T, error) {
		m, err := val.AsMap()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(m)
	}, fallback)
}
