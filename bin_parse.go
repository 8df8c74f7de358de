package isla

// ParseElemBin applies fn to the i-th element of v and returns its
// result, or fallback if v is not a list, the index is out of range, or
// fn fails.
func ParseElemBin[T any](v BinValue, i int, fn func(BinValue) (T, error), fallback T) T {
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

// ParseFieldBin applies fn to the value stored under key and returns
// its result, or fallback if v is not a map, key is absent, or fn
// fails.
func ParseFieldBin[T any](v BinValue, key []byte, fn func(BinValue) (T, error), fallback T) T {
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

// ParseLeafElemBin applies fn to the leaf payload of the i-th element.
func ParseLeafElemBin[T any](v BinValue, i int, fn func([]byte) (T, error), fallback T) T {
	return ParseElemBin(v, i, func(el BinValue) (T, error) {
		leaf, err := el.AsLeaf()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(leaf)
	}, fallback)
}

// ParseLeafFieldBin applies fn to the leaf payload stored under key.
func ParseLeafFieldBin[T any](v BinValue, key []byte, fn func([]byte) (T, error), fallback T) T {
	return ParseFieldBin(v, key, func(val BinValue) (T, error) {
		leaf, err := val.AsLeaf()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(leaf)
	}, fallback)
}

// ParseListElemBin applies fn to the list payload of the i-th element.
func ParseListElemBin[T any](v BinValue, i int, fn func([]BinValue) (T, error), fallback T) T {
	return ParseElemBin(v, i, func(el BinValue) (T, error) {
		list, err := el.AsList()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(list)
	}, fallback)
}

// ParseListFieldBin applies fn to the list payload stored under key.
func ParseListFieldBin[T any](v BinValue, key []byte, fn func([]BinValue) (T, error), fallback T) T {
	return ParseFieldBin(v, key, func(val BinValue) (T, error) {
		list, err := val.AsList()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(list)
	}, fallback)
}

// ParseMapElemBin applies fn to the map payload of the i-th element.
func ParseMapElemBin[T any](v BinValue, i int, fn func(map[string]BinValue) (T, error), fallback T) T {
	return ParseElemBin(v, i, func(el BinValue) (T, error) {
		m, err := el.AsMap()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(m)
	}, fallback)
}

// ParseMapFieldBin applies fn to the map payload stored under key.
func ParseMapFieldBin[T any](v BinValue, key []byte, fn func(map[string]BinValue) (T, error), fallback T) T {
	return ParseFieldBin(v, key, func(val BinValue) (T, error) {
		m, err := val.AsMap()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(m)
	}, fallback)
}
