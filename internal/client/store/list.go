package store

// The helpers below never modify their input slice.

func prepend[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

func replaceByID[T any](items []T, v T, idOf func(T) string) []T {
	i := indexOf(items, idOf(v), idOf)
	if i < 0 {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	i := indexOf(items, id, idOf)
	if i < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func ptr[T any](v T) *T { return &v }
