package matprop

// PropertyBlock is a set of per-renderer material overrides layered on top of
// a shared material. The caller owns it and lends it to a Renderer to be
// filled and committed; nothing in this package allocates or retains one.
type PropertyBlock struct {
	colors map[PropertyKey]Color
}

func NewPropertyBlock() *PropertyBlock {
	return &PropertyBlock{colors: make(map[PropertyKey]Color)}
}

// GetColor returns the override for key, or a zero color when none is set.
func (b *PropertyBlock) GetColor(key PropertyKey) Color {
	return b.colors[key]
}

func (b *PropertyBlock) HasColor(key PropertyKey) bool {
	_, ok := b.colors[key]
	return ok
}

func (b *PropertyBlock) SetColor(key PropertyKey, c Color) {
	if b.colors == nil {
		b.colors = make(map[PropertyKey]Color)
	}
	b.colors[key] = c
}

func (b *PropertyBlock) Clear() {
	clear(b.colors)
}

func (b *PropertyBlock) Len() int {
	return len(b.colors)
}

func (b *PropertyBlock) IsEmpty() bool {
	return len(b.colors) == 0
}

// CopyFrom replaces the contents of b with those of src.
func (b *PropertyBlock) CopyFrom(src *PropertyBlock) {
	b.Clear()
	if src == nil {
		return
	}
	for k, v := range src.colors {
		b.SetColor(k, v)
	}
}
