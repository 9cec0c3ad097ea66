package matprop

import (
	"fmt"
)

// Renderer is the host side of a drawable surface. GetPropertyBlock replaces
// the contents of block with the overrides currently applied to the given
// material slot; SetPropertyBlock applies block to that slot.
type Renderer interface {
	GetPropertyBlock(block *PropertyBlock, slot int)
	SetPropertyBlock(block *PropertyBlock, slot int)
}

// MeshRenderer is an in-memory Renderer that keeps one override set per
// material slot. Hosts without their own renderer binding, and tests, use it
// directly.
type MeshRenderer struct {
	Name      string
	overrides []*PropertyBlock
	commits   int
}

func NewMeshRenderer(name string, slots int) *MeshRenderer {
	if slots < 1 {
		slots = 1
	}
	return &MeshRenderer{
		Name:      name,
		overrides: make([]*PropertyBlock, slots),
	}
}

func (r *MeshRenderer) SlotCount() int {
	return len(r.overrides)
}

func (r *MeshRenderer) GetPropertyBlock(block *PropertyBlock, slot int) {
	r.checkSlot(slot)
	block.CopyFrom(r.overrides[slot])
}

func (r *MeshRenderer) SetPropertyBlock(block *PropertyBlock, slot int) {
	r.checkSlot(slot)
	stored := r.overrides[slot]
	if stored == nil {
		stored = NewPropertyBlock()
		r.overrides[slot] = stored
	}
	stored.CopyFrom(block)
	r.commits++
}

// Commits counts SetPropertyBlock calls over the renderer's lifetime.
func (r *MeshRenderer) Commits() int {
	return r.commits
}

func (r *MeshRenderer) checkSlot(slot int) {
	if slot < 0 || slot >= len(r.overrides) {
		panic(fmt.Sprintf("material slot %d out of range for renderer %q (%d slots)", slot, r.Name, len(r.overrides)))
	}
}
