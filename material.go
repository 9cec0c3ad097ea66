package matprop

import (
	"fmt"
	"reflect"
)

// Every accessor below follows the same contract: fetch the overrides for the
// slot into block before reading, commit block back to the slot after writing.
// None of them keep state between calls.

// SetOpacity replaces the alpha of the base color on slot 0.
func SetOpacity(opacity float32, renderer Renderer, block *PropertyBlock) {
	SetOpacityProperty(opacity, renderer, block, PropColor)
}

// SetOpacityProperty replaces the alpha of the color at key on slot 0. RGB is
// kept and opacity is not range checked.
func SetOpacityProperty(opacity float32, renderer Renderer, block *PropertyBlock, key PropertyKey) {
	mustBind(renderer, block)
	renderer.GetPropertyBlock(block, 0)
	c := block.GetColor(key)
	block.SetColor(key, c.WithAlpha(opacity))
	renderer.SetPropertyBlock(block, 0)
}

func SetColor(c Color, renderer Renderer, block *PropertyBlock, slot int) {
	SetColorProperty(c, renderer, block, PropColor, slot)
}

func SetEmissiveColor(c Color, renderer Renderer, block *PropertyBlock, slot int) {
	SetColorProperty(c, renderer, block, PropEmissive, slot)
}

func SetColorProperty(c Color, renderer Renderer, block *PropertyBlock, key PropertyKey, slot int) {
	mustBind(renderer, block)
	renderer.GetPropertyBlock(block, slot)
	block.SetColor(key, c)
	renderer.SetPropertyBlock(block, slot)
}

func GetColor(renderer Renderer, block *PropertyBlock, slot int) Color {
	return GetColorProperty(renderer, block, PropColor, slot)
}

func GetEmissiveColor(renderer Renderer, block *PropertyBlock, slot int) Color {
	return GetColorProperty(renderer, block, PropEmissive, slot)
}

// GetColorProperty reads the color at key for slot. It does not commit.
func GetColorProperty(renderer Renderer, block *PropertyBlock, key PropertyKey, slot int) Color {
	mustBind(renderer, block)
	renderer.GetPropertyBlock(block, slot)
	return block.GetColor(key)
}

// mustBind rejects a missing renderer or block up front, including a typed nil
// pointer stored in the Renderer interface.
func mustBind(renderer Renderer, block *PropertyBlock) {
	if renderer == nil {
		panic("matprop: nil renderer")
	}
	if v := reflect.ValueOf(renderer); v.Kind() == reflect.Pointer && v.IsNil() {
		panic(fmt.Sprintf("matprop: nil %T renderer", renderer))
	}
	if block == nil {
		panic(fmt.Sprintf("matprop: nil property block for renderer %T", renderer))
	}
}
