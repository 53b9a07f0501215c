package assets

import (
	"image"
	"image/color"
)

// Default 1x1 textures bound to material slots that have nothing assigned, so shaders
// can sample every slot. Valid after InitDefaultTextures.
var (
	DefaultDiffuseTexId  Texture
	DefaultSpecularTexId Texture
	DefaultNormalTexId   Texture
	DefaultEmissionTexId Texture
)

func solidColorImage(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}

// InitDefaultTextures uploads the default textures. Requires a GL context
func InitDefaultTextures() {
	DefaultDiffuseTexId = NewTextureFromImage(solidColorImage(color.NRGBA{R: 255, G: 255, B: 255, A: 255}), nil)
	DefaultSpecularTexId = NewTextureFromImage(solidColorImage(color.NRGBA{A: 255}), nil)
	DefaultNormalTexId = NewTextureFromImage(solidColorImage(color.NRGBA{R: 128, G: 128, B: 255, A: 255}), &TextureLoadOptions{NoSrgba: true})
	DefaultEmissionTexId = NewTextureFromImage(solidColorImage(color.NRGBA{A: 255}), nil)
}
