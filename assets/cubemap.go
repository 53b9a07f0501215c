package assets

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type Cubemap struct {
	// Paths in the order right, left, top, bottom, front, back
	Paths [6]string
	TexID uint32
}

func (c *Cubemap) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.TexID)
}

func (c *Cubemap) Delete() {
	gl.DeleteTextures(1, &c.TexID)
	c.TexID = 0
}

func LoadCubemapTextures(rightTex, leftTex, topTex, botTex, frontTex, backTex string, loadOptions *TextureLoadOptions) (Cubemap, error) {

	if loadOptions == nil {
		loadOptions = &TextureLoadOptions{}
	}

	cmap := Cubemap{
		Paths: [6]string{rightTex, leftTex, topTex, botTex, frontTex, backTex},
	}

	gl.GenTextures(1, &cmap.TexID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cmap.TexID)

	internalFormat := int32(gl.SRGB_ALPHA)
	if loadOptions.NoSrgba {
		internalFormat = gl.RGBA8
	}

	for i := 0; i < len(cmap.Paths); i++ {

		f, err := os.Open(cmap.Paths[i])
		if err != nil {
			cmap.Delete()
			return Cubemap{}, fmt.Errorf("failed to open cubemap face '%s': %w", cmap.Paths[i], err)
		}

		nrgba, err := DecodeImage(f)
		f.Close()
		if err != nil {
			cmap.Delete()
			return Cubemap{}, fmt.Errorf("failed to load cubemap face '%s': %w", cmap.Paths[i], err)
		}

		// Cubemap faces use a top-left origin, so undo the flip DecodeImage does
		flipVertically(nrgba)

		width := int32(nrgba.Rect.Dx())
		height := int32(nrgba.Rect.Dy())
		gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i), 0, internalFormat, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&nrgba.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return cmap, nil
}
