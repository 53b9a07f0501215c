package assets

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"runtime"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
)

type TextureLoadOptions struct {
	GenMipMaps      bool
	KeepPixelsInMem bool
	// NoSrgba uploads the pixels as linear RGBA (e.g. normal maps)
	NoSrgba bool
}

type Texture struct {
	// Path only exists for textures loaded from disk
	Path   string
	TexID  uint32
	Width  int32
	Height int32
	// Pixels is only kept when TextureLoadOptions.KeepPixelsInMem is set
	Pixels []byte
}

func (t *Texture) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, t.TexID)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}

// DecodeImage decodes any registered format (png, jpeg, bmp, tiff, webp) into NRGBA.
// Rows are flipped so the first row is the bottom of the image, as OpenGL expects.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var nrgba *image.NRGBA
	if asNrgba, ok := img.(*image.NRGBA); ok {
		nrgba = asNrgba
	} else {
		nrgba = prism.ConvertImageToNRGBA(img, runtime.NumCPU())
	}

	// Normalize bounds to start at zero, which sub-images don't
	if nrgba.Rect.Min != (image.Point{}) {
		normalized := image.NewNRGBA(image.Rect(0, 0, nrgba.Rect.Dx(), nrgba.Rect.Dy()))
		draw.Draw(normalized, normalized.Rect, nrgba, nrgba.Rect.Min, draw.Src)
		nrgba = normalized
	}

	flipVertically(nrgba)
	return nrgba, nil
}

func flipVertically(img *image.NRGBA) {

	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bottom := 0, img.Rect.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {

		topRow := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		bottomRow := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]

		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}

func LoadTexture(file string, loadOptions *TextureLoadOptions) (Texture, error) {

	if loadOptions == nil {
		loadOptions = &TextureLoadOptions{}
	}

	f, err := os.Open(file)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to open texture '%s': %w", file, err)
	}
	defer f.Close()

	nrgba, err := DecodeImage(f)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to load texture '%s': %w", file, err)
	}

	tex := NewTextureFromImage(nrgba, loadOptions)
	tex.Path = file
	return tex, nil
}

// NewTextureFromImage uploads an already decoded image. The image is expected to be bottom row first
func NewTextureFromImage(img *image.NRGBA, loadOptions *TextureLoadOptions) Texture {

	if loadOptions == nil {
		loadOptions = &TextureLoadOptions{}
	}

	tex := Texture{
		Width:  int32(img.Rect.Dx()),
		Height: int32(img.Rect.Dy()),
	}

	gl.GenTextures(1, &tex.TexID)
	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if loadOptions.GenMipMaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}

	internalFormat := int32(gl.SRGB_ALPHA)
	if loadOptions.NoSrgba {
		internalFormat = gl.RGBA8
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))

	if loadOptions.GenMipMaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	if loadOptions.KeepPixelsInMem {
		tex.Pixels = img.Pix
	}

	return tex
}
