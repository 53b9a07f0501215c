package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	minLutSize = 2
	maxLutSize = 256
)

// ColorLUT is a parsed 3D color lookup table in the Adobe/Resolve .cube format.
// Data holds Size^3 RGB triples with red changing fastest, then green, then blue.
type ColorLUT struct {
	Title     string
	Size      int
	DomainMin [3]float32
	DomainMax [3]float32
	Data      []float32
}

func ParseCubeLUT(r io.Reader) (ColorLUT, error) {

	lut := ColorLUT{
		DomainMax: [3]float32{1, 1, 1},
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {

		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {

		case "TITLE":
			lut.Title = strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "TITLE")), "\"")

		case "LUT_1D_SIZE":
			return ColorLUT{}, errors.New("1D luts are not supported")

		case "LUT_3D_SIZE":

			if len(fields) != 2 {
				return ColorLUT{}, fmt.Errorf("line %d: LUT_3D_SIZE expects one value", lineNum)
			}

			size, err := strconv.Atoi(fields[1])
			if err != nil {
				return ColorLUT{}, fmt.Errorf("line %d: invalid LUT_3D_SIZE: %w", lineNum, err)
			}

			if size < minLutSize || size > maxLutSize {
				return ColorLUT{}, fmt.Errorf("line %d: LUT_3D_SIZE must be in [%d, %d] but got %d", lineNum, minLutSize, maxLutSize, size)
			}

			lut.Size = size
			lut.Data = make([]float32, 0, size*size*size*3)

		case "DOMAIN_MIN":
			if err := parseTriple(fields[1:], &lut.DomainMin); err != nil {
				return ColorLUT{}, fmt.Errorf("line %d: invalid DOMAIN_MIN: %w", lineNum, err)
			}

		case "DOMAIN_MAX":
			if err := parseTriple(fields[1:], &lut.DomainMax); err != nil {
				return ColorLUT{}, fmt.Errorf("line %d: invalid DOMAIN_MAX: %w", lineNum, err)
			}

		default:

			if lut.Size == 0 {
				return ColorLUT{}, fmt.Errorf("line %d: table data found before LUT_3D_SIZE", lineNum)
			}

			var rgb [3]float32
			if err := parseTriple(fields, &rgb); err != nil {
				return ColorLUT{}, fmt.Errorf("line %d: invalid table entry: %w", lineNum, err)
			}

			lut.Data = append(lut.Data, rgb[:]...)
		}
	}

	if err := scanner.Err(); err != nil {
		return ColorLUT{}, fmt.Errorf("failed to read lut: %w", err)
	}

	if lut.Size == 0 {
		return ColorLUT{}, errors.New("lut is missing LUT_3D_SIZE")
	}

	for i := 0; i < 3; i++ {
		if lut.DomainMax[i] <= lut.DomainMin[i] {
			return ColorLUT{}, fmt.Errorf("lut DOMAIN_MAX must be larger than DOMAIN_MIN on every channel but got min=%v and max=%v", lut.DomainMin, lut.DomainMax)
		}
	}

	expectedEntries := lut.Size * lut.Size * lut.Size
	if len(lut.Data) != expectedEntries*3 {
		return ColorLUT{}, fmt.Errorf("lut of size %d expects %d entries but has %d", lut.Size, expectedEntries, len(lut.Data)/3)
	}

	return lut, nil
}

// CoordTransform returns the per channel scale and offset that map a color in the lut domain to
// 3D texture coordinates, such that DomainMin lands on the center of the first texel and DomainMax
// on the center of the last one. Shaders sample at `color * scale + offset`.
func (lut *ColorLUT) CoordTransform() (scale, offset [3]float32) {

	n := float32(lut.Size)
	for i := 0; i < 3; i++ {
		scale[i] = (n - 1) / (n * (lut.DomainMax[i] - lut.DomainMin[i]))
		offset[i] = 0.5/n - lut.DomainMin[i]*scale[i]
	}

	return scale, offset
}

func parseTriple(fields []string, out *[3]float32) error {

	if len(fields) != 3 {
		return fmt.Errorf("expected 3 values but got %d", len(fields))
	}

	for i := 0; i < 3; i++ {

		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return err
		}

		out[i] = float32(f)
	}

	return nil
}

// Texture3D is a color LUT uploaded as a 3D texture
type Texture3D struct {
	Path  string
	TexID uint32
	Size  int32

	// Remap from colors to texture coordinates, see ColorLUT.CoordTransform. W is unused
	CoordScale  gglm.Vec4
	CoordOffset gglm.Vec4
}

func (t *Texture3D) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_3D, t.TexID)
}

func (t *Texture3D) Delete() {
	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}

func NewTexture3DFromLUT(lut *ColorLUT) Texture3D {

	scale, offset := lut.CoordTransform()
	tex := Texture3D{
		Size:        int32(lut.Size),
		CoordScale:  gglm.NewVec4(scale[0], scale[1], scale[2], 0),
		CoordOffset: gglm.NewVec4(offset[0], offset[1], offset[2], 0),
	}

	gl.GenTextures(1, &tex.TexID)
	gl.BindTexture(gl.TEXTURE_3D, tex.TexID)

	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.TexImage3D(gl.TEXTURE_3D, 0, gl.RGB32F, tex.Size, tex.Size, tex.Size, 0, gl.RGB, gl.FLOAT, gl.Ptr(&lut.Data[0]))
	gl.BindTexture(gl.TEXTURE_3D, 0)

	return tex
}

func LoadColorLUT(file string) (Texture3D, error) {

	f, err := os.Open(file)
	if err != nil {
		return Texture3D{}, fmt.Errorf("failed to open color lut '%s': %w", file, err)
	}
	defer f.Close()

	lut, err := ParseCubeLUT(f)
	if err != nil {
		return Texture3D{}, fmt.Errorf("failed to parse color lut '%s': %w", file, err)
	}

	tex := NewTexture3DFromLUT(&lut)
	tex.Path = file
	return tex, nil
}
