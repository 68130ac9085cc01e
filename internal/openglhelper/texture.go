package openglhelper

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG decoding for texture files
	_ "image/png"  // register PNG decoding for texture files
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is a 2D RGBA texture
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// LoadTexture decodes a PNG or JPEG file and uploads it with mipmaps
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	return NewTexture(flipVertical(toRGBA(img))), nil
}

// NewTexture uploads pixel data as-is. Rows are expected bottom row first,
// as OpenGL samples them.
func NewTexture(rgba *image.RGBA) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	size := rgba.Rect.Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: size.X, Height: size.Y}
}

// Bind binds the texture to a texture unit (0 for GL_TEXTURE0)
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}

// toRGBA converts any image to a tightly packed RGBA image at origin (0, 0)
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Stride == 4*bounds.Dx() {
		return rgba
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// flipVertical returns a copy with the row order reversed
func flipVertical(src *image.RGBA) *image.RGBA {
	size := src.Rect.Size()
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	rowLen := size.X * 4

	for y := 0; y < size.Y; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+rowLen]
		dstStart := (size.Y - 1 - y) * dst.Stride
		copy(dst.Pix[dstStart:dstStart+rowLen], srcRow)
	}
	return dst
}
