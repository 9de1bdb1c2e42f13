package image

import (
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, blocks []color.NRGBA) string {
	t.Helper()

	// one 60px-wide flat stripe per block
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, 60*len(blocks), 60))
	for i, c := range blocks {
		for x := 60 * i; x < 60*(i+1); x++ {
			for y := 0; y < 60; y++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "img.png")
	f, e := os.Create(path)
	require.NoError(t, e)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))

	return path
}

func TestExtract(t *testing.T) {
	path := writePNG(t, []color.NRGBA{
		{R: 10, G: 10, B: 10, A: 255},
		{R: 220, G: 30, B: 30, A: 255},
		{R: 240, G: 240, B: 240, A: 255},
	})

	colors, e := Extract(path, 3)
	require.NoError(t, e)
	require.Len(t, colors, 3)

	// ordered dark to light
	first, last := rgb2Lab(colors[0]), rgb2Lab(colors[2])
	assert.Less(t, first.L(), last.L())
}

func TestExtractNotEnoughVariation(t *testing.T) {
	path := writePNG(t, []color.NRGBA{{R: 90, G: 90, B: 90, A: 255}})

	_, e := Extract(path, 4)
	assert.Error(t, e)
}

func TestExtractMissingFile(t *testing.T) {
	_, e := Extract(filepath.Join(t.TempDir(), "nope.png"), 3)
	assert.Error(t, e)
}

func TestLoad(t *testing.T) {
	path := writePNG(t, []color.NRGBA{{R: 1, G: 2, B: 3, A: 255}})

	img, e := Load(path)
	require.NoError(t, e)
	assert.Equal(t, 60, img.Bounds().Max.X)
}
