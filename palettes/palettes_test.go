// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjust(t *testing.T) {
	// long enough palette is returned as is
	p := Default()
	assert.Equal(t, p, Adjust(p, 10))

	// up to 28 categories fall back to the 26-color palette
	assert.Equal(t, Default26, Adjust(p, 11))
	assert.Equal(t, Default26, Adjust(p, 28))

	// beyond that, the 64-color palette
	assert.Equal(t, Default64, Adjust(p, 29))
	assert.Equal(t, Default64, Adjust(p, len(Default64)))

	// beyond that, all grey
	grey := Adjust(p, 100)
	assert.Equal(t, 100, len(grey))
	assert.Equal(t, grey[0], grey[99])

	// nil palette starts from the default cycle
	assert.Equal(t, Default(), Adjust(nil, 3))
}

func TestSpaced(t *testing.T) {
	p := Spaced(12)
	assert.Equal(t, 12, len(p))
	seen := map[color.RGBA]bool{}
	for _, c := range p {
		assert.False(t, seen[c], "spaced colors must be distinct")
		seen[c] = true
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = ParseColor("royalblue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{65, 105, 225, 255}, c)

	c, err = ParseColor("k")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c)

	_, err = ParseColor("clusters")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)

	assert.True(t, IsColorLike("grey"))
	assert.True(t, IsColorLike("#abc"))
	assert.False(t, IsColorLike("louvain"))
}

func TestHexRoundTrip(t *testing.T) {
	p, err := FromHex([]string{"#023fa5", "#7d87b9"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#023fa5", "#7d87b9"}, p.Hex())

	_, err = FromHex([]string{"notacolor"})
	assert.Error(t, err)
}

func TestColormap(t *testing.T) {
	assert.Equal(t, color.RGBA{0x44, 0x01, 0x54, 255}, Viridis.At(-1))
	assert.Equal(t, color.RGBA{0xfd, 0xe7, 0x25, 255}, Viridis.At(2))

	rev := Viridis.Reversed()
	assert.Equal(t, Viridis.At(0), rev.At(1))
	assert.Equal(t, Viridis.At(1), rev.At(0))

	cm, ok := ByName("viridis_r")
	require.True(t, ok)
	assert.Equal(t, Viridis.At(1), cm.At(0))

	_, ok = ByName("jetfuel")
	assert.False(t, ok)
}

func TestFromColors(t *testing.T) {
	cm, err := FromColors([]string{"royalblue", "white", "forestgreen"}, []float64{1, 0, 1})
	require.NoError(t, err)
	mid := cm.At(0.5)
	assert.Equal(t, uint8(0), mid.A)
	assert.Equal(t, uint8(255), cm.At(0).A)
	assert.Equal(t, uint8(255), cm.At(1).A)

	_, err = FromColors([]string{"royalblue"}, nil)
	assert.Error(t, err)
	_, err = FromColors([]string{"a", "b"}, []float64{1})
	assert.Error(t, err)
}
