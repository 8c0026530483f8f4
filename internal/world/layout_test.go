package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleLayout = `
player:
  eye_height: 1.75
  radius: 0.4
  height: 1.8

buildings:
  - name: general store
    position: [0, 2.5, -12]
    size: [10, 5, 8]
    enterable: true
    door:
      offset: [0, -1.0, 4.0]
      width: 1.6
      height: 3.0
      thickness: 0.4

wells:
  - name: village well
    position: [6, 0, 4]
    radius: 1.5
    height: 1.2

trees:
  - name: oak
    position: [-5, 0, 9]
    radius: 0.6
    height: 7.0

npcs:
  - name: innkeeper
    position: [-6, 0, 3]
    radius: 0.4
    height: 1.8
`

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(sampleLayout))
	require.NoError(t, err)

	require.Len(t, l.Buildings, 1)
	require.Len(t, l.Wells, 1)
	require.Len(t, l.Trees, 1)
	require.Len(t, l.NPCs, 1)

	require.Equal(t, "general store", l.Buildings[0].Name)
	require.True(t, l.Buildings[0].Enterable)
	require.Equal(t, float32(1.6), l.Buildings[0].Door.Width)
	require.Equal(t, float32(1.75), l.Player.EyeHeight)
}

func TestParseLayoutRejectsNegativeSizes(t *testing.T) {
	bad := `
buildings:
  - name: broken
    position: [0, 0, 0]
    size: [-10, 5, 8]
`
	_, err := ParseLayout([]byte(bad))
	require.ErrorIs(t, err, ErrInvalidLayout)

	badWell := `
wells:
  - name: broken well
    position: [0, 0, 0]
    radius: -1
    height: 1
`
	_, err = ParseLayout([]byte(badWell))
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestParseLayoutRejectsMalformedYAML(t *testing.T) {
	_, err := ParseLayout([]byte("buildings: [unclosed"))
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestBuildEnvironment(t *testing.T) {
	l, err := ParseLayout([]byte(sampleLayout))
	require.NoError(t, err)

	env := BuildEnvironment(l, nil)
	require.Len(t, env.Objects(), 3, "NPCs are dynamic agents, not world objects")

	bld, ok := env.FindBuilding(0)
	require.True(t, ok)
	require.Equal(t, "general store", bld.Name())
	require.True(t, bld.Enterable())
}
