package skirt_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZoserLock/skirt"
)

func TestGenerator_Generate(t *testing.T) {
	material := skirt.Material{Name: "border", Library: "terrain.mtl"}
	gen := skirt.NewGenerator(material)
	assert.Nil(t, gen.Border())

	border, err := gen.Generate(unitSquare(t))
	require.NoError(t, err)

	assert.Same(t, border, gen.Border())
	assert.Equal(t, material, border.Material)
	assert.Len(t, border.Loop, 4)
	assert.Len(t, border.Mesh.Points, 16)
	assert.Len(t, border.Mesh.Faces, 8)
}

func TestGenerator_Replaces(t *testing.T) {
	gen := skirt.NewGenerator(skirt.Material{Name: "border"})

	first, err := gen.Generate(unitSquare(t))
	require.NoError(t, err)

	second, err := gen.Generate(seamStrip(t))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotSame(t, first.Mesh, second.Mesh)
	assert.Same(t, second, gen.Border())
	assert.Len(t, gen.Border().Mesh.Points, 24, "replaced, not merged")
}

func TestGenerator_FailureClearsBorder(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	gen := skirt.NewGenerator(skirt.Material{}, skirt.WithLogger(logger))

	_, err := gen.Generate(unitSquare(t))
	require.NoError(t, err)
	require.NotNil(t, gen.Border())
	assert.Contains(t, buf.String(), "border generated")

	border, err := gen.Generate(cube(t))
	assert.ErrorIs(t, err, skirt.ErrInsufficientBoundaryEdges)
	assert.Nil(t, border)
	assert.Nil(t, gen.Border())
	assert.Contains(t, buf.String(), "level=ERROR")

	_, err = gen.Generate(gpuOnly{})
	assert.ErrorIs(t, err, skirt.ErrMeshNotReadable)
}

func TestGenerator_Options(t *testing.T) {
	opts := skirt.DefaultOptions()
	opts.Floor = -1

	gen := skirt.NewGenerator(skirt.Material{}, skirt.WithOptions(opts))
	assert.Equal(t, opts, gen.Options())

	border, err := gen.Generate(unitSquare(t))
	require.NoError(t, err)

	bb := border.Mesh.BoundingBox()
	assert.Equal(t, -1.0, bb.Min[1])
}

func TestGenerator_SetMaterial(t *testing.T) {
	gen := skirt.NewGenerator(skirt.Material{Name: "a"})
	border, err := gen.Generate(unitSquare(t))
	require.NoError(t, err)

	gen.SetMaterial(skirt.Material{Name: "b"})
	assert.Equal(t, "b", gen.Material().Name)
	assert.Equal(t, "b", border.Material.Name)
}

func TestSetLogger(t *testing.T) {
	defer skirt.SetLogger(nil)

	var buf bytes.Buffer
	skirt.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := skirt.ExtractLoop(seamStrip(t), skirt.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "seamEdges=2")

	skirt.SetLogger(nil)
	assert.False(t, skirt.Logger().Enabled(context.Background(), slog.LevelError))
}
