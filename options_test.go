package skirt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ZoserLock/skirt"
)

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want skirt.Options
		err  bool
	}{
		{
			name: "empty keeps defaults",
			want: skirt.DefaultOptions(),
		},
		{
			name: "floor only",
			toml: "floor = -25.5\n",
			want: skirt.Options{Epsilon: 1e-5, Floor: -25.5, Axis: skirt.AxisY},
		},
		{
			name: "all",
			toml: "epsilon = 0.001\nfloor = 0.0\naxis = \"Z\"\n",
			want: skirt.Options{Epsilon: 0.001, Floor: 0, Axis: skirt.AxisZ},
		},
		{name: "unknown key", toml: "depth = 3\n", err: true},
		{name: "bad axis", toml: "axis = \"w\"\n", err: true},
		{name: "negative epsilon", toml: "epsilon = -1\n", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := skirt.DecodeOptions(strings.NewReader(tt.toml))
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skirt.toml")
	require.NoError(t, os.WriteFile(path, []byte("floor = -4.0\n"), 0o644))

	opts, err := skirt.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, -4.0, opts.Floor)

	_, err = skirt.LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, skirt.DefaultOptions().Validate())

	opts := skirt.DefaultOptions()
	opts.Axis = skirt.Axis(7)
	assert.ErrorIs(t, opts.Validate(), skirt.ErrInvalidOptions)
}

func TestAxis(t *testing.T) {
	assert.Equal(t, vec3.T{0, -1, 0}, skirt.AxisY.Down())
	assert.Equal(t, vec3.T{0, 0, -1}, skirt.AxisZ.Down())
	assert.Equal(t, "x", skirt.AxisX.String())
	assert.Equal(t, "Axis(5)", skirt.Axis(5).String())

	text, err := skirt.AxisZ.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "z", string(text))

	var a skirt.Axis
	require.NoError(t, a.UnmarshalText([]byte(" X ")))
	assert.Equal(t, skirt.AxisX, a)
	assert.ErrorIs(t, a.UnmarshalText([]byte("up")), skirt.ErrInvalidOptions)
}
