package skirt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ZoserLock/skirt/internal"
)

// DefaultFloor is the height the skirt is dropped to.
const DefaultFloor = -10.0

// Axis names the vertical axis of the terrain.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (this Axis) String() string {
	if this < AxisX || this > AxisZ {
		return fmt.Sprintf("Axis(%d)", int(this))
	}
	return axisNames[this]
}

func (this Axis) MarshalText() ([]byte, error) {
	if this < AxisX || this > AxisZ {
		return nil, fmt.Errorf("%w: axis %d", ErrInvalidOptions, int(this))
	}
	return []byte(axisNames[this]), nil
}

func (this *Axis) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range axisNames {
		if n == name {
			*this = Axis(i)
			return nil
		}
	}

	return fmt.Errorf("%w: unknown axis %q", ErrInvalidOptions, text)
}

// Down returns the unit vector pointing down the axis.
func (this Axis) Down() vec3.T {
	var down vec3.T
	down[this] = -1
	return down
}

// Options tune border extraction and extrusion.
type Options struct {
	// Epsilon is the distance under which two vertex positions are treated
	// as the same point, both for seam detection and loop tracing.
	Epsilon float64 `toml:"epsilon"`

	// Floor is the coordinate along Axis the skirt bottom is dropped to.
	Floor float64 `toml:"floor"`

	// Axis is the vertical axis.
	Axis Axis `toml:"axis"`
}

func DefaultOptions() Options {
	return Options{
		Epsilon: internal.PointEpsilon,
		Floor:   DefaultFloor,
		Axis:    AxisY,
	}
}

func (this Options) Validate() error {
	if !(this.Epsilon > 0) {
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidOptions, this.Epsilon)
	}
	if this.Axis < AxisX || this.Axis > AxisZ {
		return fmt.Errorf("%w: axis %d", ErrInvalidOptions, int(this.Axis))
	}

	return nil
}

// drop moves p down to the floor along the vertical axis.
func (this Options) drop(p vec3.T) vec3.T {
	p[this.Axis] = this.Floor
	return p
}

func (this Options) height(p *vec3.T) float64 {
	return p[this.Axis]
}

// DecodeOptions reads TOML from r on top of DefaultOptions. Unknown keys
// are rejected.
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// LoadOptions reads a TOML options file.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer f.Close()

	opts, err := DecodeOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}

	return opts, nil
}
