package skirt

import (
	"log/slog"
)

// Material references the renderer material a border is drawn with. The
// generator never interprets it.
type Material struct {
	// Name is the material name, as used by OBJ "usemtl".
	Name string

	// Library is the file defining the material, as used by OBJ "mtllib".
	Library string
}

// Border is a generated skirt together with the loop it was extruded from
// and the material to draw it with.
type Border struct {
	Mesh     *Mesh
	Material Material
	Loop     Loop
}

// Generator owns the border of one source mesh. Each call to Generate
// replaces the previous border. A Generator is not safe for concurrent use.
type Generator struct {
	material Material
	opts     Options
	logger   *slog.Logger
	border   *Border
}

type Option func(*Generator)

func WithOptions(opts Options) Option {
	return func(g *Generator) {
		g.opts = opts
	}
}

// WithLogger sets the logger for this generator instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

func NewGenerator(material Material, opts ...Option) *Generator {
	this := &Generator{
		material: material,
		opts:     DefaultOptions(),
	}
	for _, opt := range opts {
		opt(this)
	}

	return this
}

// Generate extracts the boundary loop of src and extrudes it. On success
// the result becomes the generator's border; on failure the generator is
// left without a border and the failing stage is logged.
func (this *Generator) Generate(src Source) (*Border, error) {
	log := this.log()

	// the previous border is released whatever the outcome
	this.border = nil

	loop, err := ExtractLoop(src, this.opts)
	if err != nil {
		log.Error("skirt: failed to get border loop", "err", err)
		return nil, err
	}

	mesh, err := Extrude(loop, this.opts)
	if err != nil {
		log.Error("skirt: failed to extrude border", "err", err)
		return nil, err
	}

	this.border = &Border{
		Mesh:     mesh,
		Material: this.material,
		Loop:     loop,
	}

	bb := mesh.BoundingBox()
	log.Info("skirt: border generated",
		"loopPoints", len(loop),
		"perimeter", loop.Perimeter(),
		"vertices", len(mesh.Points),
		"triangles", len(mesh.Faces),
		"min", bb.Min,
		"max", bb.Max,
		"material", this.material.Name,
	)

	return this.border, nil
}

// Border returns the current border, or nil if none was generated or the
// last generation failed.
func (this *Generator) Border() *Border {
	return this.border
}

func (this *Generator) Material() Material {
	return this.material
}

// SetMaterial changes the material of later borders and of the current one.
func (this *Generator) SetMaterial(material Material) {
	this.material = material
	if this.border != nil {
		this.border.Material = material
	}
}

func (this *Generator) Options() Options {
	return this.opts
}

func (this *Generator) log() *slog.Logger {
	if this.logger != nil {
		return this.logger
	}
	return Logger()
}
