package config

import (
	"fmt"
	"image"
	"os"

	"github.com/rook-computer/mytube-icon/internal/export"
	"github.com/rook-computer/mytube-icon/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	EnvFullRes = "MYTUBE_ICON_OUT"
	EnvResRoot = "MYTUBE_ICON_RES"
	EnvFilter  = "MYTUBE_ICON_FILTER"
)

// Config is the on-disk form of an icon definition and its export plan.
type Config struct {
	Icon   IconConfig   `yaml:"icon"`
	Export ExportConfig `yaml:"export"`
}

type IconConfig struct {
	Size       int              `yaml:"size"`
	Background BackgroundConfig `yaml:"background"`
	Glow       GlowConfig       `yaml:"glow"`
	Ring       RingConfig       `yaml:"ring"`
	Glyph      GlyphConfig      `yaml:"glyph"`
	Plate      PlateConfig      `yaml:"plate"`
	Label      LabelConfig      `yaml:"label"`
	Smooth     bool             `yaml:"smooth"`
}

type BackgroundConfig struct {
	Top    Color `yaml:"top"`
	Bottom Color `yaml:"bottom"`
	Inset  int   `yaml:"inset"`
	Radius int   `yaml:"radius"`
}

type GlowConfig struct {
	Bounds Rect  `yaml:"bounds"`
	Color  Color `yaml:"color"`
}

type RingConfig struct {
	Bounds  Rect    `yaml:"bounds"`
	Fill    Color   `yaml:"fill"`
	Outline Color   `yaml:"outline"`
	Width   float64 `yaml:"width"`
}

type GlyphConfig struct {
	Points []Point `yaml:"points"`
	Color  Color   `yaml:"color"`
}

type PlateConfig struct {
	Bounds Rect  `yaml:"bounds"`
	Radius int   `yaml:"radius"`
	Color  Color `yaml:"color"`
}

type LabelConfig struct {
	Text     string  `yaml:"text"`
	Origin   Point   `yaml:"origin"`
	Color    Color   `yaml:"color"`
	Size     float64 `yaml:"size"`
	FontFile string  `yaml:"font_file,omitempty"`
}

type TargetConfig struct {
	Dir  string `yaml:"dir"`
	Size int    `yaml:"size"`
}

type ExportConfig struct {
	FullRes  string         `yaml:"full_res"`
	ResRoot  string         `yaml:"res_root"`
	FileName string         `yaml:"file_name"`
	Filter   string         `yaml:"filter"`
	ICO      string         `yaml:"ico,omitempty"`
	Targets  []TargetConfig `yaml:"targets"`
}

// Default returns the built-in mytube icon and Android export layout.
func Default() Config {
	spec := render.DefaultSpec()
	plan := export.DefaultPlan()

	points := make([]Point, 0, len(spec.Glyph.Points))
	for _, p := range spec.Glyph.Points {
		points = append(points, pointOf(p))
	}
	targets := make([]TargetConfig, 0, len(plan.Targets))
	for _, t := range plan.Targets {
		targets = append(targets, TargetConfig{Dir: t.Dir, Size: t.Size})
	}

	return Config{
		Icon: IconConfig{
			Size: spec.Size,
			Background: BackgroundConfig{
				Top:    Color(spec.Background.Top),
				Bottom: Color(spec.Background.Bottom),
				Inset:  spec.Background.Inset,
				Radius: spec.Background.Radius,
			},
			Glow: GlowConfig{Bounds: rectOf(spec.Glow.Bounds), Color: Color(spec.Glow.Color)},
			Ring: RingConfig{
				Bounds:  rectOf(spec.Ring.Bounds),
				Fill:    Color(spec.Ring.Fill),
				Outline: Color(spec.Ring.Outline),
				Width:   spec.Ring.Width,
			},
			Glyph: GlyphConfig{Points: points, Color: Color(spec.Glyph.Color)},
			Plate: PlateConfig{Bounds: rectOf(spec.Plate.Bounds), Radius: spec.Plate.Radius, Color: Color(spec.Plate.Color)},
			Label: LabelConfig{
				Text:   spec.Label.Text,
				Origin: pointOf(spec.Label.Origin),
				Color:  Color(spec.Label.Color),
				Size:   spec.Label.Size,
			},
			Smooth: spec.Smooth,
		},
		Export: ExportConfig{
			FullRes:  plan.FullRes,
			ResRoot:  plan.ResRoot,
			FileName: plan.FileName,
			Filter:   plan.Filter,
			Targets:  targets,
		},
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default values; lists given in the file replace the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, suitable as a starting point for Load.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ApplyEnv overrides export paths and the filter from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvFullRes); v != "" {
		c.Export.FullRes = v
	}
	if v := os.Getenv(EnvResRoot); v != "" {
		c.Export.ResRoot = v
	}
	if v := os.Getenv(EnvFilter); v != "" {
		c.Export.Filter = v
	}
}

// IconSpec converts the icon section for the renderer, reading the label
// font file when one is set.
func (c Config) IconSpec() (render.IconSpec, error) {
	ic := c.Icon
	points := make([]image.Point, 0, len(ic.Glyph.Points))
	for _, p := range ic.Glyph.Points {
		points = append(points, p.Point())
	}
	spec := render.IconSpec{
		Size: ic.Size,
		Background: render.Background{
			Top:    ic.Background.Top.NRGBA(),
			Bottom: ic.Background.Bottom.NRGBA(),
			Inset:  ic.Background.Inset,
			Radius: ic.Background.Radius,
		},
		Glow: render.Glow{Bounds: ic.Glow.Bounds.Rectangle(), Color: ic.Glow.Color.NRGBA()},
		Ring: render.Ring{
			Bounds:  ic.Ring.Bounds.Rectangle(),
			Fill:    ic.Ring.Fill.NRGBA(),
			Outline: ic.Ring.Outline.NRGBA(),
			Width:   ic.Ring.Width,
		},
		Glyph: render.Glyph{Points: points, Color: ic.Glyph.Color.NRGBA()},
		Plate: render.Plate{Bounds: ic.Plate.Bounds.Rectangle(), Radius: ic.Plate.Radius, Color: ic.Plate.Color.NRGBA()},
		Label: render.Label{
			Text:   ic.Label.Text,
			Origin: ic.Label.Origin.Point(),
			Color:  ic.Label.Color.NRGBA(),
			Size:   ic.Label.Size,
		},
		Smooth: ic.Smooth,
	}
	if ic.Label.FontFile != "" {
		ttf, err := os.ReadFile(ic.Label.FontFile)
		if err != nil {
			return render.IconSpec{}, fmt.Errorf("failed to read label font: %w", err)
		}
		spec.Label.Font = ttf
	}
	return spec, nil
}

// Plan converts the export section for the exporter.
func (c Config) Plan() export.Plan {
	targets := make([]export.Target, 0, len(c.Export.Targets))
	for _, t := range c.Export.Targets {
		targets = append(targets, export.Target{Dir: t.Dir, Size: t.Size})
	}
	return export.Plan{
		FullRes:  c.Export.FullRes,
		ResRoot:  c.Export.ResRoot,
		FileName: c.Export.FileName,
		Targets:  targets,
		Filter:   c.Export.Filter,
		ICO:      c.Export.ICO,
	}
}

// Validate checks both sections. A configured font file must be readable.
func (c Config) Validate() error {
	spec, err := c.IconSpec()
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	if err := c.Plan().Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
