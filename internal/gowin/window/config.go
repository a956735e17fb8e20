package window

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultClientSize is used when a Config has no Size.
var DefaultClientSize = Size{Width: 640, Height: 480}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Point is a position in pixels.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Config describes a window at creation time. It is read once by
// Application.CreateWindow; changing it afterwards has no effect.
type Config struct {
	Title string `yaml:"title"`

	// Size is the client-area size. Nil means DefaultClientSize.
	Size *Size `yaml:"size,omitempty"`
	// Position is the outer top-left corner. Nil lets the OS choose.
	Position *Point `yaml:"position,omitempty"`

	Decorated bool `yaml:"decorated"`
	Resizable bool `yaml:"resizable"`
}

// DefaultConfig returns an untitled, decorated, resizable window with OS
// chosen placement.
func DefaultConfig() Config {
	return Config{
		Decorated: true,
		Resizable: true,
	}
}

// ClientSize returns the requested client-area size.
func (c Config) ClientSize() Size {
	if c.Size == nil {
		return DefaultClientSize
	}
	return *c.Size
}

// Validate checks that the config can be turned into a native window.
func (c Config) Validate() error {
	if strings.ContainsRune(c.Title, 0) {
		return fmt.Errorf("%w: title contains a NUL character", ErrTitleEncoding)
	}
	if c.Size != nil && !(c.Size.Width > 0 && fitsInt32(c.Size.Width) && c.Size.Height > 0 && fitsInt32(c.Size.Height)) {
		return fmt.Errorf("invalid size %vx%v", c.Size.Width, c.Size.Height)
	}
	if c.Position != nil && !(fitsInt32(c.Position.X) && fitsInt32(c.Position.Y)) {
		return fmt.Errorf("invalid position %v,%v", c.Position.X, c.Position.Y)
	}
	return nil
}

// fitsInt32 reports whether v converts to an int32 without overflow. NaN
// does not fit.
func fitsInt32(v float32) bool {
	f := float64(v)
	return f >= math.MinInt32 && f < math.MaxInt32+1
}

func (c *Config) normalize() {
	if c.Size != nil && *c.Size == (Size{}) {
		c.Size = nil
	}
	// A popup has no frame to resize by.
	if !c.Decorated {
		c.Resizable = false
	}
}

// ParseConfig decodes a YAML window description. Keys that are absent keep
// their DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse window config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse window config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML window description from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read window config: %w", err)
	}
	return ParseConfig(data)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
