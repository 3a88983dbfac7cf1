package invtotal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an 8 bit per channel color with alpha.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses "#RRGGBB" (opaque) or "#AARRGGBB".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xff)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = "#" + s[3:]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is ParseColor for constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	// premultiplied, as image/color expects.
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// String returns "#RRGGBB" for opaque colors and "#AARRGGBB" otherwise.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Palette is the color triple of the overlay box.
type Palette struct {
	Background Color `yaml:"background"`
	Border     Color `yaml:"border"`
	Text       Color `yaml:"text"`
}

// Palettes holds one palette per display situation.
type Palettes struct {
	// Neutral is used while banking and in Total mode.
	Neutral Palette `yaml:"neutral"`
	Profit  Palette `yaml:"profit"`
	Loss    Palette `yaml:"loss"`
}

// Config is the user configuration. It is read-only for the engine.
type Config struct {
	Mode ValuationMode `yaml:"mode"`
	// IgnoredItems is a free-form comma separated list of item names.
	IgnoredItems string `yaml:"ignored_items"`

	ShowOnEmpty                  bool `yaml:"show_on_empty"`
	ShowWhileBanking             bool `yaml:"show_while_banking"`
	ShowWhileInventoryUnselected bool `yaml:"show_while_inventory_unselected"`
	ShowTooltip                  bool `yaml:"show_tooltip"`
	ShowRunTime                  bool `yaml:"show_run_time"`
	ShowExactGP                  bool `yaml:"show_exact_gp"`
	ShowCoinStack                bool `yaml:"show_coin_stack"`

	RoundCorners bool `yaml:"round_corners"`
	CornerRadius int  `yaml:"corner_radius"`

	OffsetX         int  `yaml:"offset_x"`
	OffsetXNegative bool `yaml:"offset_x_negative"`
	OffsetY         int  `yaml:"offset_y"`
	OffsetYNegative bool `yaml:"offset_y_negative"`

	Colors Palettes `yaml:"colors"`
}

// DefaultIgnoredItems are the cannon parts, which are deployed rather than carried.
const DefaultIgnoredItems = "Cannon barrels, Cannon base, Cannon furnace, Cannon stand"

// DefaultConfig returns the out of the box configuration.
func DefaultConfig() Config {
	border := MustParseColor("#0E0E0E")
	text := MustParseColor("#FFF7E3")
	return Config{
		Mode:                         Total,
		IgnoredItems:                 DefaultIgnoredItems,
		ShowOnEmpty:                  true,
		ShowWhileBanking:             true,
		ShowWhileInventoryUnselected: true,
		ShowTooltip:                  true,
		ShowCoinStack:                true,
		RoundCorners:                 true,
		CornerRadius:                 10,
		OffsetY:                      42,
		Colors: Palettes{
			Neutral: Palette{Background: MustParseColor("#99903D"), Border: border, Text: text},
			Profit:  Palette{Background: MustParseColor("#245C2D"), Border: border, Text: text},
			Loss:    Palette{Background: MustParseColor("#5F1515"), Border: border, Text: text},
		},
	}
}

// Offsets returns the signed pixel offsets of the overlay box.
func (c Config) Offsets() (x, y int) {
	x, y = c.OffsetX, c.OffsetY
	if c.OffsetXNegative {
		x = -x
	}
	if c.OffsetYNegative {
		y = -y
	}
	return x, y
}

// Radius returns the corner radius in effect.
func (c Config) Radius() int {
	if !c.RoundCorners {
		return 0
	}
	return c.CornerRadius
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	var errs []error
	if c.Mode != Total && c.Mode != ProfitLoss {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownMode, c.Mode))
	}
	if c.CornerRadius < 0 {
		errs = append(errs, fmt.Errorf("corner_radius must be positive, got %d", c.CornerRadius))
	}
	if c.OffsetX < 0 {
		errs = append(errs, fmt.Errorf("offset_x must be positive (use offset_x_negative), got %d", c.OffsetX))
	}
	if c.OffsetY < 0 {
		errs = append(errs, fmt.Errorf("offset_y must be positive (use offset_y_negative), got %d", c.OffsetY))
	}
	return errors.Join(errs...)
}

// ParseConfig reads a yaml configuration over the defaults.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads a yaml configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// EncodeConfig returns the yaml representation of the configuration.
func EncodeConfig(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}
