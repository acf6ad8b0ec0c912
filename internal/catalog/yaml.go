package catalog

import (
	"fmt"

	"github.com/ecoshredder/spritegen/internal/palette"
	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Bins  []fileBin  `yaml:"bins"`
	Items []fileItem `yaml:"items"`
}

type fileBin struct {
	Name   string `yaml:"name"`
	Color  Color  `yaml:"color"`
	Emblem string `yaml:"emblem"`
	Label  string `yaml:"label"`
}

type fileItem struct {
	Name   string `yaml:"name"`
	Color  Color  `yaml:"color"`
	Emblem string `yaml:"emblem"`
}

// Color reads either "#rrggbb" or a three-element [r, g, b] sequence.
type Color palette.RGB

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		rgb, err := palette.ParseHex(s)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = Color(rgb)
		return nil
	case yaml.SequenceNode:
		var channels []int
		if err := value.Decode(&channels); err != nil {
			return fmt.Errorf("line %d: color channels: %w", value.Line, err)
		}
		if len(channels) != 3 {
			return fmt.Errorf("line %d: color needs 3 channels, got %d", value.Line, len(channels))
		}
		for _, ch := range channels {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("line %d: color channel %d out of range 0-255", value.Line, ch)
			}
		}
		*c = Color{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2])}
		return nil
	default:
		return fmt.Errorf("line %d: color must be \"#rrggbb\" or [r, g, b]", value.Line)
	}
}

func (c Color) MarshalYAML() (interface{}, error) {
	return palette.RGB(c).Hex(), nil
}
