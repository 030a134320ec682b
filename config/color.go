package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a yaml-parsable NRGBA color written as "#rrggbb" or
// "#rrggbbaa".
type Color struct {
	color.NRGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(0xff)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
