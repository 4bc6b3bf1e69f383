package catalogfile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

type fileDTO struct {
	Paints []paintDTO `yaml:"paints" json:"paints"`
}

type paintDTO struct {
	Name    string    `yaml:"name" json:"name"`
	Hex     string    `yaml:"hex" json:"hex"`
	RGB     []float64 `yaml:"rgb" json:"rgb"`
	Density *float64  `yaml:"density" json:"density"`
}

// toCatalog maps the decoded document onto catalog.Paint records and lets
// catalog.New enforce names and weights. An empty paints list is valid.
func toCatalog(doc fileDTO) (*catalog.Catalog, error) {
	paints := make([]catalog.Paint, 0, len(doc.Paints))
	for i, d := range doc.Paints {
		p, err := toPaint(d)
		if err != nil {
			return nil, fmt.Errorf("%w: paint #%d %q: %w", ErrInvalidFile, i, d.Name, err)
		}
		paints = append(paints, p)
	}

	cat, err := catalog.New(paints)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return cat, nil
}

func toPaint(d paintDTO) (catalog.Paint, error) {
	var (
		c   color.Color
		err error
	)
	switch {
	case d.Hex != "" && d.RGB != nil:
		return catalog.Paint{}, errors.New("both hex and rgb given")
	case d.Hex != "":
		c, err = color.Parse(d.Hex)
	case d.RGB != nil:
		if len(d.RGB) != 3 {
			return catalog.Paint{}, fmt.Errorf("rgb needs 3 channels, got %d", len(d.RGB))
		}
		c, err = color.New(d.RGB[0], d.RGB[1], d.RGB[2])
	default:
		return catalog.Paint{}, errors.New("one of hex or rgb is required")
	}
	if err != nil {
		return catalog.Paint{}, err
	}

	p := catalog.Paint{Name: d.Name, Color: c}
	if d.Density != nil {
		if !(*d.Density > 0) {
			return catalog.Paint{}, fmt.Errorf("density %v: %w", *d.Density, catalog.ErrInvalidWeight)
		}
		p.Weight = *d.Density
	}

	return p, nil
}
