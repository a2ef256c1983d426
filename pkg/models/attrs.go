package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AttrBag is the per-type attribute document of an asset, stored as opaque
// JSON text. Values round-trip losslessly for string-valued keys.
type AttrBag map[string]any

func (b AttrBag) Value() (driver.Value, error) {
	if b == nil {
		b = AttrBag{}
	}
	raw, err := json.Marshal(b)
	return string(raw), err
}

func (b *AttrBag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = AttrBag{}
		return nil
	case []byte:
		if len(v) == 0 {
			*b = AttrBag{}
			return nil
		}
		return json.Unmarshal(v, b)
	case string:
		if v == "" {
			*b = AttrBag{}
			return nil
		}
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into AttrBag", src)
	}
}

// Point is an explicit map placement in map-pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p *Point) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	return string(raw), err
}

func (p *Point) Scan(src any) error {
	return scanJSON(src, p, "Point")
}

// Rect is a location's rectangular map area.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r *Rect) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	raw, err := json.Marshal(r)
	return string(raw), err
}

func (r *Rect) Scan(src any) error {
	return scanJSON(src, r, "Rect")
}

func scanJSON(src, dest any, kind string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %s", src, kind)
	}
}

// Typed attribute variants for the asset types with a known schema. Anything
// else keeps a free-form AttrBag.

type WorkstationAttrs struct {
	Peripherals []string `json:"peripherals"`
}

func (w WorkstationAttrs) Bag() AttrBag {
	peripherals := w.Peripherals
	if peripherals == nil {
		peripherals = []string{}
	}
	items := make([]any, len(peripherals))
	for i, p := range peripherals {
		items[i] = p
	}
	return AttrBag{"peripherals": items}
}

type PhoneAttrs struct {
	IMEI      string `json:"imei"`
	Extension string `json:"ramal"`
}

func (p PhoneAttrs) Bag() AttrBag {
	return AttrBag{"imei": p.IMEI, "ramal": p.Extension}
}
