package spaces

import (
	"strconv"

	"github.com/frahmantamala/facility-management/internal/core/common/validation"
)

// SpaceDTO accepts create/update payloads for any kind. Numeric fields are
// typed any because clients send them as numbers, numeric strings, or not at
// all; coerceNumeric folds every invalid shape to 0.
type SpaceDTO struct {
	BuildingName string `json:"building_name"`
	Description  string `json:"description"`

	AreaSqm       any `json:"area_sqm"`
	CeilingHeight any `json:"ceiling_height"`

	NumberOfSeats any `json:"number_of_seats"`

	SpacesName                  string `json:"spaces_name"`
	ElectricitySubscriberNumber any    `json:"electricity_subscriber_number"`
	WaterSubscriberNumber       any    `json:"water_subscriber_number"`
	GasSubscriberNumber         any    `json:"gas_subscriber_number"`
}

func (d SpaceDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("building_name", d.BuildingName).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// coerceNumeric normalizes a loosely typed numeric value. Absent, non-numeric
// and negative-garbage inputs all become 0.
func coerceNumeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// toSpace maps the DTO onto a domain record, populating only the fields that
// belong to the given kind.
func (d SpaceDTO) toSpace(kind Kind) *Space {
	s := &Space{
		Kind:         kind,
		BuildingName: d.BuildingName,
		Description:  d.Description,
	}

	switch kind {
	case KindExhibition:
		area := coerceNumeric(d.AreaSqm)
		height := coerceNumeric(d.CeilingHeight)
		s.AreaSqm = &area
		s.CeilingHeight = &height
	case KindParking:
		seats := coerceNumeric(d.NumberOfSeats)
		s.NumberOfSeats = &seats
	case KindRent:
		area := coerceNumeric(d.AreaSqm)
		electricity := coerceNumeric(d.ElectricitySubscriberNumber)
		water := coerceNumeric(d.WaterSubscriberNumber)
		gas := coerceNumeric(d.GasSubscriberNumber)
		if d.SpacesName != "" {
			name := d.SpacesName
			s.SpacesName = &name
		}
		s.AreaSqm = &area
		s.ElectricitySubscriberNumber = &electricity
		s.WaterSubscriberNumber = &water
		s.GasSubscriberNumber = &gas
	}

	return s
}
