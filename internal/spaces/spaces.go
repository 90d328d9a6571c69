package spaces

import (
	"errors"
	"time"
)

// Kind identifies one of the three space tables. Handlers parse it from the
// URL; everything below the handler is parameterized by it instead of being
// copied per table.
type Kind string

const (
	KindExhibition Kind = "exhibition"
	KindParking    Kind = "parking"
	KindRent       Kind = "rent"
)

var (
	ErrSpaceNotFound = errors.New("space not found")
	ErrUnknownKind   = errors.New("unknown space kind")
)

// ParseKind validates a URL segment against the known kinds.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindExhibition, KindParking, KindRent:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

// Space is the domain shape shared by all three kinds. Kind-specific fields
// are pointers so JSON responses only carry the fields that apply.
type Space struct {
	ID           int64  `json:"id"`
	Kind         Kind   `json:"-"`
	BuildingName string `json:"building_name"`
	Description  string `json:"description,omitempty"`

	AreaSqm       *float64 `json:"area_sqm,omitempty"`
	CeilingHeight *float64 `json:"ceiling_height,omitempty"`

	NumberOfSeats *float64 `json:"number_of_seats,omitempty"`

	SpacesName                  *string  `json:"spaces_name,omitempty"`
	ElectricitySubscriberNumber *float64 `json:"electricity_subscriber_number,omitempty"`
	WaterSubscriberNumber       *float64 `json:"water_subscriber_number,omitempty"`
	GasSubscriberNumber         *float64 `json:"gas_subscriber_number,omitempty"`

	CreatedByUserID *int64    `json:"created_by_user_id"`
	UpdatedByUserID *int64    `json:"updated_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Summary holds the per-kind record counts plus their sum.
type Summary struct {
	Exhibition int64 `json:"exhibition"`
	Parking    int64 `json:"parking"`
	Rent       int64 `json:"rent"`
	Total      int64 `json:"total"`
}

type ServiceAPI interface {
	List(kind Kind) ([]*Space, error)
	Get(kind Kind, id int64) (*Space, error)
	Create(kind Kind, dto SpaceDTO, actorID int64) (*Space, error)
	Update(kind Kind, id int64, dto SpaceDTO, actorID int64) (*Space, error)
	Delete(kind Kind, id int64) (*Space, error)
	Summarize() (*Summary, error)
}

type RepositoryAPI interface {
	GetAll(kind Kind) ([]*Space, error)
	GetByID(kind Kind, id int64) (*Space, error)
	Create(space *Space) error
	Update(space *Space) error
	Delete(kind Kind, id int64) error
}

// StatsRepositoryAPI counts records per kind. Kept separate from the CRUD
// repository so the aggregator can run on a plain pooled connection.
type StatsRepositoryAPI interface {
	Count(kind Kind) (int64, error)
}
