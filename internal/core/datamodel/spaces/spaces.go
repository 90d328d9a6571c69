package spaces

import "time"

// ExhibitionSpace is the persistence model for exhibition halls.
// The table name keeps the historical misspelling carried by the
// production database; renaming it would require a data migration.
type ExhibitionSpace struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" db:"id"`
	BuildingName    string    `gorm:"column:building_name;not null" db:"building_name"`
	Description     string    `gorm:"column:description" db:"description"`
	AreaSqm         float64   `gorm:"column:area_sqm;default:0" db:"area_sqm"`
	CeilingHeight   float64   `gorm:"column:ceiling_height;default:0" db:"ceiling_height"`
	CreatedByUserID *int64    `gorm:"column:created_by_user_id" db:"created_by_user_id"`
	UpdatedByUserID *int64    `gorm:"column:updated_by_user_id" db:"updated_by_user_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" db:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" db:"updated_at"`
}

func (ExhibitionSpace) TableName() string {
	return "spaces_exhebition"
}

// ParkingSpace is the persistence model for parking lots.
type ParkingSpace struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" db:"id"`
	BuildingName    string    `gorm:"column:building_name;not null" db:"building_name"`
	Description     string    `gorm:"column:description" db:"description"`
	NumberOfSeats   float64   `gorm:"column:number_of_seats;default:0" db:"number_of_seats"`
	CreatedByUserID *int64    `gorm:"column:created_by_user_id" db:"created_by_user_id"`
	UpdatedByUserID *int64    `gorm:"column:updated_by_user_id" db:"updated_by_user_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" db:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" db:"updated_at"`
}

func (ParkingSpace) TableName() string {
	return "spaces_parking"
}

// RentSpace is the persistence model for rentable units.
type RentSpace struct {
	ID                          int64     `gorm:"primaryKey;autoIncrement" db:"id"`
	BuildingName                string    `gorm:"column:building_name;not null" db:"building_name"`
	SpacesName                  string    `gorm:"column:spaces_name" db:"spaces_name"`
	Description                 string    `gorm:"column:description" db:"description"`
	AreaSqm                     float64   `gorm:"column:area_sqm;default:0" db:"area_sqm"`
	ElectricitySubscriberNumber float64   `gorm:"column:electricity_subscriber_number;default:0" db:"electricity_subscriber_number"`
	WaterSubscriberNumber       float64   `gorm:"column:water_subscriber_number;default:0" db:"water_subscriber_number"`
	GasSubscriberNumber         float64   `gorm:"column:gas_subscriber_number;default:0" db:"gas_subscriber_number"`
	CreatedByUserID             *int64    `gorm:"column:created_by_user_id" db:"created_by_user_id"`
	UpdatedByUserID             *int64    `gorm:"column:updated_by_user_id" db:"updated_by_user_id"`
	CreatedAt                   time.Time `gorm:"column:created_at;autoCreateTime" db:"created_at"`
	UpdatedAt                   time.Time `gorm:"column:updated_at;autoUpdateTime" db:"updated_at"`
}

func (RentSpace) TableName() string {
	return "spaces_rent"
}
