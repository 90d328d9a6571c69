package postgres

import (
	"errors"

	spacesDatamodel "github.com/frahmantamala/facility-management/internal/core/datamodel/spaces"
	"github.com/frahmantamala/facility-management/internal/spaces"
	"gorm.io/gorm"
)

// SpaceRepository serves all three space tables from one implementation,
// dispatching on kind instead of duplicating the CRUD per table.
type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) spaces.RepositoryAPI {
	return &SpaceRepository{db: db}
}

func (r *SpaceRepository) GetAll(kind spaces.Kind) ([]*spaces.Space, error) {
	switch kind {
	case spaces.KindExhibition:
		var records []*spacesDatamodel.ExhibitionSpace
		if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
			return nil, err
		}
		out := make([]*spaces.Space, 0, len(records))
		for _, record := range records {
			out = append(out, exhibitionToDomain(record))
		}
		return out, nil
	case spaces.KindParking:
		var records []*spacesDatamodel.ParkingSpace
		if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
			return nil, err
		}
		out := make([]*spaces.Space, 0, len(records))
		for _, record := range records {
			out = append(out, parkingToDomain(record))
		}
		return out, nil
	case spaces.KindRent:
		var records []*spacesDatamodel.RentSpace
		if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
			return nil, err
		}
		out := make([]*spaces.Space, 0, len(records))
		for _, record := range records {
			out = append(out, rentToDomain(record))
		}
		return out, nil
	}
	return nil, spaces.ErrUnknownKind
}

func (r *SpaceRepository) GetByID(kind spaces.Kind, id int64) (*spaces.Space, error) {
	var (
		space *spaces.Space
		err   error
	)
	switch kind {
	case spaces.KindExhibition:
		var record spacesDatamodel.ExhibitionSpace
		err = r.db.Where("id = ?", id).First(&record).Error
		if err == nil {
			space = exhibitionToDomain(&record)
		}
	case spaces.KindParking:
		var record spacesDatamodel.ParkingSpace
		err = r.db.Where("id = ?", id).First(&record).Error
		if err == nil {
			space = parkingToDomain(&record)
		}
	case spaces.KindRent:
		var record spacesDatamodel.RentSpace
		err = r.db.Where("id = ?", id).First(&record).Error
		if err == nil {
			space = rentToDomain(&record)
		}
	default:
		return nil, spaces.ErrUnknownKind
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, spaces.ErrSpaceNotFound
		}
		return nil, err
	}
	return space, nil
}

func (r *SpaceRepository) Create(space *spaces.Space) error {
	switch space.Kind {
	case spaces.KindExhibition:
		record := exhibitionFromDomain(space)
		if err := r.db.Create(record).Error; err != nil {
			return err
		}
		space.ID = record.ID
		space.CreatedAt = record.CreatedAt
		space.UpdatedAt = record.UpdatedAt
		return nil
	case spaces.KindParking:
		record := parkingFromDomain(space)
		if err := r.db.Create(record).Error; err != nil {
			return err
		}
		space.ID = record.ID
		space.CreatedAt = record.CreatedAt
		space.UpdatedAt = record.UpdatedAt
		return nil
	case spaces.KindRent:
		record := rentFromDomain(space)
		if err := r.db.Create(record).Error; err != nil {
			return err
		}
		space.ID = record.ID
		space.CreatedAt = record.CreatedAt
		space.UpdatedAt = record.UpdatedAt
		return nil
	}
	return spaces.ErrUnknownKind
}

func (r *SpaceRepository) Update(space *spaces.Space) error {
	var result *gorm.DB
	switch space.Kind {
	case spaces.KindExhibition:
		result = r.db.Model(&spacesDatamodel.ExhibitionSpace{}).
			Where("id = ?", space.ID).
			Updates(map[string]interface{}{
				"building_name":      space.BuildingName,
				"description":        space.Description,
				"area_sqm":           deref(space.AreaSqm),
				"ceiling_height":     deref(space.CeilingHeight),
				"updated_by_user_id": space.UpdatedByUserID,
			})
	case spaces.KindParking:
		result = r.db.Model(&spacesDatamodel.ParkingSpace{}).
			Where("id = ?", space.ID).
			Updates(map[string]interface{}{
				"building_name":      space.BuildingName,
				"description":        space.Description,
				"number_of_seats":    deref(space.NumberOfSeats),
				"updated_by_user_id": space.UpdatedByUserID,
			})
	case spaces.KindRent:
		spacesName := ""
		if space.SpacesName != nil {
			spacesName = *space.SpacesName
		}
		result = r.db.Model(&spacesDatamodel.RentSpace{}).
			Where("id = ?", space.ID).
			Updates(map[string]interface{}{
				"building_name":                 space.BuildingName,
				"spaces_name":                   spacesName,
				"description":                   space.Description,
				"area_sqm":                      deref(space.AreaSqm),
				"electricity_subscriber_number": deref(space.ElectricitySubscriberNumber),
				"water_subscriber_number":       deref(space.WaterSubscriberNumber),
				"gas_subscriber_number":         deref(space.GasSubscriberNumber),
				"updated_by_user_id":            space.UpdatedByUserID,
			})
	default:
		return spaces.ErrUnknownKind
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return spaces.ErrSpaceNotFound
	}
	return nil
}

func (r *SpaceRepository) Delete(kind spaces.Kind, id int64) error {
	var result *gorm.DB
	switch kind {
	case spaces.KindExhibition:
		result = r.db.Where("id = ?", id).Delete(&spacesDatamodel.ExhibitionSpace{})
	case spaces.KindParking:
		result = r.db.Where("id = ?", id).Delete(&spacesDatamodel.ParkingSpace{})
	case spaces.KindRent:
		result = r.db.Where("id = ?", id).Delete(&spacesDatamodel.RentSpace{})
	default:
		return spaces.ErrUnknownKind
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return spaces.ErrSpaceNotFound
	}
	return nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func exhibitionToDomain(record *spacesDatamodel.ExhibitionSpace) *spaces.Space {
	area := record.AreaSqm
	height := record.CeilingHeight
	return &spaces.Space{
		ID:              record.ID,
		Kind:            spaces.KindExhibition,
		BuildingName:    record.BuildingName,
		Description:     record.Description,
		AreaSqm:         &area,
		CeilingHeight:   &height,
		CreatedByUserID: record.CreatedByUserID,
		UpdatedByUserID: record.UpdatedByUserID,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

func exhibitionFromDomain(space *spaces.Space) *spacesDatamodel.ExhibitionSpace {
	return &spacesDatamodel.ExhibitionSpace{
		ID:              space.ID,
		BuildingName:    space.BuildingName,
		Description:     space.Description,
		AreaSqm:         deref(space.AreaSqm),
		CeilingHeight:   deref(space.CeilingHeight),
		CreatedByUserID: space.CreatedByUserID,
		UpdatedByUserID: space.UpdatedByUserID,
	}
}

func parkingToDomain(record *spacesDatamodel.ParkingSpace) *spaces.Space {
	seats := record.NumberOfSeats
	return &spaces.Space{
		ID:              record.ID,
		Kind:            spaces.KindParking,
		BuildingName:    record.BuildingName,
		Description:     record.Description,
		NumberOfSeats:   &seats,
		CreatedByUserID: record.CreatedByUserID,
		UpdatedByUserID: record.UpdatedByUserID,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

func parkingFromDomain(space *spaces.Space) *spacesDatamodel.ParkingSpace {
	return &spacesDatamodel.ParkingSpace{
		ID:              space.ID,
		BuildingName:    space.BuildingName,
		Description:     space.Description,
		NumberOfSeats:   deref(space.NumberOfSeats),
		CreatedByUserID: space.CreatedByUserID,
		UpdatedByUserID: space.UpdatedByUserID,
	}
}

func rentToDomain(record *spacesDatamodel.RentSpace) *spaces.Space {
	area := record.AreaSqm
	electricity := record.ElectricitySubscriberNumber
	water := record.WaterSubscriberNumber
	gas := record.GasSubscriberNumber
	var name *string
	if record.SpacesName != "" {
		value := record.SpacesName
		name = &value
	}
	return &spaces.Space{
		ID:                          record.ID,
		Kind:                        spaces.KindRent,
		BuildingName:                record.BuildingName,
		Description:                 record.Description,
		SpacesName:                  name,
		AreaSqm:                     &area,
		ElectricitySubscriberNumber: &electricity,
		WaterSubscriberNumber:       &water,
		GasSubscriberNumber:         &gas,
		CreatedByUserID:             record.CreatedByUserID,
		UpdatedByUserID:             record.UpdatedByUserID,
		CreatedAt:                   record.CreatedAt,
		UpdatedAt:                   record.UpdatedAt,
	}
}

func rentFromDomain(space *spaces.Space) *spacesDatamodel.RentSpace {
	spacesName := ""
	if space.SpacesName != nil {
		spacesName = *space.SpacesName
	}
	return &spacesDatamodel.RentSpace{
		ID:                          space.ID,
		BuildingName:                space.BuildingName,
		SpacesName:                  spacesName,
		Description:                 space.Description,
		AreaSqm:                     deref(space.AreaSqm),
		ElectricitySubscriberNumber: deref(space.ElectricitySubscriberNumber),
		WaterSubscriberNumber:       deref(space.WaterSubscriberNumber),
		GasSubscriberNumber:         deref(space.GasSubscriberNumber),
		CreatedByUserID:             space.CreatedByUserID,
		UpdatedByUserID:             space.UpdatedByUserID,
	}
}
