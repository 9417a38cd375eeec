package zonerepo

import (
	"context"
	"errors"

	"orderintake/internal/core/domain/model/zone"
	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM. The intake
// service only reads zones; administration happens out of band.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// GetAllActive retrieves every active zone, highest priority first.
func (r *GormZoneRepository) GetAllActive(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Order("priority DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// Get retrieves a zone by identifier.
func (r *GormZoneRepository) Get(ctx context.Context, id int64) (*zone.Zone, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("zoneId")
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zoneId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts or updates a zone row. Used by database seeding.
func (r *GormZoneRepository) Save(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Save(&dto).Error
}
