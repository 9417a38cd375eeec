package customerrepo

import (
	"context"
	"errors"

	"orderintake/internal/core/domain/model/customer"
	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and marks the aggregate with the generated
// identifier and timestamps.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("customer already exists", err)
		}
		return err
	}

	if err := aggregate.MarkPersisted(dto.ID, dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists changes to an existing customer.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"full_name": dto.FullName,
		"email":     dto.Email,
		"phone":     dto.Phone,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customerId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by identifier.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("customerId")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByContact looks up a customer by email or normalized phone. Returns
// nil without error when nothing matches. When both contacts are present and
// match different rows, the lowest id wins.
func (r *GormCustomerRepository) FindByContact(ctx context.Context, email, phone string) (*customer.Customer, error) {
	if email == "" && phone == "" {
		return nil, nil
	}

	query := r.db.WithContext(ctx)
	switch {
	case email != "" && phone != "":
		query = query.Where("email = ? OR phone = ?", email, phone)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		query = query.Where("phone = ?", phone)
	}

	var dto CustomerDTO
	if err := query.Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
