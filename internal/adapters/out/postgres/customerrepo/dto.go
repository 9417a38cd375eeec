// Package customerrepo persists customer aggregates. Customers are created
// implicitly from order submissions, keyed by email or normalized phone.
package customerrepo

import (
	"time"

	"orderintake/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customers.
// Contact columns are indexed but deliberately not unique: two concurrent
// first orders may create duplicate rows, and lookups resolve to the lowest
// id to stay deterministic.
type CustomerDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);index"`
	Phone     string    `gorm:"type:varchar(32);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       aggregate.ID(),
		FullName: aggregate.FullName(),
		Email:    aggregate.Email(),
		Phone:    aggregate.Phone(),
	}
}

// toDomain converts a database DTO back into a customer aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, dto.FullName, dto.Email, dto.Phone, dto.CreatedAt, dto.UpdatedAt)
}
