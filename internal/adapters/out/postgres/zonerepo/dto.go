// Package zonerepo reads delivery zones. Zone rows carry their polygon as a
// jsonb document of [latitude, longitude] pairs forming a closed ring.
package zonerepo

import (
	"encoding/json"
	"time"

	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/zone"
)

// ZoneDTO represents the database structure for delivery zones.
type ZoneDTO struct {
	ID          int64                `gorm:"primaryKey;autoIncrement"`
	Name        string               `gorm:"type:varchar(100);not null;uniqueIndex"`
	DeliveryFee int64                `gorm:"not null"`
	Polygon     orderrepo.JSONColumn `gorm:"type:jsonb;not null"`
	Priority    int                  `gorm:"not null;default:0"`
	Active      bool                 `gorm:"not null;default:true;index"`
	Version     int                  `gorm:"not null;default:1"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

// fromDomain converts a zone aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) (ZoneDTO, error) {
	vertices := aggregate.Polygon().Vertices()
	ring := make([][2]float64, 0, len(vertices))
	for _, v := range vertices {
		ring = append(ring, [2]float64{v.Lat(), v.Lng()})
	}

	doc, err := json.Marshal(ring)
	if err != nil {
		return ZoneDTO{}, err
	}

	return ZoneDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		DeliveryFee: aggregate.DeliveryFee(),
		Polygon:     orderrepo.JSONColumn(doc),
		Priority:    aggregate.Priority(),
		Active:      aggregate.IsActive(),
		Version:     aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO back into a zone aggregate.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	var ring [][2]float64
	if err := json.Unmarshal(dto.Polygon, &ring); err != nil {
		return nil, err
	}

	vertices := make([]kernel.GeoPoint, 0, len(ring))
	for _, pair := range ring {
		pt, err := kernel.NewGeoPoint(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, pt)
	}

	polygon, err := kernel.NewPolygon(vertices)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(
		dto.ID,
		dto.Name,
		dto.DeliveryFee,
		polygon,
		dto.Priority,
		dto.Active,
		dto.Version,
		dto.UpdatedAt,
	)
}
