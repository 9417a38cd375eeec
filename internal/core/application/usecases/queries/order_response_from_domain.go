package queries

import (
	"orderintake/internal/core/domain/model/order"
)

// OrderResponseFromDomain builds the read model for a freshly persisted
// aggregate, so the create path returns the same shape as the read queries
// without an extra round trip.
func OrderResponseFromDomain(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:            aggregate.ID(),
		CustomerID:    aggregate.CustomerID(),
		DeliveryType:  aggregate.DeliveryType().String(),
		Comments:      aggregate.Comments(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount(),
		ShippingFee:   aggregate.ShippingFee(),
		ZoneID:        aggregate.ZoneID(),
		Items:         make([]OrderItemResponse, 0, len(aggregate.Items())),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}

	if addr := aggregate.Address(); addr != nil {
		resp.Address = &AddressResponse{
			Street:     addr.Street(),
			Floor:      addr.Floor(),
			City:       addr.City(),
			Province:   addr.Province(),
			PostalCode: addr.PostalCode(),
			Reference:  addr.Reference(),
		}
	}
	if pt := aggregate.Point(); pt != nil {
		lat, lng := pt.Lat(), pt.Lng()
		resp.Lat = &lat
		resp.Lng = &lng
	}

	for _, item := range aggregate.Items() {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:         item.ID(),
			ProductID:  item.ProductID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	return resp
}
