package commands_test

import (
	"testing"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func validAddress() *order.Address {
	addr := order.NewAddress("Av. Colón 1234", "", "Mar del Plata", "Buenos Aires", "7600", "")
	return &addr
}

func validPoint(t *testing.T) *kernel.GeoPoint {
	t.Helper()
	pt, err := kernel.NewGeoPoint(-38.005, -57.545)
	require.NoError(t, err)
	return &pt
}

func validItems() []commands.CreateOrderItem {
	productID := int64(11)
	return []commands.CreateOrderItem{
		{ProductID: &productID, Name: "Muzzarella", Quantity: 2, UnitPrice: 4500, TotalPrice: 9000},
		{Name: "Faina", Quantity: 1, UnitPrice: 1200, TotalPrice: 1200},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		"Ana García", "ana@example.com", "+54 9 223 555-0101",
		order.Delivery, validAddress(), validPoint(t),
		"ring the bell twice", order.Cash, validItems(),
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "Ana García", cmd.FullName())
	require.Equal(t, order.Delivery, cmd.DeliveryType())
	require.Len(t, cmd.Items(), 2)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fullName, email, phone *string, items *[]commands.CreateOrderItem)
	}{
		{"missing_full_name", func(fullName, _, _ *string, _ *[]commands.CreateOrderItem) {
			*fullName = ""
		}},
		{"malformed_email", func(_, email, _ *string, _ *[]commands.CreateOrderItem) {
			*email = "not-an-email"
		}},
		{"malformed_phone", func(_, _, phone *string, _ *[]commands.CreateOrderItem) {
			*phone = "abc"
		}},
		{"phone_too_short", func(_, _, phone *string, _ *[]commands.CreateOrderItem) {
			*phone = "+54 22"
		}},
		{"item_without_name", func(_, _, _ *string, items *[]commands.CreateOrderItem) {
			(*items)[0].Name = ""
		}},
		{"item_zero_quantity", func(_, _, _ *string, items *[]commands.CreateOrderItem) {
			(*items)[0].Quantity = 0
		}},
		{"item_negative_price", func(_, _, _ *string, items *[]commands.CreateOrderItem) {
			(*items)[0].UnitPrice = -1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fullName, email, phone := "Ana García", "ana@example.com", "+54 9 223 555-0101"
			items := validItems()
			tt.mutate(&fullName, &email, &phone, &items)

			_, err := commands.NewCreateOrderCommand(
				fullName, email, phone,
				order.Delivery, validAddress(), validPoint(t),
				"", order.Cash, items,
			)

			require.Error(t, err)
		})
	}
}

func TestNewCreateOrderCommand_EmptyContactsPassFormatChecks(t *testing.T) {
	// Presence of at least one contact is a business rule checked later;
	// the command only rejects malformed values.
	_, err := commands.NewCreateOrderCommand(
		"Ana García", "", "",
		order.Pickup, nil, nil,
		"", order.Cash, validItems(),
	)

	require.NoError(t, err)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(42, order.Confirmed)

	require.NoError(t, err)
	require.Equal(t, int64(42), cmd.OrderID())
	require.Equal(t, order.Confirmed, cmd.Status())
}

func TestNewUpdateOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(0, order.Confirmed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(42, order.Status(99))
	require.Error(t, err)
}
