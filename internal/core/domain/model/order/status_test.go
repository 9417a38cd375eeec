package order_test

import (
	"testing"

	"orderintake/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Pending, order.Confirmed, order.Preparing,
		order.Ready, order.Delivered, order.Cancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "CONFIRMED", order.Confirmed.String())
	assert.Equal(t, "PREPARING", order.Preparing.String())
	assert.Equal(t, "READY", order.Ready.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	s, err := order.StatusFromString("PREPARING")
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, s)

	_, err = order.StatusFromString("preparing")
	require.Error(t, err)

	_, err = order.StatusFromString("SHIPPED")
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}

func TestDeliveryType(t *testing.T) {
	require.NoError(t, order.Pickup.Validate())
	require.NoError(t, order.Delivery.Validate())
	require.Error(t, order.DeliveryTypeUnknown.Validate())

	assert.Equal(t, "PICKUP", order.Pickup.String())
	assert.Equal(t, "DELIVERY", order.Delivery.String())

	dt, err := order.DeliveryTypeFromString("DELIVERY")
	require.NoError(t, err)
	assert.Equal(t, order.Delivery, dt)

	_, err = order.DeliveryTypeFromString("ENVIO")
	require.Error(t, err)
}

func TestPaymentMethod(t *testing.T) {
	require.NoError(t, order.Cash.Validate())
	require.NoError(t, order.BankTransfer.Validate())
	require.NoError(t, order.OnlinePayment.Validate())
	require.Error(t, order.PaymentMethodUnknown.Validate())

	assert.Equal(t, "BANK_TRANSFER", order.BankTransfer.String())

	m, err := order.PaymentMethodFromString("ONLINE_PAYMENT")
	require.NoError(t, err)
	assert.Equal(t, order.OnlinePayment, m)

	_, err = order.PaymentMethodFromString("BITCOIN")
	require.Error(t, err)
}

func TestNewItem_Invariants(t *testing.T) {
	productID := int64(7)
	badProductID := int64(-1)

	tests := []struct {
		name      string
		productID *int64
		itemName  string
		quantity  int
		unitPrice float64
		total     float64
		wantErr   bool
	}{
		{"valid", &productID, "Muzzarella", 2, 1000, 2000, false},
		{"valid_without_product", nil, "Faina", 1, 500, 500, false},
		{"empty_name", nil, "", 1, 500, 500, true},
		{"zero_quantity", nil, "Faina", 0, 500, 500, true},
		{"zero_unit_price", nil, "Faina", 1, 0, 500, true},
		{"zero_total", nil, "Faina", 1, 500, 0, true},
		{"negative_product_id", &badProductID, "Faina", 1, 500, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := order.NewItem(tt.productID, tt.itemName, tt.quantity, tt.unitPrice, tt.total)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NoError(t, item.Validate())
			assert.Equal(t, tt.itemName, item.Name())
		})
	}
}

func TestRestoreItem(t *testing.T) {
	item, err := order.RestoreItem(55, nil, "Faina", 1, 500, 500)

	require.NoError(t, err)
	assert.Equal(t, int64(55), item.ID())
}
