package order_test

import (
	"testing"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderParams() (kernel.UUID, kernel.UUID, kernel.UUID, kernel.UUID, int, kernel.Money, string) {
	total, _ := kernel.NewMoney(12500)
	return kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, total, "12 Harbor Street"
}

func validSignature(t *testing.T) order.Signature {
	t.Helper()
	sig, err := order.NewSignature("hash", "supplier-sig", "server-sig", "token", time.Now().UTC())
	require.NoError(t, err)
	return sig
}

func TestNewOrder(t *testing.T) {
	id, customerID, supplierID, productID, quantity, total, address := validOrderParams()

	t.Run("should create valid pending order", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, supplierID, productID, quantity, total, address)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.SupplierID().IsEqual(supplierID))
		assert.True(t, o.ProductID().IsEqual(productID))
		assert.Equal(t, quantity, o.Quantity())
		assert.True(t, o.TotalAmount().IsEqual(total))
		assert.Equal(t, address, o.DeliveryAddress())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Signature())
		assert.False(t, o.IsSigned())
		assert.False(t, o.OrderDate().IsZero())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, customerID, supplierID, productID, quantity, total, address)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, supplierID, productID, 0, total, address)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, supplierID, productID, quantity, total, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should fail with unconstructed total amount", func(t *testing.T) {
		var invalidTotal kernel.Money

		o, err := order.NewOrder(id, customerID, supplierID, productID, quantity, invalidTotal, address)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, customerID, supplierID, productID, -1, total, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})
}

func TestOrder_Approve(t *testing.T) {
	t.Run("pending order approves with signature", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		sig := validSignature(t)

		err := o.Approve(sig)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		require.NotNil(t, o.Signature())
		assert.True(t, o.IsSigned())
		assert.Equal(t, "hash", o.Signature().OrderHash())
	})

	t.Run("approval rejects unconstructed signature", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		var zeroSig order.Signature

		err := o.Approve(zeroSig)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.IsSigned())
	})

	t.Run("approved order cannot approve again", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Approve(validSignature(t)))

		err := o.Approve(validSignature(t))

		require.Error(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full happy path to delivered", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())

		require.NoError(t, o.Approve(validSignature(t)))
		require.NoError(t, o.StartTransit())
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.ConfirmDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("reject cancels a pending order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel before shipment", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Approve(validSignature(t)))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("reassignment round trip keeps the order approved", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Approve(validSignature(t)))

		require.NoError(t, o.MarkReassignPending())
		assert.Equal(t, order.PendingReassign, o.Status())

		require.NoError(t, o.Reassign())
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("cancelled order refuses further transitions", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Reject())

		require.Error(t, o.StartTransit())
		require.Error(t, o.ConfirmDelivered())
		require.Error(t, o.Cancel())
	})
}

func TestOrder_FinalizeDelivered(t *testing.T) {
	t.Run("finalizes an in-progress order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Approve(validSignature(t)))
		require.NoError(t, o.StartTransit())

		require.NoError(t, o.FinalizeDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("is idempotent on a delivered order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Approve(validSignature(t)))
		require.NoError(t, o.StartTransit())
		require.NoError(t, o.ConfirmDelivered())

		require.NoError(t, o.FinalizeDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("refuses a cancelled order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams())
		require.NoError(t, o.Reject())

		require.Error(t, o.FinalizeDelivered())
	})
}

func TestRestoreOrder(t *testing.T) {
	id, customerID, supplierID, productID, quantity, total, address := validOrderParams()
	orderDate := time.Now().UTC().Add(-time.Hour)

	t.Run("restores an approved order with signature", func(t *testing.T) {
		sig := validSignature(t)

		o, err := order.RestoreOrder(
			id, customerID, supplierID, productID, quantity, total, address,
			order.Approved, &sig, orderDate,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		require.NotNil(t, o.Signature())
		assert.Equal(t, orderDate, o.OrderDate())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, customerID, supplierID, productID, quantity, total, address,
			order.Unknown, nil, orderDate,
		)

		require.Error(t, err)
	})
}

func TestNewSignature(t *testing.T) {
	signedAt := time.Now().UTC()

	t.Run("creates a complete bundle", func(t *testing.T) {
		sig, err := order.NewSignature("hash", "ss", "svs", "token", signedAt)

		require.NoError(t, err)
		require.NoError(t, sig.Validate())
		assert.Equal(t, "hash", sig.OrderHash())
		assert.Equal(t, "ss", sig.SupplierSignature())
		assert.Equal(t, "svs", sig.ServerSignature())
		assert.Equal(t, "token", sig.QRToken())
		assert.Equal(t, signedAt, sig.SignedAt())
	})

	t.Run("every field is required", func(t *testing.T) {
		cases := []struct {
			name        string
			hash        string
			supplierSig string
			serverSig   string
			token       string
			signedAt    time.Time
		}{
			{"missing hash", "", "ss", "svs", "token", signedAt},
			{"missing supplier signature", "hash", "", "svs", "token", signedAt},
			{"missing server signature", "hash", "ss", "", "token", signedAt},
			{"missing token", "hash", "ss", "svs", "", signedAt},
			{"missing signing instant", "hash", "ss", "svs", "token", time.Time{}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewSignature(tc.hash, tc.supplierSig, tc.serverSig, tc.token, tc.signedAt)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var sig order.Signature

		require.ErrorIs(t, sig.Validate(), order.ErrSignatureIsNotConstructed)
	})
}
