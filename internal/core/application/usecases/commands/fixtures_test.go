package commands_test

import (
	"testing"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/product"
	"supplytrace/internal/core/domain/model/supplier"
	"supplytrace/internal/core/domain/services"
	"supplytrace/internal/pkg/cryptoutils"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func pendingOrder(t *testing.T, customerID, supplierID, productID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		supplierID,
		productID,
		5,
		money(t, 12500),
		"12 Harbor Street",
	)
	require.NoError(t, err)
	return o
}

func catalogProduct(t *testing.T, supplierID kernel.UUID) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(),
		supplierID,
		"Steel Bolts M8",
		"hardware",
		"B-2041",
		money(t, 2500),
	)
	require.NoError(t, err)
	return p
}

// supplierWithKeys builds a supplier with a freshly provisioned key pair and
// returns the private key PEM the supplier would have received.
func supplierWithKeys(t *testing.T, supplierID kernel.UUID) (*supplier.Supplier, string) {
	t.Helper()

	s, err := supplier.NewSupplier(supplierID, kernel.NewUUID(), "Bolt Works Ltd", kernel.NewUUID())
	require.NoError(t, err)

	publicKey, privateKey, err := cryptoutils.GenerateKeyPair()
	require.NoError(t, err)
	require.NoError(t, s.ProvisionKeys(publicKey, cryptoutils.HashPrivateKey(privateKey)))

	return s, privateKey
}

// signedOrder approves an order in place with a real signature chain and
// returns the server key pair needed to verify it.
func signedOrder(t *testing.T, o *order.Order, supplierPrivateKey string) (serverPublicKey, serverPrivateKey string) {
	t.Helper()

	serverPublicKey, serverPrivateKey, err := cryptoutils.GenerateKeyPair()
	require.NoError(t, err)

	signature, err := services.NewCustodySigner().Sign(o, supplierPrivateKey, serverPrivateKey)
	require.NoError(t, err)
	require.NoError(t, o.Approve(signature))

	return serverPublicKey, serverPrivateKey
}
