// Package supplier contains the Supplier aggregate: a seller profile that
// owns products, holds warehouse stock and signs approved orders with its
// provisioned RSA key pair. The server never stores the private key itself,
// only a SHA-256 digest of its canonical PEM form used to authenticate
// signing requests.
package supplier

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

var (
	// ErrSupplierIsNotConstructed is returned when a Supplier instance was not created
	// through the NewSupplier or RestoreSupplier factory methods.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

	// ErrKeysAlreadyProvisioned is returned when key material is attached to a
	// supplier that already has it. Keys are provisioned exactly once.
	ErrKeysAlreadyProvisioned = errors.New("supplier keys are already provisioned")
)

// Supplier represents a seller profile.
//
// Supplier follows these invariants:
//   - Must reference the backing user account and a warehouse
//   - Business name is required
//   - Public key and private key hash are both empty or both set,
//     populated exactly once at key provisioning
//   - Can only be created through NewSupplier or RestoreSupplier
type Supplier struct {
	id             kernel.UUID
	userID         kernel.UUID
	businessName   string
	warehouseID    kernel.UUID
	publicKey      string
	privateKeyHash string

	isConstructed bool
}

// NewSupplier creates a new Supplier without key material. Keys are attached
// later via ProvisionKeys when the profile is activated.
func NewSupplier(
	id kernel.UUID,
	userID kernel.UUID,
	businessName string,
	warehouseID kernel.UUID,
) (*Supplier, error) {
	s := &Supplier{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setBusinessName(businessName),
		s.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSupplier reconstructs a Supplier from persisted state. Key material
// may be empty for profiles that were never activated.
func RestoreSupplier(
	id kernel.UUID,
	userID kernel.UUID,
	businessName string,
	warehouseID kernel.UUID,
	publicKey string,
	privateKeyHash string,
) (*Supplier, error) {
	if (publicKey == "") != (privateKeyHash == "") {
		return nil, errs.NewValueIsInvalidError("publicKey and privateKeyHash must be set together")
	}

	s := &Supplier{
		publicKey:      publicKey,
		privateKeyHash: privateKeyHash,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setBusinessName(businessName),
		s.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Supplier instance was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// IsEqual compares two suppliers by their unique identifiers.
func (s *Supplier) IsEqual(other *Supplier) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// UserID returns the backing user account's identifier.
func (s *Supplier) UserID() kernel.UUID {
	return s.userID
}

// BusinessName returns the supplier's registered business name.
func (s *Supplier) BusinessName() string {
	return s.businessName
}

// WarehouseID returns the identifier of the supplier's warehouse.
func (s *Supplier) WarehouseID() kernel.UUID {
	return s.warehouseID
}

// PublicKey returns the supplier's public key PEM, or empty if keys were
// never provisioned.
func (s *Supplier) PublicKey() string {
	return s.publicKey
}

// PrivateKeyHash returns the hex SHA-256 digest of the supplier's canonical
// private key PEM, or empty if keys were never provisioned.
func (s *Supplier) PrivateKeyHash() string {
	return s.privateKeyHash
}

// HasKeys reports whether the supplier has provisioned key material.
func (s *Supplier) HasKeys() bool {
	return s.publicKey != "" && s.privateKeyHash != ""
}

// ProvisionKeys attaches the supplier's key material. Both values are set
// together and exactly once.
func (s *Supplier) ProvisionKeys(publicKey, privateKeyHash string) error {
	if s.HasKeys() {
		return ErrKeysAlreadyProvisioned
	}
	if strings.TrimSpace(publicKey) == "" {
		return errs.NewValueIsRequiredError("publicKey")
	}
	if strings.TrimSpace(privateKeyHash) == "" {
		return errs.NewValueIsRequiredError("privateKeyHash")
	}

	s.publicKey = publicKey
	s.privateKeyHash = privateKeyHash
	return nil
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.userID = id
	return nil
}

func (s *Supplier) setBusinessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	s.businessName = name
	return nil
}

func (s *Supplier) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.warehouseID = id
	return nil
}
