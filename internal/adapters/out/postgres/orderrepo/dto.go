// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The signature columns are all null until the order is approved; they are
// written exactly once and never change afterwards.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	SupplierID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID         uuid.UUID `gorm:"type:uuid"`
	Quantity          int
	TotalAmountCents  int64
	DeliveryAddress   string
	Status            int `gorm:"index"`
	OrderHash         *string
	SupplierSignature *string
	ServerSignature   *string
	QrToken           *string
	SignedAt          *time.Time
	OrderDate         time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		SupplierID:       aggregate.SupplierID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		Quantity:         aggregate.Quantity(),
		TotalAmountCents: aggregate.TotalAmount().Cents(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		Status:           int(aggregate.Status()),
		OrderDate:        aggregate.OrderDate(),
	}

	if signature := aggregate.Signature(); signature != nil {
		orderHash := signature.OrderHash()
		supplierSignature := signature.SupplierSignature()
		serverSignature := signature.ServerSignature()
		qrToken := signature.QRToken()
		signedAt := signature.SignedAt()

		dto.OrderHash = &orderHash
		dto.SupplierSignature = &supplierSignature
		dto.ServerSignature = &serverSignature
		dto.QrToken = &qrToken
		dto.SignedAt = &signedAt
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the signature bundle using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}

	// The signature columns are written together, so a row where only some
	// of them are set is corrupt rather than merely unsigned.
	signed := dto.OrderHash != nil && dto.SupplierSignature != nil &&
		dto.ServerSignature != nil && dto.QrToken != nil && dto.SignedAt != nil
	partial := !signed && (dto.OrderHash != nil || dto.SupplierSignature != nil ||
		dto.ServerSignature != nil || dto.QrToken != nil || dto.SignedAt != nil)
	if partial {
		return nil, errs.NewValueIsInvalidError("order row has an incomplete signature bundle")
	}

	var signature *order.Signature
	if signed {
		restored, sigErr := order.NewSignature(
			*dto.OrderHash,
			*dto.SupplierSignature,
			*dto.ServerSignature,
			*dto.QrToken,
			*dto.SignedAt,
		)
		if sigErr != nil {
			return nil, sigErr
		}
		signature = &restored
	}

	return order.RestoreOrder(
		id,
		customerID,
		supplierID,
		productID,
		dto.Quantity,
		totalAmount,
		dto.DeliveryAddress,
		order.Status(dto.Status),
		signature,
		dto.OrderDate,
	)
}
