package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// The order starts in Pending status awaiting the supplier's decision; no
// stock is reserved until approval.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Resolves the supplier and product, refuses self-ordering, checks that the
// supplier's warehouse can cover the quantity, then persists the Pending
// order with its first audit trail entry. No stock is reserved here;
// approval re-checks availability under a row lock and decrements.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplier, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	if supplier.UserID().IsEqual(cmd.CustomerID()) {
		return errs.NewForbiddenError("suppliers cannot order from themselves")
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !product.SupplierID().IsEqual(cmd.SupplierID()) {
		return errs.NewValueIsInvalidError("product does not belong to the given supplier")
	}

	stock, err := uow.InventoryRepository().GetByWarehouseAndProduct(ctx, supplier.WarehouseID(), cmd.ProductID())
	if err != nil {
		return err
	}

	if !stock.CanFulfill(cmd.Quantity()) {
		return errs.NewInsufficientStockError(stock.Quantity(), cmd.Quantity())
	}

	totalAmount, err := product.TotalFor(cmd.Quantity())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.SupplierID(),
		cmd.ProductID(),
		cmd.Quantity(),
		totalAmount,
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	description := fmt.Sprintf("order placed: %d x %s", cmd.Quantity(), product.Name())
	if err = recordTrail(ctx, uow, newOrder.ID(), nil, tracking.EventOrderCreated, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
