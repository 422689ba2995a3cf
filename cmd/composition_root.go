package cmd

import (
	"supplytrace/internal/adapters/out/kafka"
	"supplytrace/internal/adapters/out/postgres"
	"supplytrace/internal/core/application/usecases/commands"
	"supplytrace/internal/core/application/usecases/queries"
	"supplytrace/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	producer         *kafka.Producer
	signer           services.CustodySigner
	serverPrivateKey string
	serverPublicKey  string
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	producer *kafka.Producer,
	serverPrivateKey string,
	serverPublicKey string,
) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		producer:         producer,
		signer:           services.NewCustodySigner(),
		serverPrivateKey: serverPrivateKey,
		serverPublicKey:  serverPublicKey,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) chainUoWFactory() commands.ChainUoWFactory {
	return FuncChainUoWFactory(func() commands.ChainUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) forwardUoWFactory() commands.ForwardUoWFactory {
	return FuncForwardUoWFactory(func() commands.ForwardUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.ApprovalUoWFactory = FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.signer, c.serverPrivateKey)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelUoWFactory = FuncCancelUoWFactory(func() commands.CancelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptLegCommandHandler() commands.AcceptLegCommandHandler {
	return commands.NewAcceptLegCommandHandler(c.chainUoWFactory())
}

func (c *CompositionRoot) CreateRejectLegCommandHandler() commands.RejectLegCommandHandler {
	return commands.NewRejectLegCommandHandler(c.chainUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.chainUoWFactory())
}

func (c *CompositionRoot) CreateShipForwardCommandHandler() commands.ShipForwardCommandHandler {
	return commands.NewShipForwardCommandHandler(c.chainUoWFactory())
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	return commands.NewConfirmReceiptCommandHandler(c.chainUoWFactory())
}

func (c *CompositionRoot) CreateForwardOrderCommandHandler() commands.ForwardOrderCommandHandler {
	return commands.NewForwardOrderCommandHandler(c.forwardUoWFactory())
}

func (c *CompositionRoot) CreateReassignOrderCommandHandler() commands.ReassignOrderCommandHandler {
	return commands.NewReassignOrderCommandHandler(c.forwardUoWFactory())
}

func (c *CompositionRoot) CreateReassignLegCommandHandler() commands.ReassignLegCommandHandler {
	return commands.NewReassignLegCommandHandler(c.forwardUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.chainUoWFactory())
}

func (c *CompositionRoot) CreateVerifyTokenCommandHandler() commands.VerifyTokenCommandHandler {
	var f commands.VerifyUoWFactory = FuncVerifyUoWFactory(func() commands.VerifyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyTokenCommandHandler(f, c.signer, c.serverPublicKey)
}

func (c *CompositionRoot) CreateProvisionSupplierKeysCommandHandler() commands.ProvisionSupplierKeysCommandHandler {
	var f commands.KeysUoWFactory = FuncKeysUoWFactory(func() commands.KeysUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProvisionSupplierKeysCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTransporterCommandHandler() commands.CreateTransporterCommandHandler {
	return commands.NewCreateTransporterCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTransporterCommandHandler() commands.DeleteTransporterCommandHandler {
	return commands.NewDeleteTransporterCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOutboxCommandHandler() commands.DispatchOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOutboxCommandHandler(f, c.producer)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQrQueryHandler() queries.GetOrderQrQueryHandler {
	return queries.NewGetOrderQrQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncApprovalUoWFactory func() commands.ApprovalUoW

func (f FuncApprovalUoWFactory) Create() commands.ApprovalUoW {
	return f()
}

type FuncCancelUoWFactory func() commands.CancelUoW

func (f FuncCancelUoWFactory) Create() commands.CancelUoW {
	return f()
}

type FuncChainUoWFactory func() commands.ChainUoW

func (f FuncChainUoWFactory) Create() commands.ChainUoW {
	return f()
}

type FuncForwardUoWFactory func() commands.ForwardUoW

func (f FuncForwardUoWFactory) Create() commands.ForwardUoW {
	return f()
}

type FuncVerifyUoWFactory func() commands.VerifyUoW

func (f FuncVerifyUoWFactory) Create() commands.VerifyUoW {
	return f()
}

type FuncKeysUoWFactory func() commands.KeysUoW

func (f FuncKeysUoWFactory) Create() commands.KeysUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
