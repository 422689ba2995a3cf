// Package http exposes the fulfillment use cases over a REST API.
package http

import (
	"net/http"
	"time"

	"supplytrace/internal/core/application/usecases/commands"
	"supplytrace/internal/core/application/usecases/queries"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	approveOrderHandler      commands.ApproveOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	acceptLegHandler         commands.AcceptLegCommandHandler
	rejectLegHandler         commands.RejectLegCommandHandler
	shipOrderHandler         commands.ShipOrderCommandHandler
	shipForwardHandler       commands.ShipForwardCommandHandler
	confirmReceiptHandler    commands.ConfirmReceiptCommandHandler
	forwardOrderHandler      commands.ForwardOrderCommandHandler
	reassignOrderHandler     commands.ReassignOrderCommandHandler
	reassignLegHandler       commands.ReassignLegCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	verifyTokenHandler       commands.VerifyTokenCommandHandler
	provisionKeysHandler     commands.ProvisionSupplierKeysCommandHandler
	createTransporterHandler commands.CreateTransporterCommandHandler
	deleteTransporterHandler commands.DeleteTransporterCommandHandler

	// Query handlers
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler
	getOrderQrHandler       queries.GetOrderQrQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	acceptLegHandler commands.AcceptLegCommandHandler,
	rejectLegHandler commands.RejectLegCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	shipForwardHandler commands.ShipForwardCommandHandler,
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler,
	forwardOrderHandler commands.ForwardOrderCommandHandler,
	reassignOrderHandler commands.ReassignOrderCommandHandler,
	reassignLegHandler commands.ReassignLegCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	verifyTokenHandler commands.VerifyTokenCommandHandler,
	provisionKeysHandler commands.ProvisionSupplierKeysCommandHandler,
	createTransporterHandler commands.CreateTransporterCommandHandler,
	deleteTransporterHandler commands.DeleteTransporterCommandHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getOrderQrHandler queries.GetOrderQrQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		approveOrderHandler:      approveOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		acceptLegHandler:         acceptLegHandler,
		rejectLegHandler:         rejectLegHandler,
		shipOrderHandler:         shipOrderHandler,
		shipForwardHandler:       shipForwardHandler,
		confirmReceiptHandler:    confirmReceiptHandler,
		forwardOrderHandler:      forwardOrderHandler,
		reassignOrderHandler:     reassignOrderHandler,
		reassignLegHandler:       reassignLegHandler,
		confirmDeliveryHandler:   confirmDeliveryHandler,
		verifyTokenHandler:       verifyTokenHandler,
		provisionKeysHandler:     provisionKeysHandler,
		createTransporterHandler: createTransporterHandler,
		deleteTransporterHandler: deleteTransporterHandler,
		getOrderTrackingHandler:  getOrderTrackingHandler,
		getOrderQrHandler:        getOrderQrHandler,
	}
}

// RegisterRoutes binds every endpoint to the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/approve", s.ApproveOrder)
	api.POST("/orders/:orderId/reject", s.RejectOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/forward", s.ForwardOrder)
	api.POST("/orders/:orderId/reassign", s.ReassignOrder)
	api.POST("/orders/:orderId/reassign-leg", s.ReassignLeg)
	api.POST("/orders/:orderId/confirm-delivery", s.ConfirmDelivery)
	api.GET("/orders/:orderId/tracking", s.GetOrderTracking)
	api.GET("/orders/:orderId/qr", s.GetOrderQr)

	api.POST("/legs/:legId/accept", s.AcceptLeg)
	api.POST("/legs/:legId/reject", s.RejectLeg)
	api.POST("/legs/:legId/ship", s.ShipOrder)
	api.POST("/legs/:legId/ship-forward", s.ShipForward)
	api.POST("/legs/:legId/receive", s.ConfirmReceipt)

	api.POST("/verification", s.VerifyToken)
	api.POST("/suppliers/:supplierId/keys", s.ProvisionSupplierKeys)

	api.POST("/transporters", s.CreateTransporter)
	api.DELETE("/transporters/:transporterId", s.DeleteTransporter)
}

func parseUUID(value string) (kernel.UUID, error) {
	return kernel.UUIDFromString(value)
}

func parseOptionalUUID(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId")
	}
	supplierID, err := parseUUID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}
	productID, err := parseUUID(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid productId")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, supplierID, productID, req.Quantity, req.DeliveryAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ApproveOrder handles POST /api/v1/orders/:orderId/approve - the supplier
// signs the order and opens the first custody hop.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req approveOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := parseUUID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}
	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}
	transporterID, err := parseUUID(req.TransporterID)
	if err != nil {
		return badRequest(ctx, "Invalid transporterId")
	}

	legID := kernel.NewUUID()
	cmd, err := commands.NewApproveOrderCommand(
		orderID, supplierID, req.PrivateKey, distributorID, transporterID, legID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"legId": legID.String()})
}

// RejectOrder handles POST /api/v1/orders/:orderId/reject - the supplier
// declines a pending order.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req rejectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := parseUUID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, supplierID)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - the customer
// cancels an order that has not shipped.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ForwardOrder handles POST /api/v1/orders/:orderId/forward - a distributor
// opens the next custody hop.
func (s *Server) ForwardOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req forwardOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}
	transporterID, err := parseUUID(req.TransporterID)
	if err != nil {
		return badRequest(ctx, "Invalid transporterId")
	}
	toType, err := leg.PartyTypeFromString(req.ToType)
	if err != nil {
		return badRequest(ctx, "Invalid toType")
	}
	toDistributorID, err := parseOptionalUUID(req.ToDistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid toDistributorId")
	}

	legID := kernel.NewUUID()
	cmd, err := commands.NewForwardOrderCommand(
		orderID, distributorID, toType, toDistributorID, transporterID, legID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid forwarding data: "+err.Error())
	}

	if handleErr := s.forwardOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"legId": legID.String()})
}

// ReassignOrder handles POST /api/v1/orders/:orderId/reassign - the supplier
// replaces a rejected first hop with a new distributor.
func (s *Server) ReassignOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req reassignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := parseUUID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}
	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}
	transporterID, err := parseUUID(req.TransporterID)
	if err != nil {
		return badRequest(ctx, "Invalid transporterId")
	}

	legID := kernel.NewUUID()
	cmd, err := commands.NewReassignOrderCommand(orderID, supplierID, distributorID, transporterID, legID)
	if err != nil {
		return badRequest(ctx, "Invalid reassignment data: "+err.Error())
	}

	if handleErr := s.reassignOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"legId": legID.String()})
}

// ReassignLeg handles POST /api/v1/orders/:orderId/reassign-leg - a
// distributor replaces its rejected forwarding hop.
func (s *Server) ReassignLeg(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req forwardOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}
	transporterID, err := parseUUID(req.TransporterID)
	if err != nil {
		return badRequest(ctx, "Invalid transporterId")
	}
	toType, err := leg.PartyTypeFromString(req.ToType)
	if err != nil {
		return badRequest(ctx, "Invalid toType")
	}
	toDistributorID, err := parseOptionalUUID(req.ToDistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid toDistributorId")
	}

	legID := kernel.NewUUID()
	cmd, err := commands.NewReassignLegCommand(
		orderID, distributorID, toType, toDistributorID, transporterID, legID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid reassignment data: "+err.Error())
	}

	if handleErr := s.reassignLegHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"legId": legID.String()})
}

// ConfirmDelivery handles POST /api/v1/orders/:orderId/confirm-delivery -
// the customer acknowledges receipt of the final hop.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	var req confirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptLeg handles POST /api/v1/legs/:legId/accept - the recipient
// distributor accepts an incoming hop.
func (s *Server) AcceptLeg(ctx echo.Context) error {
	legID, err := parseUUID(ctx.Param("legId"))
	if err != nil {
		return badRequest(ctx, "Invalid legId")
	}

	var req legActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}

	cmd, err := commands.NewAcceptLegCommand(legID, distributorID)
	if err != nil {
		return badRequest(ctx, "Invalid acceptance data: "+err.Error())
	}

	if handleErr := s.acceptLegHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectLeg handles POST /api/v1/legs/:legId/reject - the recipient
// distributor declines an incoming hop.
func (s *Server) RejectLeg(ctx echo.Context) error {
	legID, err := parseUUID(ctx.Param("legId"))
	if err != nil {
		return badRequest(ctx, "Invalid legId")
	}

	var req legActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}

	cmd, err := commands.NewRejectLegCommand(legID, distributorID)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if handleErr := s.rejectLegHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/legs/:legId/ship - the supplier hands the
// first hop to its carrier.
func (s *Server) ShipOrder(ctx echo.Context) error {
	legID, err := parseUUID(ctx.Param("legId"))
	if err != nil {
		return badRequest(ctx, "Invalid legId")
	}

	var req shipOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := parseUUID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}

	cmd, err := commands.NewShipOrderCommand(legID, supplierID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipForward handles POST /api/v1/legs/:legId/ship-forward - a distributor
// hands its forwarding hop to its carrier.
func (s *Server) ShipForward(ctx echo.Context) error {
	legID, err := parseUUID(ctx.Param("legId"))
	if err != nil {
		return badRequest(ctx, "Invalid legId")
	}

	var req legActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}

	cmd, err := commands.NewShipForwardCommand(legID, distributorID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.shipForwardHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmReceipt handles POST /api/v1/legs/:legId/receive - the recipient
// distributor confirms physical arrival of an in-transit hop.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	legID, err := parseUUID(ctx.Param("legId"))
	if err != nil {
		return badRequest(ctx, "Invalid legId")
	}

	var req legActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	distributorID, err := parseUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}

	cmd, err := commands.NewConfirmReceiptCommand(legID, distributorID)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	if handleErr := s.confirmReceiptHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyToken handles POST /api/v1/verification - verifies a scanned package
// token. Failed verification is a business outcome: the response is 200 with
// valid=false and a failure code, not an error status.
func (s *Server) VerifyToken(ctx echo.Context) error {
	var req verifyTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId")
	}

	cmd, err := commands.NewVerifyTokenCommand(req.Token, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid verification data: "+err.Error())
	}

	result, handleErr := s.verifyTokenHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"valid":   result.Valid,
		"code":    result.Code,
		"message": result.Message,
		"orderId": result.OrderID,
	})
}

// ProvisionSupplierKeys handles POST /api/v1/suppliers/:supplierId/keys -
// generates the supplier's signing key pair. The private key appears in this
// response only and is never retrievable again.
func (s *Server) ProvisionSupplierKeys(ctx echo.Context) error {
	supplierID, err := parseUUID(ctx.Param("supplierId"))
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}

	cmd, err := commands.NewProvisionSupplierKeysCommand(supplierID)
	if err != nil {
		return badRequest(ctx, "Invalid provisioning data: "+err.Error())
	}

	privateKey, handleErr := s.provisionKeysHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"privateKey": privateKey})
}

// CreateTransporter handles POST /api/v1/transporters - registers a carrier
// in a supplier's or distributor's fleet.
func (s *Server) CreateTransporter(ctx echo.Context) error {
	var req createTransporterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := parseOptionalUUID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplierId")
	}
	distributorID, err := parseOptionalUUID(req.DistributorID)
	if err != nil {
		return badRequest(ctx, "Invalid distributorId")
	}

	transporterID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransporterCommand(
		transporterID, req.Name, req.VehicleNumber, supplierID, distributorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid transporter data: "+err.Error())
	}

	if handleErr := s.createTransporterHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": transporterID.String()})
}

// DeleteTransporter handles DELETE /api/v1/transporters/:transporterId -
// removes a carrier. The owner identifies itself through the supplierId or
// distributorId query parameter.
func (s *Server) DeleteTransporter(ctx echo.Context) error {
	transporterID, err := parseUUID(ctx.Param("transporterId"))
	if err != nil {
		return badRequest(ctx, "Invalid transporterId")
	}

	var supplierID, distributorID *kernel.UUID
	if raw := ctx.QueryParam("supplierId"); raw != "" {
		id, parseErr := parseUUID(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid supplierId")
		}
		supplierID = &id
	}
	if raw := ctx.QueryParam("distributorId"); raw != "" {
		id, parseErr := parseUUID(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid distributorId")
		}
		distributorID = &id
	}

	cmd, err := commands.NewDeleteTransporterCommand(transporterID, supplierID, distributorID)
	if err != nil {
		return badRequest(ctx, "Invalid removal data: "+err.Error())
	}

	if handleErr := s.deleteTransporterHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTracking handles GET /api/v1/orders/:orderId/tracking - returns
// the order's custody history.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking query: "+err.Error())
	}

	trail, handleErr := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	legs := make([]map[string]any, len(trail.Legs))
	for i, hop := range trail.Legs {
		legs[i] = map[string]any{
			"legId":         hop.LegID.String(),
			"legNumber":     hop.LegNumber,
			"fromType":      hop.FromType,
			"toType":        hop.ToType,
			"status":        hop.Status,
			"transporterId": hop.TransporterID.String(),
		}
	}

	events := make([]map[string]any, len(trail.Events))
	for i, event := range trail.Events {
		events[i] = map[string]any{
			"eventType":   event.EventType,
			"description": event.Description,
			"occurredAt":  event.OccurredAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderId": trail.OrderID.String(),
		"status":  trail.Status,
		"legs":    legs,
		"events":  events,
	})
}

// GetOrderQr handles GET /api/v1/orders/:orderId/qr - returns the package
// token of a signed order to its customer.
func (s *Server) GetOrderQr(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	customerID, err := parseUUID(ctx.QueryParam("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customerId")
	}

	query, err := queries.NewGetOrderQrQuery(orderID, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid token query: "+err.Error())
	}

	response, handleErr := s.getOrderQrHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderId":  response.OrderID.String(),
		"qrToken":  response.QrToken,
		"signedAt": response.SignedAt.Format(time.RFC3339),
	})
}
