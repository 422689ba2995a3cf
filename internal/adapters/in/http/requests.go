package http

// Request bodies for the command endpoints. Identifiers arrive as UUID
// strings and are parsed before command construction.

type createOrderRequest struct {
	CustomerID      string `json:"customerId"`
	SupplierID      string `json:"supplierId"`
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"deliveryAddress"`
}

type approveOrderRequest struct {
	SupplierID    string `json:"supplierId"`
	PrivateKey    string `json:"privateKey"`
	DistributorID string `json:"distributorId"`
	TransporterID string `json:"transporterId"`
}

type rejectOrderRequest struct {
	SupplierID string `json:"supplierId"`
}

type cancelOrderRequest struct {
	CustomerID string `json:"customerId"`
}

type legActionRequest struct {
	DistributorID string `json:"distributorId"`
}

type shipOrderRequest struct {
	SupplierID string `json:"supplierId"`
}

type forwardOrderRequest struct {
	DistributorID   string  `json:"distributorId"`
	ToType          string  `json:"toType"`
	ToDistributorID *string `json:"toDistributorId,omitempty"`
	TransporterID   string  `json:"transporterId"`
}

type reassignOrderRequest struct {
	SupplierID    string `json:"supplierId"`
	DistributorID string `json:"distributorId"`
	TransporterID string `json:"transporterId"`
}

type confirmDeliveryRequest struct {
	CustomerID string `json:"customerId"`
}

type verifyTokenRequest struct {
	Token      string `json:"token"`
	CustomerID string `json:"customerId"`
}

type createTransporterRequest struct {
	Name          string  `json:"name"`
	VehicleNumber string  `json:"vehicleNumber"`
	SupplierID    *string `json:"supplierId,omitempty"`
	DistributorID *string `json:"distributorId,omitempty"`
}
