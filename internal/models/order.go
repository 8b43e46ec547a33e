package models

// Order is a schema-less document from the orders collection. Whatever the
// caller submits is stored as-is; only "_id", "status" and "updatedAt" are
// touched by the server.
type Order map[string]interface{}

const (
	OrderIDField        = "_id"
	OrderStatusField    = "status"
	OrderCreatedAtField = "createdAt"
	OrderUpdatedAtField = "updatedAt"
	OrderCustomerField  = "customerName"
)

// CustomerName returns the customerName field when it is a string
func (o Order) CustomerName() string {
	name, _ := o[OrderCustomerField].(string)
	return name
}

// StatusUpdateRequest is the body of PUT /api/orders/{id}/status
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
