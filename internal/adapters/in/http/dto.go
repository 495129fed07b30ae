package http

import (
	"fmt"
	"time"

	"laundromat/internal/core/application/usecases/commands"
	"laundromat/internal/core/application/usecases/queries"
	"laundromat/internal/core/domain/model/order"
)

// ErrorResponse is the JSON error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CleaningLineRequest is one priced dry-cleaning line of a create request.
type CleaningLineRequest struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. The items payload
// is shaped by the order type: pressing orders carry pressingQuantity,
// cleaning orders carry cleaningItems.
type CreateOrderRequest struct {
	OrderType        string                `json:"orderType"`
	CustomerID       string                `json:"customerId"`
	PaymentMethod    string                `json:"paymentMethod"`
	PaymentStatus    string                `json:"paymentStatus"`
	AmountPaid       int                   `json:"amountPaid"`
	PressingQuantity int                   `json:"pressingQuantity"`
	CleaningItems    []CleaningLineRequest `json:"cleaningItems"`
	TicketNumber     int                   `json:"ticketNumber"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:id.
// Absent fields keep their current value. TicketNumber is accepted only so
// it can be rejected with a clear message; pickup numbers never change
// across versions.
type UpdateOrderRequest struct {
	OrderType     *string `json:"orderType"`
	CustomerID    *string `json:"customerId"`
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
	PaymentStatus *string `json:"paymentStatus"`
	AmountPaid    *int    `json:"amountPaid"`
	TicketNumber  *int    `json:"ticketNumber"`
}

// OrderItemResponse is one garment line of an order response.
type OrderItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

// OrderVersionResponse is one superseded entry of an order's edit history.
type OrderVersionResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	AmountPaid    int       `json:"amountPaid"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderResponse is the JSON projection of an order's current main version.
type OrderResponse struct {
	ID            string                 `json:"id"`
	OriginalID    string                 `json:"originalId"`
	OrderType     string                 `json:"orderType"`
	CustomerID    string                 `json:"customerId"`
	Status        string                 `json:"status"`
	PaymentMethod string                 `json:"paymentMethod"`
	PaymentStatus string                 `json:"paymentStatus"`
	Total         int                    `json:"total"`
	AmountPaid    int                    `json:"amountPaid"`
	PickupNumber  int                    `json:"pickupNumber"`
	StorageID     *string                `json:"storageId,omitempty"`
	PressingItem  *OrderItemResponse     `json:"pressingItem,omitempty"`
	CleaningItems []OrderItemResponse    `json:"cleaningItems,omitempty"`
	History       []OrderVersionResponse `json:"history,omitempty"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// StorageOccupancyResponse is one rack of the occupancy report.
type StorageOccupancyResponse struct {
	ID                string `json:"id"`
	RackNumber        int    `json:"rackNumber"`
	TotalCapacity     int    `json:"totalCapacity"`
	UsedCapacity      int    `json:"usedCapacity"`
	FromRange         int    `json:"fromRange"`
	ToRange           int    `json:"toRange"`
	ActiveAllocations int    `json:"activeAllocations"`
	StaleAllocations  int    `json:"staleAllocations"`
}

func parseOrderType(s string) (order.Type, error) {
	switch s {
	case "Pressing":
		return order.Pressing, nil
	case "Cleaning":
		return order.Cleaning, nil
	default:
		return 0, fmt.Errorf("unknown order type %q", s)
	}
}

func parsePaymentMethod(s string) (order.PaymentMethod, error) {
	switch s {
	case "Cash":
		return order.Cash, nil
	case "Card":
		return order.Card, nil
	case "Transfer":
		return order.Transfer, nil
	default:
		return 0, fmt.Errorf("unknown payment method %q", s)
	}
}

func parsePaymentStatus(s string) (order.PaymentStatus, error) {
	switch s {
	case "Unpaid":
		return order.Unpaid, nil
	case "Partial":
		return order.Partial, nil
	case "Paid":
		return order.Paid, nil
	default:
		return 0, fmt.Errorf("unknown payment status %q", s)
	}
}

func parseStatus(s string) (order.Status, error) {
	switch s {
	case "Pending":
		return order.Pending, nil
	case "InProgress":
		return order.InProgress, nil
	case "Completed":
		return order.Completed, nil
	case "Delivered":
		return order.Delivered, nil
	case "Cancelled":
		return order.Cancelled, nil
	case "Damaged":
		return order.Damaged, nil
	case "Lost":
		return order.Lost, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

func toCleaningLines(items []CleaningLineRequest) []commands.CleaningLine {
	if len(items) == 0 {
		return nil
	}
	lines := make([]commands.CleaningLine, len(items))
	for i, item := range items {
		lines[i] = commands.CleaningLine{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return lines
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	response := OrderResponse{
		ID:            view.ID.String(),
		OriginalID:    view.OriginalID.String(),
		OrderType:     view.OrderType,
		CustomerID:    view.CustomerID.String(),
		Status:        view.Status,
		PaymentMethod: view.PaymentMethod,
		PaymentStatus: view.PaymentStatus,
		Total:         view.Total,
		AmountPaid:    view.AmountPaid,
		PickupNumber:  view.PickupNumber,
		CreatedBy:     view.CreatedBy.String(),
		CreatedAt:     view.CreatedAt,
	}

	if view.StorageID != nil {
		storageID := view.StorageID.String()
		response.StorageID = &storageID
	}

	if view.PressingItem != nil {
		item := toOrderItemResponse(*view.PressingItem)
		response.PressingItem = &item
	}

	for _, item := range view.CleaningItems {
		response.CleaningItems = append(response.CleaningItems, toOrderItemResponse(item))
	}

	for _, version := range view.History {
		response.History = append(response.History, OrderVersionResponse{
			ID:            version.ID.String(),
			Status:        version.Status,
			PaymentMethod: version.PaymentMethod,
			PaymentStatus: version.PaymentStatus,
			AmountPaid:    version.AmountPaid,
			CreatedBy:     version.CreatedBy.String(),
			CreatedAt:     version.CreatedAt,
		})
	}

	return response
}

func toOrderItemResponse(item queries.OrderItemView) OrderItemResponse {
	return OrderItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Quantity: item.Quantity,
		Total:    item.Total,
	}
}

func toStorageOccupancyResponse(views []queries.StorageOccupancyView) []StorageOccupancyResponse {
	response := make([]StorageOccupancyResponse, len(views))
	for i, view := range views {
		response[i] = StorageOccupancyResponse{
			ID:                view.ID.String(),
			RackNumber:        view.RackNumber,
			TotalCapacity:     view.TotalCapacity,
			UsedCapacity:      view.UsedCapacity,
			FromRange:         view.FromRange,
			ToRange:           view.ToRange,
			ActiveAllocations: view.ActiveAllocations,
			StaleAllocations:  view.StaleAllocations,
		}
	}
	return response
}
