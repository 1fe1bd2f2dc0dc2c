package http

import (
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
)

// Request bodies. Validation tags cover shape only; business rules are
// enforced by the core.

type AddToCartRequest struct {
	FoodItemID string `json:"food_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

type UpdateCartLineRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

type CheckoutRequest struct {
	DeliveryAddress     string `json:"delivery_address" validate:"required"`
	PaymentMethod       string `json:"payment_method"   validate:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

type AssignAgentRequest struct {
	AgentID string `json:"agent_id" validate:"required,uuid"`
	Notes   string `json:"notes"`
}

type UpdateDeliveryStatusRequest struct {
	Status    string   `json:"status" validate:"required"`
	Notes     string   `json:"notes"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CancelOrderRequest struct {
	Notes string `json:"notes"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// Response bodies.

type CartLine struct {
	LineID             string `json:"line_id"`
	FoodItemID         string `json:"food_item_id"`
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	PricePaise         int64  `json:"price_paise"`
	DiscountPricePaise *int64 `json:"discount_price_paise,omitempty"`
	LineTotalPaise     int64  `json:"line_total_paise"`
}

type CartSellerGroup struct {
	SellerID      string     `json:"seller_id"`
	Lines         []CartLine `json:"lines"`
	SubtotalPaise int64      `json:"subtotal_paise"`
}

type CartView struct {
	Sellers    []CartSellerGroup `json:"sellers"`
	TotalPaise int64             `json:"total_paise"`
}

type CreatedOrder struct {
	OrderID          string `json:"order_id"`
	OrderNumber      string `json:"order_number"`
	SellerID         string `json:"seller_id"`
	FinalAmountPaise int64  `json:"final_amount_paise"`
}

type CheckoutFailure struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
}

type CheckoutResponse struct {
	Orders       []CreatedOrder    `json:"orders"`
	Failures     []CheckoutFailure `json:"failures,omitempty"`
	MissingItems []string          `json:"missing_items,omitempty"`
}

type OrderSummary struct {
	OrderID          string    `json:"order_id"`
	OrderNumber      string    `json:"order_number"`
	CustomerID       string    `json:"customer_id"`
	SellerID         string    `json:"seller_id"`
	AgentID          *string   `json:"agent_id,omitempty"`
	Status           string    `json:"status"`
	FinalAmountPaise int64     `json:"final_amount_paise"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrderItem struct {
	FoodItemID         string `json:"food_item_id"`
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	PricePaise         int64  `json:"price_paise"`
	DiscountPricePaise *int64 `json:"discount_price_paise,omitempty"`
}

type OrderDetail struct {
	OrderID             string      `json:"order_id"`
	OrderNumber         string      `json:"order_number"`
	CustomerID          string      `json:"customer_id"`
	SellerID            string      `json:"seller_id"`
	AgentID             *string     `json:"agent_id,omitempty"`
	Status              string      `json:"status"`
	SubtotalPaise       int64       `json:"subtotal_paise"`
	DeliveryChargePaise int64       `json:"delivery_charge_paise"`
	TaxAmountPaise      int64       `json:"tax_amount_paise"`
	FinalAmountPaise    int64       `json:"final_amount_paise"`
	DeliveryAddress     string      `json:"delivery_address"`
	PaymentMethod       string      `json:"payment_method"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Items               []OrderItem `json:"items"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type TrackingEvent struct {
	EventID   string    `json:"event_id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderTracking struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	Events      []TrackingEvent `json:"events"`
}

type AvailableAgent struct {
	AgentID    string    `json:"agent_id"`
	LastActive time.Time `json:"last_active"`
}

func toCartView(response queries.GetCartQueryResponse) CartView {
	view := CartView{
		Sellers:    make([]CartSellerGroup, 0, len(response.Sellers)),
		TotalPaise: response.TotalPaise,
	}
	for _, group := range response.Sellers {
		lines := make([]CartLine, 0, len(group.Lines))
		for _, line := range group.Lines {
			lines = append(lines, CartLine{
				LineID:             line.LineID.String(),
				FoodItemID:         line.FoodItemID.String(),
				Name:               line.Name,
				Quantity:           line.Quantity,
				PricePaise:         line.PricePaise,
				DiscountPricePaise: line.DiscountPricePaise,
				LineTotalPaise:     line.LineTotalPaise,
			})
		}
		view.Sellers = append(view.Sellers, CartSellerGroup{
			SellerID:      group.SellerID.String(),
			Lines:         lines,
			SubtotalPaise: group.SubtotalPaise,
		})
	}
	return view
}

func toCheckoutResponse(result commands.CheckoutResult) CheckoutResponse {
	response := CheckoutResponse{
		Orders: make([]CreatedOrder, 0, len(result.Created)),
	}
	for _, created := range result.Created {
		response.Orders = append(response.Orders, CreatedOrder{
			OrderID:          created.OrderID.String(),
			OrderNumber:      created.Number.String(),
			SellerID:         created.SellerID.String(),
			FinalAmountPaise: created.FinalAmount.Paise(),
		})
	}
	for _, failure := range result.Failures {
		response.Failures = append(response.Failures, CheckoutFailure{
			SellerID: failure.SellerID.String(),
			Reason:   failure.Err.Error(),
		})
	}
	for _, itemID := range result.MissingItems {
		response.MissingItems = append(response.MissingItems, itemID.String())
	}
	return response
}

func toOrderSummaries(responses []queries.OrderSummaryResponse) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(responses))
	for _, r := range responses {
		var agentID *string
		if r.AgentID != nil {
			s := r.AgentID.String()
			agentID = &s
		}
		summaries = append(summaries, OrderSummary{
			OrderID:          r.OrderID.String(),
			OrderNumber:      r.Number,
			CustomerID:       r.CustomerID.String(),
			SellerID:         r.SellerID.String(),
			AgentID:          agentID,
			Status:           r.Status,
			FinalAmountPaise: r.FinalAmountPaise,
			CreatedAt:        r.CreatedAt,
			UpdatedAt:        r.UpdatedAt,
		})
	}
	return summaries
}

func toOrderDetail(response queries.GetOrderQueryResponse) OrderDetail {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			FoodItemID:         item.FoodItemID.String(),
			Name:               item.Name,
			Quantity:           item.Quantity,
			PricePaise:         item.PricePaise,
			DiscountPricePaise: item.DiscountPricePaise,
		})
	}

	var agentID *string
	if response.AgentID != nil {
		s := response.AgentID.String()
		agentID = &s
	}

	return OrderDetail{
		OrderID:             response.OrderID.String(),
		OrderNumber:         response.Number,
		CustomerID:          response.CustomerID.String(),
		SellerID:            response.SellerID.String(),
		AgentID:             agentID,
		Status:              response.Status,
		SubtotalPaise:       response.SubtotalPaise,
		DeliveryChargePaise: response.DeliveryChargePaise,
		TaxAmountPaise:      response.TaxAmountPaise,
		FinalAmountPaise:    response.FinalAmountPaise,
		DeliveryAddress:     response.DeliveryAddress,
		PaymentMethod:       response.PaymentMethod,
		SpecialInstructions: response.SpecialInstructions,
		Items:               items,
		CreatedAt:           response.CreatedAt,
		UpdatedAt:           response.UpdatedAt,
	}
}

func toOrderTracking(response queries.GetOrderTrackingQueryResponse) OrderTracking {
	events := make([]TrackingEvent, 0, len(response.Events))
	for _, e := range response.Events {
		events = append(events, TrackingEvent{
			EventID:   e.EventID.String(),
			Status:    e.Status,
			Notes:     e.Notes,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
			CreatedAt: e.CreatedAt,
		})
	}
	return OrderTracking{
		OrderID:     response.OrderID.String(),
		OrderNumber: response.Number,
		Status:      response.Status,
		Events:      events,
	}
}

func toAvailableAgents(responses []queries.AvailableAgentResponse) []AvailableAgent {
	agents := make([]AvailableAgent, 0, len(responses))
	for _, r := range responses {
		agents = append(agents, AvailableAgent{
			AgentID:    r.AgentID.String(),
			LastActive: r.LastActive,
		})
	}
	return agents
}
