// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. An order spans three tables: the header row, its
// item snapshots, and its append-only tracking log.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the order header row. The cached status column is
// denormalized from the tracking log for cheap listings; both always
// change in the same transaction.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber         string     `gorm:"type:varchar(15);uniqueIndex"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index"`
	SellerID            uuid.UUID  `gorm:"type:uuid;index"`
	AgentID             *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"type:varchar(32);index"`
	Subtotal            int64
	DeliveryCharge      int64
	TaxAmount           int64
	FinalAmount         int64
	DeliveryAddress     string
	PaymentMethod       string
	SpecialInstructions string
	CreatedAt           time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one item snapshot row. Item rows are written
// once at checkout and never updated.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	FoodItemID    uuid.UUID `gorm:"type:uuid"`
	Name          string
	Quantity      int
	Price         int64
	DiscountPrice *int64
}

// TableName specifies the database table name for item snapshots.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// TrackingEventDTO represents one tracking log row. Rows carry their own
// UUID so re-persisting an aggregate can skip events already written.
type TrackingEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(32)"`
	Notes     string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "order_tracking"
}

// fromDomain converts the order aggregate to its header row.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderNumber:         aggregate.Number().String(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		SellerID:            aggregate.SellerID().Bytes(),
		AgentID:             agentID,
		Status:              aggregate.Status().String(),
		Subtotal:            aggregate.Subtotal().Paise(),
		DeliveryCharge:      aggregate.DeliveryCharge().Paise(),
		TaxAmount:           aggregate.TaxAmount().Paise(),
		FinalAmount:         aggregate.FinalAmount().Paise(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		PaymentMethod:       aggregate.PaymentMethod(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// itemsFromDomain converts item snapshots to rows. Row IDs are generated
// here; the domain identifies items by their catalog entry.
func itemsFromDomain(aggregate *order.Order) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var discountPrice *int64
		if dp := item.DiscountPrice(); dp != nil {
			paise := dp.Paise()
			discountPrice = &paise
		}

		dtos = append(dtos, OrderItemDTO{
			ID:            uuid.New(),
			OrderID:       aggregate.ID().Bytes(),
			FoodItemID:    item.FoodItemID().Bytes(),
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			Price:         item.Price().Paise(),
			DiscountPrice: discountPrice,
		})
	}
	return dtos
}

// eventsFromDomain converts the tracking log to rows.
func eventsFromDomain(aggregate *order.Order) []TrackingEventDTO {
	dtos := make([]TrackingEventDTO, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		var latitude, longitude *float64
		if loc := event.Location(); loc != nil {
			lat, lon := loc.Latitude(), loc.Longitude()
			latitude, longitude = &lat, &lon
		}

		dtos = append(dtos, TrackingEventDTO{
			ID:        event.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			Status:    event.Status().String(),
			Notes:     event.Notes(),
			Latitude:  latitude,
			Longitude: longitude,
			CreatedAt: event.CreatedAt(),
		})
	}
	return dtos
}

// toDomain rebuilds the order aggregate from its rows.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO, eventDTOs []TrackingEventDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	number, err := order.NumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		converted, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &converted
	}

	items, err := itemsToDomain(itemDTOs)
	if err != nil {
		return nil, err
	}
	events, err := eventsToDomain(eventDTOs)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, number, customerID, sellerID, items,
		kernel.NewMoney(dto.Subtotal),
		kernel.NewMoney(dto.DeliveryCharge),
		kernel.NewMoney(dto.TaxAmount),
		kernel.NewMoney(dto.FinalAmount),
		dto.DeliveryAddress, dto.PaymentMethod, dto.SpecialInstructions,
		status, agentID, events,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemsToDomain(dtos []OrderItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
		if err != nil {
			return nil, err
		}

		var discountPrice *kernel.Money
		if dto.DiscountPrice != nil {
			money := kernel.NewMoney(*dto.DiscountPrice)
			discountPrice = &money
		}

		item, err := order.NewItem(foodItemID, dto.Name, dto.Quantity,
			kernel.NewMoney(dto.Price), discountPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func eventsToDomain(dtos []TrackingEventDTO) ([]order.TrackingEvent, error) {
	events := make([]order.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		status, err := order.StatusFromString(dto.Status)
		if err != nil {
			return nil, err
		}

		var location *kernel.GeoPoint
		if dto.Latitude != nil && dto.Longitude != nil {
			point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
			if locErr != nil {
				return nil, locErr
			}
			location = &point
		}

		event, err := order.RestoreTrackingEvent(id, status, dto.Notes, location, dto.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
