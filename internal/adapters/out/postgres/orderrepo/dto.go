// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/pricing"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for efficient querying by status and customer.
type OrderDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNumber          string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status               int            `gorm:"type:int;not null;index"`
	ShippingCost         float64        `gorm:"not null"`
	PaymentMethod        int            `gorm:"type:int;not null"`
	OrderDiscountPercent float64        `gorm:"not null"`
	AmountReceived       float64        `gorm:"not null"`
	IsRnD                bool           `gorm:"column:is_rnd;not null"`
	CreatedAt            time.Time      `gorm:"not null"`
	Items                []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order items.
// Links to order via foreign key and references the consuming spool, its
// reservation and optionally the printer that produced the item.
type OrderItemDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	SpoolID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReservationID   uuid.UUID  `gorm:"type:uuid;not null"`
	PrinterID       *uuid.UUID `gorm:"type:uuid;index"`
	Name            string     `gorm:"type:varchar(255);not null"`
	EstimatedWeight float64    `gorm:"not null"`
	ActualWeight    float64    `gorm:"not null"`
	Quantity        int        `gorm:"type:int;not null"`
	RatePerGram     float64    `gorm:"not null"`
	PrintHours      float64    `gorm:"not null"`
	ActualHours     float64    `gorm:"not null"`
	LayerHeightMM   float64    `gorm:"column:layer_height_mm"`
	InfillPercent   int        `gorm:"type:int"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusEventDTO represents one persisted lifecycle transition. Events are
// append-only and form the order's audit trail.
type StatusEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"type:int;not null"`
	ToStatus   int       `gorm:"type:int;not null"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for status event entities.
// Overrides GORM's default naming convention to use "order_status_events".
func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		var printerID *uuid.UUID
		if id := item.Printer(); id != nil {
			raw := id.Bytes()
			printerID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         orderID,
			SpoolID:         item.SpoolID().Bytes(),
			ReservationID:   item.ReservationID().Bytes(),
			PrinterID:       printerID,
			Name:            item.Name(),
			EstimatedWeight: item.EstimatedWeight(),
			ActualWeight:    item.ActualWeight(),
			Quantity:        item.Quantity(),
			RatePerGram:     item.RatePerGram(),
			PrintHours:      item.PrintHours(),
			ActualHours:     item.ActualHours(),
			LayerHeightMM:   item.Settings().LayerHeightMM,
			InfillPercent:   item.Settings().InfillPercent,
		})
	}

	return OrderDTO{
		ID:                   orderID,
		OrderNumber:          aggregate.OrderNumber(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		Status:               int(aggregate.Status()),
		ShippingCost:         aggregate.ShippingCost(),
		PaymentMethod:        int(aggregate.PaymentMethod()),
		OrderDiscountPercent: aggregate.OrderDiscountPercent(),
		AmountReceived:       aggregate.AmountReceived(),
		IsRnD:                aggregate.IsRnD(),
		CreatedAt:            aggregate.CreatedAt(),
		Items:                items,
	}
}

// eventFromDomain converts a lifecycle event to its database representation.
func eventFromDomain(event order.StatusChangedEvent) StatusEventDTO {
	return StatusEventDTO{
		ID:         uuid.New(),
		OrderID:    event.OrderID.Bytes(),
		FromStatus: int(event.From),
		ToStatus:   int(event.To),
		OccurredAt: event.OccurredAt,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		items,
		order.Status(dto.Status),
		dto.ShippingCost,
		pricing.PaymentMethod(dto.PaymentMethod),
		dto.OrderDiscountPercent,
		dto.AmountReceived,
		dto.IsRnD,
		dto.CreatedAt,
	)
}

// itemToDomain converts an order item DTO to domain entity.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spoolID, err := kernel.UUIDFromBytes(dto.SpoolID[:])
	if err != nil {
		return nil, err
	}

	reservationID, err := kernel.UUIDFromBytes(dto.ReservationID[:])
	if err != nil {
		return nil, err
	}

	var printerID *kernel.UUID
	if dto.PrinterID != nil {
		pID, printerErr := kernel.UUIDFromBytes((*dto.PrinterID)[:])
		if printerErr != nil {
			return nil, printerErr
		}
		printerID = &pID
	}

	return order.RestoreItem(
		id, spoolID, reservationID,
		printerID,
		dto.Name,
		dto.EstimatedWeight, dto.ActualWeight,
		dto.Quantity,
		dto.RatePerGram,
		dto.PrintHours, dto.ActualHours,
		order.PrintSettings{
			LayerHeightMM: dto.LayerHeightMM,
			InfillPercent: dto.InfillPercent,
		},
	)
}
