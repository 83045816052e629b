// Package http is the inbound HTTP adapter. It translates REST requests into
// commands and queries and maps domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler  commands.CreateCustomerCommandHandler
	deleteCustomerHandler  commands.DeleteCustomerCommandHandler
	addSpoolHandler        commands.AddSpoolCommandHandler
	restockSpoolHandler    commands.RestockSpoolCommandHandler
	archiveSpoolHandler    commands.ArchiveSpoolCommandHandler
	registerPrinterHandler commands.RegisterPrinterCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	addOrderItemHandler    commands.AddOrderItemCommandHandler
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler
	confirmOrderHandler    commands.ConfirmOrderCommandHandler
	startOrderHandler      commands.StartOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderTotalsHandler queries.GetOrderTotalsQueryHandler
	getLowSpoolsHandler   queries.GetLowSpoolsQueryHandler
	getStatisticsHandler  queries.GetStatisticsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	addSpoolHandler commands.AddSpoolCommandHandler,
	restockSpoolHandler commands.RestockSpoolCommandHandler,
	archiveSpoolHandler commands.ArchiveSpoolCommandHandler,
	registerPrinterHandler commands.RegisterPrinterCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderTotalsHandler queries.GetOrderTotalsQueryHandler,
	getLowSpoolsHandler queries.GetLowSpoolsQueryHandler,
	getStatisticsHandler queries.GetStatisticsQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:  createCustomerHandler,
		deleteCustomerHandler:  deleteCustomerHandler,
		addSpoolHandler:        addSpoolHandler,
		restockSpoolHandler:    restockSpoolHandler,
		archiveSpoolHandler:    archiveSpoolHandler,
		registerPrinterHandler: registerPrinterHandler,
		createOrderHandler:     createOrderHandler,
		addOrderItemHandler:    addOrderItemHandler,
		removeOrderItemHandler: removeOrderItemHandler,
		confirmOrderHandler:    confirmOrderHandler,
		startOrderHandler:      startOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		getOrderTotalsHandler:  getOrderTotalsHandler,
		getLowSpoolsHandler:    getLowSpoolsHandler,
		getStatisticsHandler:   getStatisticsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.POST("/spools", s.CreateSpool)
	api.POST("/spools/:id/restock", s.RestockSpool)
	api.POST("/spools/:id/archive", s.ArchiveSpool)
	api.GET("/spools/low", s.GetLowSpools)

	api.POST("/printers", s.RegisterPrinter)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveOrderItem)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/start", s.StartOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/:id/totals", s.GetOrderTotals)

	api.GET("/statistics", s.GetStatistics)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Phone)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: customerID.String()})
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateSpool handles POST /api/v1/spools.
func (s *Server) CreateSpool(ctx echo.Context) error {
	var req CreateSpoolRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := parseCategory(req.Category)
	if err != nil {
		return fail(ctx, err)
	}

	spoolID := kernel.NewUUID()
	cmd, err := commands.NewAddSpoolCommand(spoolID,
		req.Name, req.Color, req.Brand, req.FilamentType, category, req.TotalWeight)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.addSpoolHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: spoolID.String()})
}

// RestockSpool handles POST /api/v1/spools/:id/restock.
func (s *Server) RestockSpool(ctx echo.Context) error {
	spoolID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid spool id")
	}

	var req RestockSpoolRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockSpoolCommand(spoolID, req.Grams)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.restockSpoolHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ArchiveSpool handles POST /api/v1/spools/:id/archive.
func (s *Server) ArchiveSpool(ctx echo.Context) error {
	spoolID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid spool id")
	}

	cmd, err := commands.NewArchiveSpoolCommand(spoolID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.archiveSpoolHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetLowSpools handles GET /api/v1/spools/low?threshold=20.
func (s *Server) GetLowSpools(ctx echo.Context) error {
	threshold := spool.ArchiveThresholdGrams
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "Invalid threshold")
		}
		threshold = parsed
	}

	query, err := queries.NewGetLowSpoolsQuery(threshold)
	if err != nil {
		return fail(ctx, err)
	}

	spools, err := s.getLowSpoolsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]LowSpoolResponse, len(spools))
	for i, sp := range spools {
		response[i] = LowSpoolResponse{
			ID:              sp.ID.String(),
			Name:            sp.Name,
			Color:           sp.Color,
			RemainingWeight: sp.RemainingWeight,
			ReservedWeight:  sp.ReservedWeight,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterPrinter handles POST /api/v1/printers.
func (s *Server) RegisterPrinter(ctx echo.Context) error {
	var req RegisterPrinterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	printerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterPrinterCommand(printerID, req.Name, req.Model, req.NozzleLifetimeHours)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.registerPrinterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: printerID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	method, err := parsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, method, req.IsRnD)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AddOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spoolID, err := kernel.UUIDFromString(req.SpoolID)
	if err != nil {
		return badRequest(ctx, "Invalid spool id")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, spoolID,
		req.Name, req.EstimatedGrams, req.Quantity, req.RatePerGram, req.PrintHours,
		order.PrintSettings{
			LayerHeightMM: req.LayerHeightMM,
			InfillPercent: req.InfillPercent,
		})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartOrder handles POST /api/v1/orders/:id/start.
func (s *Server) StartOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewStartOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.startOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CompleteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	results := make([]commands.ItemResult, 0, len(req.Results))
	for _, r := range req.Results {
		itemID, itemErr := kernel.UUIDFromString(r.ItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item id")
		}

		var printerID kernel.UUID
		if r.PrinterID != "" {
			printerID, err = kernel.UUIDFromString(r.PrinterID)
			if err != nil {
				return badRequest(ctx, "Invalid printer id")
			}
		}

		results = append(results, commands.ItemResult{
			ItemID:      itemID,
			ActualGrams: r.ActualGrams,
			PrintHours:  r.PrintHours,
			PrinterID:   printerID,
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, results, req.AmountReceived)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrderTotals handles GET /api/v1/orders/:id/totals.
func (s *Server) GetOrderTotals(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderTotalsQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	totals, err := s.getOrderTotalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderTotalsResponse{
		OrderID:     totals.OrderID.String(),
		OrderNumber: totals.OrderNumber,
		Status:      totals.Status,
		Totals:      toTotalsResponse(totals.Totals),
		Costs:       toCostsResponse(totals.Costs),
	})
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatisticsResponse{
		TotalOrders:            stats.TotalOrders,
		CompletedOrders:        stats.CompletedOrders,
		ActiveOrders:           stats.ActiveOrders,
		CancelledOrders:        stats.CancelledOrders,
		Revenue:                stats.Revenue,
		ShippingTotal:          stats.ShippingTotal,
		FeeTotal:               stats.FeeTotal,
		MaterialCost:           stats.MaterialCost,
		Profit:                 stats.Profit,
		RoundingLoss:           stats.RoundingLoss,
		ActiveSpools:           stats.ActiveSpools,
		FilamentRemainingGrams: stats.FilamentRemainingGrams,
		FilamentUsedGrams:      stats.FilamentUsedGrams,
		WasteGrams:             stats.WasteGrams,
		PrintHours:             stats.PrintHours,
		NozzleChanges:          stats.NozzleChanges,
	})
}

// transition runs a parameterless lifecycle command against the order in the
// path.
func (s *Server) transition(ctx echo.Context, run func(kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = run(orderID); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a domain or application error to the matching status code.
func fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// statusFor classifies errors: missing aggregates are 404, violated business
// rules are 409, bad input is 400, the rest is 500.
func statusFor(err error) int {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	switch {
	case errors.Is(err, spool.ErrInsufficientStock),
		errors.Is(err, spool.ErrSpoolIsArchived),
		errors.Is(err, spool.ErrSpoolHasHeldReservations),
		errors.Is(err, spool.ErrSpoolNotBelowThreshold),
		errors.Is(err, services.ErrCommitFailure),
		errors.Is(err, commands.ErrCustomerHasOrders),
		errors.Is(err, order.ErrOrderIsNotDraft),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, order.ErrItemNotFound):
		return http.StatusConflict
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
