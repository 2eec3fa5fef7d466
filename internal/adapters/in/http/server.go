// Package http exposes the cargo API over echo. Handlers translate JSON
// requests into commands and queries; all business rules live in the core.
package http

import (
	"context"
	"net/http"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CabinetResolver maps an authenticated account to its cabinet code.
type CabinetResolver func(ctx context.Context, accountID kernel.UUID) (kernel.CabinetID, error)

// Server wires the HTTP surface to the use case handlers.
type Server struct {
	signer         ports.TokenSigner
	resolveCabinet CabinetResolver

	registerHandler      commands.RegisterAccountCommandHandler
	topUpHandler         commands.TopUpBalanceCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	payOrderHandler      commands.PayOrderCommandHandler
	updateStatusHandler  commands.UpdateOrderStatusCommandHandler
	declareHandler       commands.DeclareOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	createCountryHandler commands.CreateCountryCommandHandler
	deleteCountryHandler commands.DeleteCountryCommandHandler
	createFlightHandler  commands.CreateFlightCommandHandler
	deleteFlightHandler  commands.DeleteFlightCommandHandler
	createShopHandler    commands.CreateShopCommandHandler
	deleteShopHandler    commands.DeleteShopCommandHandler

	loginHandler           queries.LoginQueryHandler
	ordersByCabinetHandler queries.GetOrdersByCabinetQueryHandler
	allOrdersHandler       queries.GetAllOrdersQueryHandler
	countriesHandler       queries.GetCountriesQueryHandler
	flightsHandler         queries.GetFlightsQueryHandler
	shopsHandler           queries.GetShopsQueryHandler
}

// ServerDeps groups the handler dependencies for NewServer.
type ServerDeps struct {
	Signer         ports.TokenSigner
	ResolveCabinet CabinetResolver

	Register      commands.RegisterAccountCommandHandler
	TopUp         commands.TopUpBalanceCommandHandler
	CreateOrder   commands.CreateOrderCommandHandler
	PayOrder      commands.PayOrderCommandHandler
	UpdateStatus  commands.UpdateOrderStatusCommandHandler
	Declare       commands.DeclareOrderCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler
	CreateCountry commands.CreateCountryCommandHandler
	DeleteCountry commands.DeleteCountryCommandHandler
	CreateFlight  commands.CreateFlightCommandHandler
	DeleteFlight  commands.DeleteFlightCommandHandler
	CreateShop    commands.CreateShopCommandHandler
	DeleteShop    commands.DeleteShopCommandHandler

	Login           queries.LoginQueryHandler
	OrdersByCabinet queries.GetOrdersByCabinetQueryHandler
	AllOrders       queries.GetAllOrdersQueryHandler
	Countries       queries.GetCountriesQueryHandler
	Flights         queries.GetFlightsQueryHandler
	Shops           queries.GetShopsQueryHandler
}

// NewServer creates the HTTP server.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		signer:                 deps.Signer,
		resolveCabinet:         deps.ResolveCabinet,
		registerHandler:        deps.Register,
		topUpHandler:           deps.TopUp,
		createOrderHandler:     deps.CreateOrder,
		payOrderHandler:        deps.PayOrder,
		updateStatusHandler:    deps.UpdateStatus,
		declareHandler:         deps.Declare,
		deleteOrderHandler:     deps.DeleteOrder,
		createCountryHandler:   deps.CreateCountry,
		deleteCountryHandler:   deps.DeleteCountry,
		createFlightHandler:    deps.CreateFlight,
		deleteFlightHandler:    deps.DeleteFlight,
		createShopHandler:      deps.CreateShop,
		deleteShopHandler:      deps.DeleteShop,
		loginHandler:           deps.Login,
		ordersByCabinetHandler: deps.OrdersByCabinet,
		allOrdersHandler:       deps.AllOrders,
		countriesHandler:       deps.Countries,
		flightsHandler:         deps.Flights,
		shopsHandler:           deps.Shops,
	}
}

// RegisterRoutes mounts the API under /api/v1. Authenticated routes verify
// the bearer token; admin routes additionally check the role claim.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/register-admin", s.RegisterAdmin)
	api.POST("/auth/login", s.Login)
	api.GET("/statuses", s.ListStatuses)
	api.GET("/countries", s.ListCountries)
	api.GET("/flights", s.ListFlights)
	api.GET("/shops", s.ListShops)

	authed := api.Group("", AuthMiddleware(s.signer))
	authed.POST("/balance/top-up", s.TopUpBalance)
	authed.GET("/orders/my", s.ListMyOrders)
	authed.POST("/orders/:orderId/pay", s.PayOrder)

	admin := authed.Group("", AdminOnly())
	admin.GET("/orders", s.ListAllOrders)
	admin.GET("/orders/cabinet/:cabinetId", s.ListOrdersByCabinet)
	admin.POST("/orders", s.CreateOrder)
	admin.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	admin.PATCH("/orders/:orderId/declare", s.DeclareOrder)
	admin.DELETE("/orders/:orderId", s.DeleteOrder)
	admin.POST("/countries", s.CreateCountry)
	admin.DELETE("/countries/:countryId", s.DeleteCountry)
	admin.POST("/flights", s.CreateFlight)
	admin.DELETE("/flights/:flightId", s.DeleteFlight)
	admin.POST("/shops", s.CreateShop)
	admin.DELETE("/shops/:shopId", s.DeleteShop)
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterAccountCommand(
		req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber, req.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RegisterAdmin handles POST /api/v1/auth/register-admin.
func (s *Server) RegisterAdmin(ctx echo.Context) error {
	var req RegisterAdminRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterAdminCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	session, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     session.Token,
		AccountID: session.AccountID.String(),
		Email:     session.Email,
		FirstName: session.FirstName,
		LastName:  session.LastName,
		Role:      session.Role,
		CabinetID: session.CabinetID,
		Balance:   session.Balance,
	})
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, order.AllStatusNames())
}

// TopUpBalance handles POST /api/v1/balance/top-up.
func (s *Server) TopUpBalance(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	var req TopUpRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTopUpBalanceCommand(claims.AccountID, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.topUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{
		AccountID: result.AccountID.String(),
		CabinetID: result.CabinetID.String(),
		Balance:   result.Balance.String(),
	})
}

// ListMyOrders handles GET /api/v1/orders/my.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	cabinetID, err := s.resolveCabinet(ctx.Request().Context(), claims.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.listOrdersForCabinet(ctx, cabinetID)
}

// ListOrdersByCabinet handles GET /api/v1/orders/cabinet/:cabinetId.
func (s *Server) ListOrdersByCabinet(ctx echo.Context) error {
	cabinetID, err := kernel.NewCabinetID(ctx.Param("cabinetId"))
	if err != nil {
		return respondError(ctx, err)
	}

	return s.listOrdersForCabinet(ctx, cabinetID)
}

func (s *Server) listOrdersForCabinet(ctx echo.Context, cabinetID kernel.CabinetID) error {
	query, err := queries.NewGetOrdersByCabinetQuery(cabinetID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.ordersByCabinetHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListResponse(items))
}

// ListAllOrders handles GET /api/v1/orders.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	items, err := s.allOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListResponse(items))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	weight, err := decimal.NewFromString(req.Weight)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("weight", err))
	}

	cabinetID, err := kernel.NewCabinetID(req.CabinetID)
	if err != nil {
		return respondError(ctx, err)
	}

	countryID, err := kernel.UUIDFromString(req.CountryID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("countryId", err))
	}

	var flightID *kernel.UUID
	if req.FlightID != nil {
		id, flightErr := kernel.UUIDFromString(*req.FlightID)
		if flightErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("flightId", flightErr))
		}
		flightID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(req.TrackingID, weight, cabinetID, countryID, flightID)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(o))
}

// PayOrder handles POST /api/v1/orders/:orderId/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewPayOrderCommand(claims.AccountID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PayOrderResponse{
		Order: orderResponse(result.Order),
		Balance: BalanceResponse{
			AccountID: result.Account.ID().String(),
			CabinetID: result.Account.CabinetID().String(),
			Balance:   result.Account.Balance().String(),
		},
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// DeclareOrder handles PATCH /api/v1/orders/:orderId/declare.
func (s *Server) DeclareOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewDeclareOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.declareHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListCountries handles GET /api/v1/countries.
func (s *Server) ListCountries(ctx echo.Context) error {
	items, err := s.countriesHandler.Handle(ctx.Request().Context(), queries.NewGetCountriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CountryResponse, len(items))
	for i, item := range items {
		response[i] = CountryResponse{
			ID:      item.ID.String(),
			Name:    item.Name,
			Code:    item.Code,
			Address: item.Address,
			Rate:    item.Rate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCountry handles POST /api/v1/countries.
func (s *Server) CreateCountry(ctx echo.Context) error {
	var req CreateCountryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	rate, err := kernel.NewMoneyFromString(req.Rate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCountryCommand(req.Name, req.Code, req.Address, rate)
	if err != nil {
		return respondError(ctx, err)
	}

	c, err := s.createCountryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CountryResponse{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Code:    c.Code(),
		Address: c.Address(),
		Rate:    c.Rate().String(),
	})
}

// DeleteCountry handles DELETE /api/v1/countries/:countryId.
func (s *Server) DeleteCountry(ctx echo.Context) error {
	countryID, err := kernel.UUIDFromString(ctx.Param("countryId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("countryId", err))
	}

	cmd, err := commands.NewDeleteCountryCommand(countryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteCountryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListFlights handles GET /api/v1/flights.
func (s *Server) ListFlights(ctx echo.Context) error {
	items, err := s.flightsHandler.Handle(ctx.Request().Context(), queries.NewGetFlightsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]FlightResponse, len(items))
	for i, item := range items {
		response[i] = FlightResponse{
			ID:            item.ID.String(),
			Number:        item.Number,
			DepartureTime: item.DepartureTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateFlight handles POST /api/v1/flights.
func (s *Server) CreateFlight(ctx echo.Context) error {
	var req CreateFlightRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateFlightCommand(req.Number, req.DepartureTime)
	if err != nil {
		return respondError(ctx, err)
	}

	f, err := s.createFlightHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, FlightResponse{
		ID:            f.ID().String(),
		Number:        f.Number(),
		DepartureTime: f.DepartureTime(),
	})
}

// DeleteFlight handles DELETE /api/v1/flights/:flightId.
func (s *Server) DeleteFlight(ctx echo.Context) error {
	flightID, err := kernel.UUIDFromString(ctx.Param("flightId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("flightId", err))
	}

	cmd, err := commands.NewDeleteFlightCommand(flightID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteFlightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListShops handles GET /api/v1/shops.
func (s *Server) ListShops(ctx echo.Context) error {
	items, err := s.shopsHandler.Handle(ctx.Request().Context(), queries.NewGetShopsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShopResponse, len(items))
	for i, item := range items {
		response[i] = ShopResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			CountryName: item.CountryName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShop handles POST /api/v1/shops.
func (s *Server) CreateShop(ctx echo.Context) error {
	var req CreateShopRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var countryID *kernel.UUID
	if req.CountryID != nil {
		id, idErr := kernel.UUIDFromString(*req.CountryID)
		if idErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("countryId", idErr))
		}
		countryID = &id
	}

	cmd, err := commands.NewCreateShopCommand(req.Name, countryID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createShopHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ShopResponse{
		ID:   created.ID().String(),
		Name: created.Name(),
	})
}

// DeleteShop handles DELETE /api/v1/shops/:shopId.
func (s *Server) DeleteShop(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("shopId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("shopId", err))
	}

	cmd, err := commands.NewDeleteShopCommand(shopID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteShopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID().String(),
		TrackingID:       o.TrackingID(),
		Weight:           o.Weight().String(),
		CabinetID:        o.CabinetID().String(),
		Price:            o.Price().String(),
		Status:           o.Status().String(),
		IsPaid:           o.IsPaid(),
		IsDeclared:       o.IsDeclared(),
		CreatedAt:        o.CreatedAt(),
		LastStatusUpdate: o.LastStatusUpdate(),
	}
}

func orderListResponse(items []queries.OrderListItem) []OrderResponse {
	response := make([]OrderResponse, len(items))
	for i, item := range items {
		response[i] = OrderResponse{
			ID:               item.ID.String(),
			TrackingID:       item.TrackingID,
			Weight:           item.Weight,
			CabinetID:        item.CabinetID,
			Price:            item.Price,
			Status:           item.Status,
			IsPaid:           item.IsPaid,
			IsDeclared:       item.IsDeclared,
			CountryName:      item.CountryName,
			CountryCode:      item.CountryCode,
			FlightNumber:     item.FlightNumber,
			CreatedAt:        item.CreatedAt,
			LastStatusUpdate: item.LastStatusUpdate,
		}
	}
	return response
}
