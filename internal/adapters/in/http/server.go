package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mescolis/internal/core/application/usecases/commands"
	"mescolis/internal/core/application/usecases/queries"
	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/locker"
	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler        *commands.RegisterUserCommandHandler
	loginHandler               *commands.LoginCommandHandler
	createShipmentHandler      *commands.CreateShipmentCommandHandler
	reserveCompartmentHandler  *commands.ReserveCompartmentCommandHandler
	createPaymentIntentHandler *commands.CreatePaymentIntentCommandHandler
	confirmPaymentHandler      *commands.ConfirmPaymentCommandHandler
	toggleUserStatusHandler    *commands.ToggleUserStatusCommandHandler

	// Query handlers
	getQuotesHandler         queries.GetQuotesQueryHandler
	getShipmentHandler       queries.GetShipmentQueryHandler
	listShipmentsHandler     queries.ListShipmentsQueryHandler
	trackShipmentHandler     queries.TrackShipmentQueryHandler
	listLockersHandler       queries.ListLockersQueryHandler
	findNearbyLockersHandler queries.FindNearbyLockersQueryHandler
	listReservationsHandler  queries.ListReservationsQueryHandler
	adminDashboardHandler    queries.AdminDashboardQueryHandler
	adminListUsersHandler    queries.AdminListUsersQueryHandler

	auth *AuthMiddleware
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	registerUserHandler *commands.RegisterUserCommandHandler,
	loginHandler *commands.LoginCommandHandler,
	createShipmentHandler *commands.CreateShipmentCommandHandler,
	reserveCompartmentHandler *commands.ReserveCompartmentCommandHandler,
	createPaymentIntentHandler *commands.CreatePaymentIntentCommandHandler,
	confirmPaymentHandler *commands.ConfirmPaymentCommandHandler,
	toggleUserStatusHandler *commands.ToggleUserStatusCommandHandler,
	getQuotesHandler queries.GetQuotesQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	listLockersHandler queries.ListLockersQueryHandler,
	findNearbyLockersHandler queries.FindNearbyLockersQueryHandler,
	listReservationsHandler queries.ListReservationsQueryHandler,
	adminDashboardHandler queries.AdminDashboardQueryHandler,
	adminListUsersHandler queries.AdminListUsersQueryHandler,
	auth *AuthMiddleware,
) *Server {
	return &Server{
		registerUserHandler:        registerUserHandler,
		loginHandler:               loginHandler,
		createShipmentHandler:      createShipmentHandler,
		reserveCompartmentHandler:  reserveCompartmentHandler,
		createPaymentIntentHandler: createPaymentIntentHandler,
		confirmPaymentHandler:      confirmPaymentHandler,
		toggleUserStatusHandler:    toggleUserStatusHandler,
		getQuotesHandler:           getQuotesHandler,
		getShipmentHandler:         getShipmentHandler,
		listShipmentsHandler:       listShipmentsHandler,
		trackShipmentHandler:       trackShipmentHandler,
		listLockersHandler:         listLockersHandler,
		findNearbyLockersHandler:   findNearbyLockersHandler,
		listReservationsHandler:    listReservationsHandler,
		adminDashboardHandler:      adminDashboardHandler,
		adminListUsersHandler:      adminListUsersHandler,
		auth:                       auth,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	api.POST("/quote", s.GetQuotes)
	api.GET("/track/:trackingNumber", s.TrackShipment)
	api.GET("/locker", s.ListLockers)
	api.GET("/locker/nearby", s.FindNearbyLockers)
	api.POST("/payment/webhook", s.PaymentWebhook)

	authed := api.Group("", s.auth.Authenticate)
	authed.GET("/auth/me", s.Me)
	authed.POST("/shipment", s.CreateShipment)
	authed.GET("/shipment", s.ListShipments)
	authed.GET("/shipment/:id", s.GetShipment)
	authed.POST("/locker/reserve", s.ReserveCompartment)
	authed.GET("/locker/reservations", s.ListReservations)
	authed.POST("/payment/intent", s.CreatePaymentIntent)
	authed.POST("/payment/confirm", s.ConfirmPayment)

	admin := api.Group("/admin", s.auth.Authenticate, s.auth.RequireAdmin)
	admin.GET("/dashboard", s.AdminDashboard)
	admin.GET("/users", s.AdminListUsers)
	admin.POST("/users/:id/toggle-status", s.ToggleUserStatus)
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	accountType := user.Consumer
	if req.AccountType != "" {
		parsed, err := user.AccountTypeFromString(req.AccountType)
		if err != nil {
			return badRequest(ctx, "Unknown account type")
		}
		accountType = parsed
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Email,
		req.Password,
		req.FirstName,
		req.LastName,
		req.CompanyName,
		req.Phone,
		accountType,
		req.PreferredLanguage,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	auth, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return conflict(ctx, "Email is already registered")
		}
		return internalError(ctx, "Failed to register account")
	}

	return ctx.JSON(http.StatusCreated, authResponseFrom(auth))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	auth, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		case errors.Is(err, commands.ErrAccountDeactivated):
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Account is deactivated",
			})
		}
		return internalError(ctx, "Failed to sign in")
	}

	return ctx.JSON(http.StatusOK, authResponseFrom(auth))
}

// Me handles GET /api/auth/me. The profile comes straight from the verified
// token claims without touching the database.
func (s *Server) Me(ctx echo.Context) error {
	claims := claimsFrom(ctx)
	if claims == nil {
		return unauthorized(ctx)
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		UserID:      claims.UserID,
		Email:       claims.Email,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		Role:        claims.Role,
		AccountType: claims.AccountType,
	})
}

// GetQuotes handles POST /api/quote. The endpoint is public so visitors can
// compare rates before creating an account.
func (s *Server) GetQuotes(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentType := shipment.Package
	if req.ShipmentType != "" {
		parsed, err := shipment.TypeFromString(req.ShipmentType)
		if err != nil {
			return badRequest(ctx, "Unknown shipment type")
		}
		shipmentType = parsed
	}

	query, err := queries.NewGetQuotesQuery(
		req.FromPostalCode,
		req.ToPostalCode,
		req.FromCountry,
		req.ToCountry,
		req.WeightKg,
		req.LengthCm,
		req.WidthCm,
		req.HeightCm,
		shipmentType,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rates, err := s.getQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to calculate rates")
	}

	return ctx.JSON(http.StatusOK, quoteResponsesFrom(rates))
}

// CreateShipment handles POST /api/shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	ownerID, ok := currentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromAddress, err := req.FromAddress.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid origin address: "+err.Error())
	}
	toAddress, err := req.ToAddress.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid destination address: "+err.Error())
	}

	shipmentType := shipment.Package
	if req.ShipmentType != "" {
		parsed, typeErr := shipment.TypeFromString(req.ShipmentType)
		if typeErr != nil {
			return badRequest(ctx, "Unknown shipment type")
		}
		shipmentType = parsed
	}

	cmd, err := commands.NewCreateShipmentCommand(
		ownerID,
		fromAddress,
		toAddress,
		shipmentType,
		shipment.Dimensions{
			WeightKg: req.WeightKg,
			LengthCm: req.LengthCm,
			WidthCm:  req.WidthCm,
			HeightCm: req.HeightCm,
		},
		req.CarrierName,
		req.ServiceName,
		req.QuotedPrice,
		req.OriginLockerID,
		req.DestinationLockerID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create shipment")
	}

	return ctx.JSON(http.StatusCreated, createdShipmentResponseFrom(created))
}

// GetShipment handles GET /api/shipment/:id. Shipments are only visible to
// their owner.
func (s *Server) GetShipment(ctx echo.Context) error {
	ownerID, ok := currentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	shipmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, ownerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Shipment not found")
		}
		return internalError(ctx, "Failed to load shipment")
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFrom(resp))
}

// ListShipments handles GET /api/shipment.
func (s *Server) ListShipments(ctx echo.Context) error {
	ownerID, ok := currentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	page, pageSize := paginationParams(ctx)

	query, err := queries.NewListShipmentsQuery(ownerID, page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load shipments")
	}

	items := make([]ShipmentResponse, len(resp.Items))
	for i := range resp.Items {
		items[i] = shipmentResponseFrom(&resp.Items[i])
	}

	return ctx.JSON(http.StatusOK, PaginatedShipmentsResponse{
		Items:      items,
		TotalCount: resp.TotalCount,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
	})
}

// TrackShipment handles GET /api/track/:trackingNumber. Tracking is public;
// anyone holding a tracking number may follow the shipment.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	resp, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Tracking number not found")
		}
		return internalError(ctx, "Failed to track shipment")
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFrom(resp))
}

// ListLockers handles GET /api/locker.
func (s *Server) ListLockers(ctx echo.Context) error {
	lockers, err := s.listLockersHandler.Handle(ctx.Request().Context(), queries.NewListLockersQuery())
	if err != nil {
		return internalError(ctx, "Failed to load lockers")
	}
	return ctx.JSON(http.StatusOK, lockerResponsesFrom(lockers))
}

// FindNearbyLockers handles GET /api/locker/nearby.
func (s *Server) FindNearbyLockers(ctx echo.Context) error {
	latitude, latErr := strconv.ParseFloat(ctx.QueryParam("latitude"), 64)
	longitude, lngErr := strconv.ParseFloat(ctx.QueryParam("longitude"), 64)
	if latErr != nil || lngErr != nil {
		return badRequest(ctx, "latitude and longitude are required")
	}

	radiusKm := 10.0
	if raw := ctx.QueryParam("radiusKm"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "Invalid radius")
		}
		radiusKm = parsed
	}

	query, err := queries.NewFindNearbyLockersQuery(latitude, longitude, radiusKm)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	lockers, err := s.findNearbyLockersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to search lockers")
	}

	return ctx.JSON(http.StatusOK, lockerResponsesFrom(lockers))
}

// ReserveCompartment handles POST /api/locker/reserve.
func (s *Server) ReserveCompartment(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req ReserveCompartmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	size, err := locker.SizeFromString(req.Size)
	if err != nil {
		return badRequest(ctx, "Unknown compartment size")
	}

	cmd, err := commands.NewReserveCompartmentCommand(userID, req.LockerID, size, req.HoldHours, req.ShipmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	reservation, err := s.reserveCompartmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Locker not found or no compartment of that size is free")
		case errors.Is(err, locker.ErrNoCapacity), errors.Is(err, errs.ErrCompartmentTaken):
			return conflict(ctx, "No compartment available, try again")
		}
		return internalError(ctx, "Failed to reserve compartment")
	}

	return ctx.JSON(http.StatusCreated, ReservationResponse{
		ID:                reservation.ReservationID,
		LockerCode:        reservation.LockerCode,
		LocationName:      reservation.LocationName,
		CompartmentNumber: reservation.CompartmentNumber,
		Size:              reservation.Size,
		PickupPin:         reservation.PickupPin,
		Status:            reservation.Status,
		ReservedAt:        reservation.ReservedAt,
		ExpiresAt:         reservation.ExpiresAt,
	})
}

// ListReservations handles GET /api/locker/reservations.
func (s *Server) ListReservations(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListReservationsQuery(userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	reservations, err := s.listReservationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load reservations")
	}

	out := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = ReservationResponse{
			ID:                r.ID,
			LockerCode:        r.LockerCode,
			LocationName:      r.LocationName,
			CompartmentNumber: r.CompartmentNumber,
			Size:              r.Size,
			PickupPin:         r.PickupPin,
			Status:            r.Status,
			ReservedAt:        r.ReservedAt,
			ExpiresAt:         r.ExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, out)
}

// CreatePaymentIntent handles POST /api/payment/intent.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CreatePaymentIntentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentType := payment.Shipment
	if req.PaymentType != "" {
		parsed, err := payment.TypeFromString(req.PaymentType)
		if err != nil {
			return badRequest(ctx, "Unknown payment type")
		}
		paymentType = parsed
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(
		userID,
		req.Amount,
		req.Currency,
		paymentType,
		req.Description,
		req.ShipmentID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.createPaymentIntentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Account not found")
		}
		return internalError(ctx, "Failed to create payment intent")
	}

	return ctx.JSON(http.StatusCreated, CreatePaymentIntentResponse{
		ClientSecret:    resp.ClientSecret,
		PaymentIntentID: resp.PaymentIntentID,
		Amount:          resp.Amount,
		Currency:        resp.Currency,
	})
}

// ConfirmPayment handles POST /api/payment/confirm. The processor is the
// source of truth; the local record is reconciled to the intent's status.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var req ConfirmPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmPaymentCommand(req.PaymentIntentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	confirmed, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Payment not found")
		}
		return internalError(ctx, "Failed to confirm payment")
	}

	return ctx.JSON(http.StatusOK, PaymentResponse{
		ID:              confirmed.ID(),
		PaymentIntentID: confirmed.IntentID(),
		Amount:          confirmed.Amount(),
		Currency:        confirmed.Currency(),
		Status:          confirmed.Status().String(),
		PaymentType:     confirmed.PaymentType().String(),
		CompletedAt:     confirmed.CompletedAt(),
	})
}

// PaymentWebhook handles POST /api/payment/webhook. Events are acknowledged
// without processing; reconciliation happens through the confirm endpoint.
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

// AdminDashboard handles GET /api/admin/dashboard.
func (s *Server) AdminDashboard(ctx echo.Context) error {
	resp, err := s.adminDashboardHandler.Handle(ctx.Request().Context(), queries.NewAdminDashboardQuery())
	if err != nil {
		return internalError(ctx, "Failed to load dashboard")
	}

	return ctx.JSON(http.StatusOK, AdminDashboardResponse{
		TotalUsers:               resp.TotalUsers,
		TotalBusinessUsers:       resp.TotalBusinessUsers,
		TotalConsumerUsers:       resp.TotalConsumerUsers,
		NewUsersThisMonth:        resp.NewUsersThisMonth,
		TotalShipments:           resp.TotalShipments,
		ShipmentsThisMonth:       resp.ShipmentsThisMonth,
		RevenueThisMonth:         resp.RevenueThisMonth,
		TotalRevenue:             resp.TotalRevenue,
		ActiveLockers:            resp.ActiveLockers,
		TotalLockerTransactions:  resp.TotalLockerTransactions,
		AverageLockerUtilization: resp.AverageLockerUtilization,
	})
}

// AdminListUsers handles GET /api/admin/users.
func (s *Server) AdminListUsers(ctx echo.Context) error {
	page, pageSize := paginationParams(ctx)

	var accountType *user.AccountType
	if raw := ctx.QueryParam("accountType"); raw != "" {
		parsed, err := user.AccountTypeFromString(raw)
		if err != nil {
			return badRequest(ctx, "Unknown account type")
		}
		accountType = &parsed
	}

	query, err := queries.NewAdminListUsersQuery(page, pageSize, ctx.QueryParam("search"), accountType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.adminListUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load accounts")
	}

	items := make([]AdminUserResponse, len(resp.Items))
	for i, u := range resp.Items {
		items[i] = AdminUserResponse{
			ID:            u.ID,
			Email:         u.Email,
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			CompanyName:   u.CompanyName,
			AccountType:   u.AccountType,
			IsActive:      u.IsActive,
			CreatedAt:     u.CreatedAt,
			LastLoginAt:   u.LastLoginAt,
			ShipmentCount: u.ShipmentCount,
			TotalSpent:    u.TotalSpent,
		}
	}

	return ctx.JSON(http.StatusOK, PaginatedUsersResponse{
		Items:      items,
		TotalCount: resp.TotalCount,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
	})
}

// ToggleUserStatus handles POST /api/admin/users/:id/toggle-status.
func (s *Server) ToggleUserStatus(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewToggleUserStatusCommand(userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	isActive, err := s.toggleUserStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "User not found")
		}
		return internalError(ctx, "Failed to toggle account status")
	}

	return ctx.JSON(http.StatusOK, ToggleUserStatusResponse{
		UserID:   userID.String(),
		IsActive: isActive,
	})
}

func paginationParams(ctx echo.Context) (page int, pageSize int) {
	page, pageSize = 1, 20
	if raw := ctx.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageSize = parsed
		}
	}
	return page, pageSize
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "Authentication required"})
}
