package http

import (
	"net/http"

	"medship/internal/core/application/usecases/commands"
	"medship/internal/core/application/usecases/queries"
	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/medicine"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the medicine shipping API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler      commands.CreateShipmentCommandHandler
	registerTransporterHandler commands.RegisterTransporterCommandHandler
	addCargoBayHandler         commands.AddCargoBayCommandHandler

	// Query handlers
	getAllTransportersHandler      queries.GetAllTransportersQueryHandler
	getUndeliveredShipmentsHandler queries.GetUndeliveredShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	registerTransporterHandler commands.RegisterTransporterCommandHandler,
	addCargoBayHandler commands.AddCargoBayCommandHandler,
	getAllTransportersHandler queries.GetAllTransportersQueryHandler,
	getUndeliveredShipmentsHandler queries.GetUndeliveredShipmentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:          createShipmentHandler,
		registerTransporterHandler:     registerTransporterHandler,
		addCargoBayHandler:             addCargoBayHandler,
		getAllTransportersHandler:      getAllTransportersHandler,
		getUndeliveredShipmentsHandler: getUndeliveredShipmentsHandler,
	}
}

// RegisterRoutes attaches all API routes and the request validator to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.POST("/transporters", s.RegisterTransporter)
	api.GET("/transporters", s.GetTransporters)
	api.POST("/transporters/:id/cargo-bays", s.AddCargoBay)
}

// Health handles GET /health - liveness check.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateShipment handles POST /api/v1/shipments - creates a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	kind, err := medicine.KindFromString(request.MedicineKind)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown medicine kind: " + request.MedicineKind,
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kind, request.MedicineName, request.Distance)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create shipment",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RegisterTransporter handles POST /api/v1/transporters - registers a new transporter.
func (s *Server) RegisterTransporter(ctx echo.Context) error {
	var request RegisterTransporterRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterTransporterCommand(request.Name, request.Speed)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid transporter data: " + err.Error(),
		})
	}

	if handleErr := s.registerTransporterHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to register transporter",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddCargoBay handles POST /api/v1/transporters/:id/cargo-bays - adds a cargo bay
// to an existing transporter.
func (s *Server) AddCargoBay(ctx echo.Context) error {
	transporterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid transporter ID",
		})
	}

	var request AddCargoBayRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	trange, err := kernel.NewTemperatureRange(*request.MinimumTemperature, *request.MaximumTemperature)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid temperature range: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddCargoBayCommand(transporterID, request.Name, trange)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid cargo bay data: " + err.Error(),
		})
	}

	if handleErr := s.addCargoBayHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to add cargo bay",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTransporters handles GET /api/v1/transporters - retrieves all transporters.
func (s *Server) GetTransporters(ctx echo.Context) error {
	query := queries.NewGetAllTransportersQuery()

	transporters, err := s.getAllTransportersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve transporters",
		})
	}

	response := make([]TransporterResponse, len(transporters))
	for i, transporter := range transporters {
		response[i] = TransporterResponse{
			ID:             transporter.ID.Bytes(),
			Name:           transporter.Name,
			Speed:          transporter.Speed,
			FreeCargoBays:  transporter.FreeCargoBays,
			TotalCargoBays: transporter.TotalCargoBays,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveShipments handles GET /api/v1/shipments/active - retrieves all
// undelivered shipments.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetUndeliveredShipmentsQuery()

	shipments, err := s.getUndeliveredShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipments",
		})
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, shp := range shipments {
		response[i] = ShipmentResponse{
			ID:           shp.ID.Bytes(),
			MedicineName: shp.MedicineName,
			Status:       shp.Status.String(),
			Distance:     shp.Distance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
