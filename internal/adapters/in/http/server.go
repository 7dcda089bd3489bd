package http

import (
	"errors"
	"net/http"
	"time"

	"freightcore/internal/core/application/usecases/commands"
	"freightcore/internal/core/application/usecases/queries"
	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	transitionShipmentHandler commands.TransitionShipmentCommandHandler

	// Query handlers
	getShipmentByReferenceHandler queries.GetShipmentByReferenceQueryHandler
	getActiveShipmentsHandler     queries.GetActiveShipmentsQueryHandler
	getDailySequenceUsageHandler  queries.GetDailySequenceUsageQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	transitionShipmentHandler commands.TransitionShipmentCommandHandler,
	getShipmentByReferenceHandler queries.GetShipmentByReferenceQueryHandler,
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler,
	getDailySequenceUsageHandler queries.GetDailySequenceUsageQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:         createShipmentHandler,
		transitionShipmentHandler:     transitionShipmentHandler,
		getShipmentByReferenceHandler: getShipmentByReferenceHandler,
		getActiveShipmentsHandler:     getActiveShipmentsHandler,
		getDailySequenceUsageHandler:  getDailySequenceUsageHandler,
		validate:                      validator.New(),
	}
}

// RegisterRoutes attaches the portal API to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/shipments", s.CreateShipment)
	api.PATCH("/shipments/:id/status", s.TransitionShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.GET("/shipments/sequence-usage", s.GetSequenceUsage)
	api.GET("/shipments/:reference", s.GetShipmentByReference)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateShipment handles POST /api/v1/shipments - registers a quote request
// or a booking.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	cmd, err := s.buildCreateCommand(req)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created))
}

// TransitionShipment handles PATCH /api/v1/shipments/:id/status - advances a
// shipment to a new lifecycle status, optionally patching booking details in
// the same step.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req TransitionShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	target, err := shipment.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	patch, err := buildPatch(req)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	cmd, err := commands.NewTransitionShipmentCommand(shipmentID, target, patch)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updated, err := s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// GetShipmentByReference handles GET /api/v1/shipments/:reference - looks up
// one shipment by its booking reference for tracking views.
func (s *Server) GetShipmentByReference(ctx echo.Context) error {
	reference, err := shipment.ReferenceFromString(ctx.Param("reference"))
	if err != nil {
		return badRequest(ctx, "Invalid reference: "+err.Error())
	}

	query, err := queries.NewGetShipmentByReferenceQuery(reference)
	if err != nil {
		return badRequest(ctx, "Invalid reference: "+err.Error())
	}

	found, err := s.getShipmentByReferenceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentResponse{
		ID:            found.ID.Bytes(),
		Reference:     found.Reference,
		Status:        found.Status,
		TransportMode: found.TransportMode,
		ShipperName:   found.ShipperName,
		ConsigneeName: found.ConsigneeName,
		Origin:        found.Origin,
		Destination:   found.Destination,
		CreatedAt:     found.CreatedAt,
		UpdatedAt:     found.UpdatedAt,
	})
}

// GetActiveShipments handles GET /api/v1/shipments/active - retrieves the
// operational board of shipments between pending and cleared.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetActiveShipmentsQuery()

	active, err := s.getActiveShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActiveShipmentResponse, len(active))
	for i, row := range active {
		response[i] = ActiveShipmentResponse{
			ID:            row.ID.Bytes(),
			Reference:     row.Reference,
			Status:        row.Status,
			TransportMode: row.TransportMode,
			Origin:        row.Origin,
			Destination:   row.Destination,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSequenceUsage handles GET /api/v1/shipments/sequence-usage - reports how
// many references each per-mode daily counter has handed out. The optional
// "day" query parameter (2006-01-02) defaults to the current UTC day.
func (s *Server) GetSequenceUsage(ctx echo.Context) error {
	day := time.Now().UTC()
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(ctx, "Invalid day, expected 2006-01-02")
		}
		day = parsed
	}

	query, err := queries.NewGetDailySequenceUsageQuery(day)
	if err != nil {
		return badRequest(ctx, "Invalid day: "+err.Error())
	}

	usage, err := s.getDailySequenceUsageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]SequenceUsageResponse, len(usage))
	for i, row := range usage {
		response[i] = SequenceUsageResponse{Key: row.Key, Used: row.Used}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) buildCreateCommand(req CreateShipmentRequest) (commands.CreateShipmentCommand, error) {
	mode, err := shipment.ModeFromString(req.TransportMode)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	var ownerRef *kernel.UUID
	if req.OwnerRef != "" {
		owner, ownerErr := kernel.UUIDFromString(req.OwnerRef)
		if ownerErr != nil {
			return commands.CreateShipmentCommand{}, ownerErr
		}
		ownerRef = &owner
	}

	shipper, err := toParty(req.Shipper)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	consignee, err := toParty(req.Consignee)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	notify, err := toParty(req.Notify)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	cargo, err := shipment.NewCargo(req.Cargo.Description, req.Cargo.WeightKg, req.Cargo.DeclaredValue)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		mode,
		ownerRef,
		shipper,
		consignee,
		notify,
		shipment.NewRoute(req.Origin, req.Destination),
		cargo,
	)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	if req.Status != "" {
		status, statusErr := shipment.StatusFromString(req.Status)
		if statusErr != nil {
			return commands.CreateShipmentCommand{}, statusErr
		}
		cmd, err = cmd.WithStatus(status)
		if err != nil {
			return commands.CreateShipmentCommand{}, err
		}
	}

	if req.Reference != "" {
		reference, refErr := shipment.ReferenceFromString(req.Reference)
		if refErr != nil {
			return commands.CreateShipmentCommand{}, refErr
		}
		cmd, err = cmd.WithReference(reference)
		if err != nil {
			return commands.CreateShipmentCommand{}, err
		}
	}

	return cmd, nil
}

func buildPatch(req TransitionShipmentRequest) (shipment.Patch, error) {
	var patch shipment.Patch

	if req.TransportMode != nil {
		mode, err := shipment.ModeFromString(*req.TransportMode)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.TransportMode = &mode
	}

	if req.OwnerRef != nil {
		owner, err := kernel.UUIDFromString(*req.OwnerRef)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.OwnerRef = &owner
	}

	patch.Shipper = toPartyPatch(req.Shipper)
	patch.Consignee = toPartyPatch(req.Consignee)
	patch.Notify = toPartyPatch(req.Notify)
	patch.Origin = req.Origin
	patch.Destination = req.Destination

	if req.Cargo != nil {
		patch.Cargo = &shipment.CargoPatch{
			Description:   req.Cargo.Description,
			WeightKg:      req.Cargo.WeightKg,
			DeclaredValue: req.Cargo.DeclaredValue,
		}
	}

	return patch, nil
}

func toPartyPatch(req *PartyPatchRequest) *shipment.PartyPatch {
	if req == nil {
		return nil
	}
	return &shipment.PartyPatch{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
}

func toParty(req PartyRequest) (shipment.Party, error) {
	return shipment.NewParty(req.Name, req.Address, req.Email)
}

func toShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		ID:            s.ID().Bytes(),
		Reference:     s.Reference().Value(),
		Status:        s.Status().String(),
		TransportMode: s.TransportMode().String(),
		ShipperName:   s.Shipper().Name(),
		ConsigneeName: s.Consignee().Name(),
		Origin:        s.Route().Origin(),
		Destination:   s.Route().Destination(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
	if owner := s.OwnerRef(); owner != nil {
		resp.OwnerRef = owner.String()
	}
	return resp
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP statuses: unknown objects
// become 404, lifecycle and concurrency conflicts 409, bad values 400, and
// everything else 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrReferenceCollision):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
