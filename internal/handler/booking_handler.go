package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/staybook/lodging-booking-service/internal/dto"
	"github.com/staybook/lodging-booking-service/internal/models"
	"github.com/staybook/lodging-booking-service/internal/service"
	"gorm.io/gorm"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/v1/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id", h.UpdateBooking)
	bookings.DELETE("/:id", h.DeleteBooking)

	// Three fixed-target state changes, one per stakeholder action.
	bookings.POST("/:id/pending", h.MarkPending)
	bookings.POST("/:id/accept", h.AcceptBooking)
	bookings.POST("/:id/reject", h.RejectBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) MarkPending(c echo.Context) error {
	return h.changeState(c, models.StatePending)
}

func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	return h.changeState(c, models.StateAccepted)
}

func (h *BookingHandler) RejectBooking(c echo.Context) error {
	return h.changeState(c, models.StateRejected)
}

func (h *BookingHandler) changeState(c echo.Context, target models.BookingState) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	var req dto.ChangeStateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.ChangeState(c.Request().Context(), id, target, req.ActorID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	bookings, err := h.svc.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bookingID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	return uint(id), nil
}

func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrTouristNotFound),
		errors.Is(err, service.ErrLodgingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrActorNotLodgingOwner),
		errors.Is(err, service.ErrActorNotTourist):
		if verrs, ok := service.AsValidationErrors(err); ok {
			return echo.NewHTTPError(http.StatusForbidden, verrs.Messages())
		}
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrBookingNotCreated):
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusNotAcceptable, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		if verrs, ok := service.AsValidationErrors(err); ok {
			return echo.NewHTTPError(http.StatusBadRequest, verrs.Messages())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
