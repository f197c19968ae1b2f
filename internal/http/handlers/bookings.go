package handlers

import (
	"net/http"

	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	TravelOptionID int64 `json:"travelOptionId" binding:"required"`
	SeatCount      int   `json:"seatCount" binding:"required"`
	// one name per line, matching the booking form
	PassengerNames string `json:"passengerNames" binding:"required"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Reserve(
		c.Request.Context(),
		rc.UserID,
		req.TravelOptionID,
		req.SeatCount,
		services.ParsePassengerNames(req.PassengerNames),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings
func ListMyBookings(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	bookings, err := svc.ListForUser(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.GetForUser(c.Request.Context(), rc.UserID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	cancelled, err := svc.Cancel(c.Request.Context(), rc.UserID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !cancelled {
		respondError(c, http.StatusConflict, "conflict", "booking is already cancelled")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// GET /api/bookings/:id/ticket
func GetBookingETicket(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(c.Request.Context(), rc.UserID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
