package handlers

import (
	"net/http"
	"strconv"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/travels?type=&source=&destination=&date=&page=&pageSize=
func ListTravels(c *gin.Context) {
	filter := models.TravelFilter{
		TravelType:    c.Query("type"),
		Source:        c.Query("source"),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("date"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	svc := services.TravelService{RequestID: middleware.GetRequestID(c)}
	travels, pagination, err := svc.Search(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"travels":    travels,
		"pagination": pagination,
	})
}

// GET /api/travels/:id
func GetTravel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc := services.TravelService{RequestID: middleware.GetRequestID(c)}
	travel, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travel)
}

type createTravelRequest struct {
	TravelCode    string `json:"travelCode" binding:"required"`
	TravelType    string `json:"travelType" binding:"required"`
	Source        string `json:"source" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	DepartureTime string `json:"departureTime" binding:"required"`
	ArrivalDate   string `json:"arrivalDate" binding:"required"`
	ArrivalTime   string `json:"arrivalTime" binding:"required"`
	Price         int64  `json:"price"`
	TotalSeats    int    `json:"totalSeats" binding:"required,min=1"`
}

// POST /api/travels (admin)
func CreateTravel(c *gin.Context) {
	var req createTravelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.TravelService{RequestID: middleware.GetRequestID(c)}
	travel, err := svc.Create(c.Request.Context(), models.TravelOption{
		TravelCode:    req.TravelCode,
		TravelType:    domain.TravelType(req.TravelType),
		Source:        req.Source,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		DepartureTime: req.DepartureTime,
		ArrivalDate:   req.ArrivalDate,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
		TotalSeats:    req.TotalSeats,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, travel)
}
