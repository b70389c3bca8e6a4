package controllers

import (
	"context"
	"fmt"
	"net/http"

	"oasis-backend/booking"
	"oasis-backend/models"
	"oasis-backend/services"
	"oasis-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationStore interface {
	Create(ctx context.Context, sessionID string, guest services.GuestDetails) (*models.Booking, error)
	Get(ctx context.Context, id uint) (*models.Booking, error)
	Delete(ctx context.Context, id uint) error
}

type ConfirmationRenderer interface {
	Render(ctx context.Context, id uint) ([]byte, string, error)
}

type reservationPayload struct {
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email"`
	NumGuests    int    `json:"numGuests" binding:"required,min=1"`
	Observations string `json:"observations" binding:"max=2000"`
}

type reservationDTO struct {
	ID            uint     `json:"id"`
	ReferenceCode string   `json:"referenceCode"`
	CabinID       uint     `json:"cabinId"`
	CabinName     string   `json:"cabinName,omitempty"`
	GuestName     string   `json:"guestName"`
	GuestEmail    string   `json:"guestEmail"`
	Stay          rangeDTO `json:"stay"`
	NumNights     int      `json:"numNights"`
	NumGuests     int      `json:"numGuests"`
	CabinPrice    string   `json:"cabinPrice"`
	ExtrasPrice   string   `json:"extrasPrice"`
	TotalPrice    string   `json:"totalPrice"`
	Status        string   `json:"status"`
	IsPaid        bool     `json:"isPaid"`
	Observations  string   `json:"observations,omitempty"`
}

func toReservationDTO(b models.Booking) reservationDTO {
	return reservationDTO{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		CabinID:       b.CabinID,
		CabinName:     b.Cabin.Name,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		Stay:          toRangeDTO(booking.Range{From: b.Start(), To: b.End()}),
		NumNights:     b.NumNights,
		NumGuests:     b.NumGuests,
		CabinPrice:    b.CabinPrice.StringFixed(2),
		ExtrasPrice:   b.ExtrasPrice.StringFixed(2),
		TotalPrice:    b.TotalPrice.StringFixed(2),
		Status:        b.Status,
		IsPaid:        b.IsPaid,
		Observations:  b.Observations,
	}
}

type ReservationController struct {
	ReservationSvc  ReservationStore
	ConfirmationSvc ConfirmationRenderer
}

func NewReservationController(svc ReservationStore, confirmations ConfirmationRenderer) *ReservationController {
	return &ReservationController{ReservationSvc: svc, ConfirmationSvc: confirmations}
}

// POST /api/selections/:id/reservation
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := rc.ReservationSvc.Create(c.Request.Context(), c.Param("id"), services.GuestDetails{
		Name:         payload.Name,
		Email:        payload.Email,
		NumGuests:    payload.NumGuests,
		Observations: payload.Observations,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toReservationDTO(*b))
}

// GET /api/reservations/:id
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	b, err := rc.ReservationSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationDTO(*b))
}

// DELETE /api/reservations/:id
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := rc.ReservationSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

// GET /api/reservations/:id/confirmation
func (rc *ReservationController) GetConfirmationPDF(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	pdfBytes, filename, err := rc.ConfirmationSvc.Render(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
