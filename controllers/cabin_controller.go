package controllers

import (
	"context"
	"net/http"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"
	"oasis-backend/utils"

	"github.com/gin-gonic/gin"
)

type CabinReader interface {
	List(ctx context.Context) ([]models.Cabin, error)
	GetByID(ctx context.Context, id uint) (*models.Cabin, error)
	BookedDates(ctx context.Context, cabinID uint, today time.Time) ([]time.Time, error)
}

type CabinController struct {
	CabinSvc CabinReader
	Now      func() time.Time
}

func NewCabinController(svc CabinReader) *CabinController {
	return &CabinController{CabinSvc: svc, Now: time.Now}
}

// GET /api/cabins
func (cc *CabinController) GetCabins(c *gin.Context) {
	cabins, err := cc.CabinSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]cabinDTO, 0, len(cabins))
	for _, cabin := range cabins {
		out = append(out, toCabinDTO(cabin))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GET /api/cabins/:id
func (cc *CabinController) GetCabin(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	cabin, err := cc.CabinSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toCabinDTO(*cabin))
}

// GET /api/cabins/:id/booked-dates
func (cc *CabinController) GetBookedDates(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if _, err := cc.CabinSvc.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	if cc.Now != nil {
		now = cc.Now()
	}
	days, err := cc.CabinSvc.BookedDates(c.Request.Context(), id, now)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, booking.FormatDay(d))
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cabinId": id, "bookedDates": out})
}
