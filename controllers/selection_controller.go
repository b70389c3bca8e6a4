package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"oasis-backend/booking"
	"oasis-backend/services"
	"oasis-backend/utils"

	"github.com/gin-gonic/gin"
)

type SelectionFlow interface {
	Open(ctx context.Context, cabinID uint) (services.SelectionSnapshot, error)
	Select(ctx context.Context, id string, candidate booking.Range) (booking.Verdict, string, services.SelectionSnapshot, error)
	Clear(ctx context.Context, id string) (services.SelectionSnapshot, error)
	View(ctx context.Context, id string) (services.SelectionSnapshot, error)
	Close(id string) error
}

// rangePayload is one date-picker gesture. Either end may be blank while the guest
// is still choosing.
type rangePayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (p rangePayload) toRange() (booking.Range, error) {
	var from, to time.Time
	var err error
	if s := strings.TrimSpace(p.StartDate); s != "" {
		if from, err = booking.ParseDay(s); err != nil {
			return booking.Range{}, err
		}
	}
	if s := strings.TrimSpace(p.EndDate); s != "" {
		if to, err = booking.ParseDay(s); err != nil {
			return booking.Range{}, err
		}
	}
	return booking.NewRange(from, to), nil
}

type SelectionController struct {
	SelectionSvc SelectionFlow
}

func NewSelectionController(svc SelectionFlow) *SelectionController {
	return &SelectionController{SelectionSvc: svc}
}

// POST /api/cabins/:id/selections
func (sc *SelectionController) OpenSelection(c *gin.Context) {
	cabinID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	snap, err := sc.SelectionSvc.Open(c.Request.Context(), cabinID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toSelectionDTO(snap))
}

// GET /api/selections/:id
func (sc *SelectionController) GetSelection(c *gin.Context) {
	snap, err := sc.SelectionSvc.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toSelectionDTO(snap))
}

// PUT /api/selections/:id/range
func (sc *SelectionController) SetRange(c *gin.Context) {
	var payload rangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	candidate, err := payload.toRange()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dates must be YYYY-MM-DD")
		return
	}

	v, warning, snap, err := sc.SelectionSvc.Select(c.Request.Context(), c.Param("id"), candidate)
	if err != nil {
		respondError(c, err)
		return
	}

	out := toSelectionDTO(snap)
	out.Verdict = v.Kind.String()
	if warning != "" {
		utils.JSONWarning(c, http.StatusOK, out, warning)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// DELETE /api/selections/:id/range
func (sc *SelectionController) ClearRange(c *gin.Context) {
	snap, err := sc.SelectionSvc.Clear(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toSelectionDTO(snap))
}

// DELETE /api/selections/:id
func (sc *SelectionController) CloseSelection(c *gin.Context) {
	if err := sc.SelectionSvc.Close(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Selection closed"})
}
