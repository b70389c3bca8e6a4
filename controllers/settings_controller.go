package controllers

import (
	"context"
	"net/http"

	"oasis-backend/models"
	"oasis-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SettingsStore interface {
	Get(ctx context.Context) (models.Setting, error)
	Update(ctx context.Context, in models.Setting) (models.Setting, error)
}

type settingsPayload struct {
	MinBookingLength    int             `json:"minBookingLength" binding:"required"`
	MaxBookingLength    int             `json:"maxBookingLength" binding:"required"`
	MaxGuestsPerBooking int             `json:"maxGuestsPerBooking" binding:"required"`
	BreakfastPrice      decimal.Decimal `json:"breakfastPrice"`
}

type SettingsController struct {
	SettingsSvc SettingsStore
}

func NewSettingsController(svc SettingsStore) *SettingsController {
	return &SettingsController{SettingsSvc: svc}
}

// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	setting, err := sc.SettingsSvc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// PUT /api/settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	setting, err := sc.SettingsSvc.Update(c.Request.Context(), models.Setting{
		MinBookingLength:    payload.MinBookingLength,
		MaxBookingLength:    payload.MaxBookingLength,
		MaxGuestsPerBooking: payload.MaxGuestsPerBooking,
		BreakfastPrice:      payload.BreakfastPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
