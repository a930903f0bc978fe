package api

import (
	"errors"
	"net/http"

	"github.com/entoni-coder/telegrambot/internal/logger"
	"github.com/entoni-coder/telegrambot/internal/repo/errs"
	"github.com/entoni-coder/telegrambot/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.Service
}

func New(service service.Service) Handler {
	return Handler{
		service: service,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Wheel returns the prize table the wheel is drawn from.
func (h *Handler) Wheel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prizes": h.service.Prizes()})
}

func (h *Handler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.service.Packages()})
}

type meResponse struct {
	UserID       int64  `json:"user_id"`
	FirstName    string `json:"first_name"`
	Balance      int64  `json:"balance"`
	Spins        int    `json:"spins"`
	ReferralCode string `json:"referral_code"`
}

// Me returns the balance of the Mini App user. Requires InitData.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64(userIDKey)

	user, err := h.service.GetUser(c, userID)
	if errors.Is(err, errs.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user is not registered"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("error service.GetUser")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		UserID:       user.ID,
		FirstName:    user.FirstName,
		Balance:      user.Balance,
		Spins:        user.Spins,
		ReferralCode: user.ReferralCode,
	})
}
