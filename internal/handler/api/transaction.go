package api

import (
	"net/http"

	resdto "snoozetax/internal/handler/dto/response"
	"snoozetax/internal/handler/middleware"
	"snoozetax/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	txUseCase usecase.TransactionUseCase
}

func NewTransactionHandler(txUseCase usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{
		txUseCase: txUseCase,
	}
}

// @Summary List transactions
// @Description List the authenticated user's penalty and payment history
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rms, err := h.txUseCase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionRMs(rms))
}
