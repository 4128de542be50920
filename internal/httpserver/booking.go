package httpserver

import (
	"net/http"

	bookingsvc "littlelemon/internal/service/booking"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

func (h *handlers) availability(c *gin.Context) {
	avail, err := h.deps.BookingSvc.Availability(c.Query("date"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

func (h *handlers) createBooking(c *gin.Context) {
	var req bookingsvc.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	res, err := h.deps.BookingSvc.Submit(c.Request.Context(), req, c.GetHeader(idempotencyHeader))
	if err != nil {
		h.writeError(c, err)
		return
	}
	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, res)
}
