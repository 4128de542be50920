package httpserver

import (
	"net/http"

	contactsvc "littlelemon/internal/service/contact"

	"github.com/gin-gonic/gin"
)

func (h *handlers) contactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.ContactSvc.Info())
}

func (h *handlers) createContact(c *gin.Context) {
	var req contactsvc.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	receipt, err := h.deps.ContactSvc.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
