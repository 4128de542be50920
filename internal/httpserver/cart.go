package httpserver

import (
	"net/http"

	cartsvc "littlelemon/internal/service/cart"
	checkoutsvc "littlelemon/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type changeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type sessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"`
}

func (h *handlers) createSession(c *gin.Context) {
	token, err := h.deps.SessionSvc.Issue(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.deps.SessionSvc.TTLSeconds(),
	})
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartFrom(c).Snapshot())
}

func (h *handlers) clearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Clear(cartFrom(c)))
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	snap, err := h.deps.CartSvc.AddItem(c.Request.Context(), cartFrom(c), req.ID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) changeCartItem(c *gin.Context) {
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	snap, err := h.deps.CartSvc.ChangeQuantity(cartFrom(c), c.Param("id"), req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Remove(cartFrom(c), c.Param("id")))
}

func (h *handlers) updateCart(c *gin.Context) {
	var in cartsvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badJSON(c)
		return
	}
	snap, err := h.deps.CartSvc.Update(c.Request.Context(), cartFrom(c), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) quote(c *gin.Context) {
	q, err := h.deps.CheckoutSvc.Quote(cartFrom(c).Snapshot(), c.Query("orderType"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *handlers) checkout(c *gin.Context) {
	var req checkoutsvc.Request
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badJSON(c)
			return
		}
	}
	conf, err := h.deps.CheckoutSvc.PlaceOrder(c.Request.Context(), cartFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conf)
}

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.deps.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
