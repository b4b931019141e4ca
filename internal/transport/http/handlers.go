package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

var errBadBody = errors.New("malformed request body")

// ---- каталог ----

func (h *Handler) getMenu(c *gin.Context) {
	sections, err := h.svc.Menu.Sections(c.Request.Context())
	if err != nil {
		h.log.Warnf(c.Request.Context(), "menu unavailable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// ---- корзина ----

type addItemRequest struct {
	MenuItemID int          `json:"menuItemId"`
	ItemName   string       `json:"itemName"`
	Price      domain.Money `json:"price"`
	Quantity   *int         `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *Handler) getCart(c *gin.Context) {
	sum, err := h.svc.Cart.Summary(c.Request.Context())
	if err != nil {
		h.respondError(c, "cart summary", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadBody.Error()})
		return
	}

	// поле количества на карточке по умолчанию равно 1
	qty := domain.MinQuantity
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	ref := domain.ItemRef{MenuItemID: req.MenuItemID, ItemName: req.ItemName, Price: req.Price}
	sum, err := h.svc.Cart.AddItem(c.Request.Context(), ref, qty)
	if err != nil {
		h.respondError(c, "add cart item", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) setCartItemQuantity(c *gin.Context) {
	id, err := httpx.PositiveIntParam(c, "id")
	if err != nil {
		h.respondError(c, "set quantity", err)
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	sum, err := h.svc.Cart.SetQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		h.respondError(c, "set quantity", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	id, err := httpx.PositiveIntParam(c, "id")
	if err != nil {
		h.respondError(c, "remove cart item", err)
		return
	}

	sum, err := h.svc.Cart.RemoveItem(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "remove cart item", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) clearCart(c *gin.Context) {
	if err := h.svc.Cart.Clear(c.Request.Context()); err != nil {
		h.respondError(c, "clear cart", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- оформление ----

func (h *Handler) getCheckout(c *gin.Context) {
	sum, err := h.svc.Checkout.Summary(c.Request.Context())
	if err != nil {
		h.respondError(c, "checkout summary", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) submitCheckout(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadBody.Error()})
		return
	}

	receipt, err := h.svc.Checkout.Submit(c.Request.Context(), customer)
	if err != nil {
		h.respondError(c, "submit order", err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *Handler) getLastOrder(c *gin.Context) {
	last, found, err := h.svc.Checkout.LastOrder(c.Request.Context())
	if err != nil {
		h.respondError(c, "last order", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no orders yet"})
		return
	}
	c.JSON(http.StatusOK, last)
}

// ---- воркер ----

func (h *Handler) getWorkerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Worker.Status())
}

func (h *Handler) postWorkerMessage(c *gin.Context) {
	var msg domain.ControlMessage
	if err := c.ShouldBindJSON(&msg); err != nil || msg.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid control message"})
		return
	}

	if err := h.svc.Worker.HandleMessage(c.Request.Context(), msg); err != nil {
		h.respondError(c, "control message", err)
		return
	}
	c.JSON(http.StatusAccepted, h.svc.Worker.Status())
}

func (h *Handler) postWorkerRelease(c *gin.Context) {
	var m domain.Manifest
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadBody.Error()})
		return
	}

	if err := h.svc.Worker.Install(c.Request.Context(), m); err != nil {
		h.respondError(c, "install release", err)
		return
	}
	c.JSON(http.StatusCreated, h.svc.Worker.Status())
}
