package rest

import (
	"net/http"
	"net/url"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Services — usecase-зависимости транспортного слоя.
type Services struct {
	Cart     ports.CartService
	Checkout ports.CheckoutService
	Menu     ports.MenuReader
	Worker   ports.WorkerControl
}

// Handler — HTTP-обработчики витрины. Всё, что не совпало с API-маршрутами,
// считается запросом ресурса статики и уходит через контроллер воркера.
type Handler struct {
	svc    Services
	static *url.URL
	ws     http.Handler
	log    ports.Logger
}

// NewHandler — static: origin статики; ws: канал страниц с контроллером (nil — маршрут не регистрируется).
func NewHandler(svc Services, static *url.URL, ws http.Handler, log ports.Logger) *Handler {
	return &Handler{svc: svc, static: static, ws: ws, log: log}
}

// NewRouter — gin-движок со всеми маршрутами; serviceName пустой — без otelgin.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.PartitionMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/menu", h.getMenu)

	cart := r.Group("/cart")
	cart.GET("", h.getCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/items", h.addCartItem)
	cart.PUT("/items/:id", h.setCartItemQuantity)
	cart.DELETE("/items/:id", h.removeCartItem)

	checkout := r.Group("/checkout")
	checkout.GET("", h.getCheckout)
	checkout.POST("", h.submitCheckout)
	checkout.GET("/last", h.getLastOrder)

	worker := r.Group("/worker")
	worker.GET("", h.getWorkerStatus)
	worker.POST("/messages", h.postWorkerMessage)
	worker.POST("/releases", h.postWorkerRelease)
	if h.ws != nil {
		worker.GET("/ws", gin.WrapH(h.ws))
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(h.proxyAsset)

	return r
}
