//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// --- Бенчмарки ---

// GET /cart: голый роутер против полного пайплайна из NewRouter.
func BenchmarkHTTP_GetCart(b *testing.B) {
	h := newBenchHandler(benchCart(5))

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/cart", http.StatusOK)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/cart", http.StatusOK)
	})
}

// Потолок без маршалинга: та же сводка, заранее закодированная.
func BenchmarkHTTP_GetCart_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(domain.NewCartSummary(benchCart(5)))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/cart", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/cart", http.StatusOK)
}

// Размер корзины: 10/50/99 позиций.
func BenchmarkHTTP_Checkout(b *testing.B) {
	for _, n := range []int{10, 50, 99} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := newBenchHandler(benchCart(n))
			benchServeGET(b, makeLeanRouter(h), "/checkout", http.StatusOK)
		})
	}
}

// Запрос ресурса статики через NoRoute и контроллер (ответ из "кэша").
func BenchmarkHTTP_ProxyAsset(b *testing.B) {
	h := newBenchHandler(benchCart(1))
	r := makeFullRouter(h)
	benchServeGET(b, r, "/static/css/style.css", http.StatusOK)
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type stubCart struct{ cart domain.Cart }

func (s stubCart) Summary(context.Context) (domain.CartSummary, error) { return domain.NewCartSummary(s.cart), nil }
func (s stubCart) AddItem(context.Context, domain.ItemRef, int) (domain.CartSummary, error) {
	return domain.NewCartSummary(s.cart), nil
}
func (s stubCart) SetQuantity(context.Context, int, int) (domain.CartSummary, error) {
	return domain.NewCartSummary(s.cart), nil
}
func (s stubCart) RemoveItem(context.Context, int) (domain.CartSummary, error) {
	return domain.NewCartSummary(s.cart), nil
}
func (s stubCart) Clear(context.Context) error { return nil }

type stubCheckout struct{ cart domain.Cart }

func (s stubCheckout) Summary(context.Context) (domain.CheckoutSummary, error) {
	return domain.NewCheckoutSummary(s.cart), nil
}
func (s stubCheckout) Submit(context.Context, domain.Customer) (domain.OrderReceipt, error) {
	return domain.OrderReceipt{}, nil
}
func (s stubCheckout) LastOrder(context.Context) (domain.LastOrder, bool, error) {
	return domain.LastOrder{}, false, nil
}

type stubMenu struct{}

func (stubMenu) Sections(context.Context) ([]domain.MenuSection, error) { return nil, nil }

// stubWorker — всегда отдаёт один и тот же закэшированный ответ.
type stubWorker struct{}

func (stubWorker) Status() domain.WorkerStatus { return domain.WorkerStatus{} }
func (stubWorker) Install(context.Context, domain.Manifest) error { return nil }
func (stubWorker) HandleMessage(context.Context, domain.ControlMessage) error { return nil }
func (stubWorker) Fetch(context.Context, *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/css"}, "X-Cache": []string{"HIT"}},
		Body:       io.NopCloser(strings.NewReader("body{margin:0}")),
	}, nil
}

// --- функции-помощники ---

func benchCart(n int) domain.Cart {
	cart := make(domain.Cart, 0, n)
	for i := 1; i <= n; i++ {
		cart = append(cart, domain.LineItem{
			MenuItemID: i,
			ItemName:   "item-" + strconv.Itoa(i),
			UnitPrice:  domain.MustMoney("3.25"),
			Quantity:   2,
		})
	}
	return cart
}

func newBenchHandler(cart domain.Cart) *Handler {
	static, _ := url.Parse("http://static:8000")
	return NewHandler(Services{
		Cart:     stubCart{cart: cart},
		Checkout: stubCheckout{cart: cart},
		Menu:     stubMenu{},
		Worker:   stubWorker{},
	}, static, nil, nopLogger{})
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger
	r.GET("/cart", h.getCart)
	r.GET("/checkout", h.getCheckout)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string, want int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != want {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
