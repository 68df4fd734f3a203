package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/ogradyo/restaurant-simulator/internal/adapters/in/http"
	"github.com/ogradyo/restaurant-simulator/internal/adapters/out/external"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/messaging"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/processing"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/menu"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
)

type deliveryRecorder struct {
	destinations []string
}

func (r *deliveryRecorder) Deliver(_ message.Message, destination, _ string, _ map[string]string) error {
	r.destinations = append(r.destinations, destination)
	return nil
}

func newTestServer(t *testing.T) (*echo.Echo, *deliveryRecorder) {
	t.Helper()

	catalog, err := menu.NewStandardCatalog()
	require.NoError(t, err)
	processor, err := processing.NewProcessor(catalog)
	require.NoError(t, err)
	router, err := messaging.NewRouterBuilder(slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithKitchenDisplay().
		Build()
	require.NoError(t, err)
	recorder := &deliveryRecorder{}
	router.RegisterHandler(recorder)

	e := echo.New()
	server := httpadapter.NewServer(processor, catalog, messaging.NewGenerator(), router, external.NewManager())
	server.RegisterRoutes(e)
	return e, recorder
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func createOrder(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec, body := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders", `{
		"order_type": "drive_thru",
		"customer": {"name": "Alice Johnson"},
		"items": [{"menu_item_id": "waffle_fries", "quantity": 1}]
	}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	orderID := body["order"].(map[string]any)["order_id"].(string)
	require.NotEmpty(t, orderID)
	return orderID
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec, body := doRequest(t, e, nethttp.MethodGet, "/health", "")

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create a drive-thru order with computed totals", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, body := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders", `{
			"order_type": "drive_thru",
			"customer": {"name": "Alice Johnson", "loyalty_member": true},
			"items": [{"menu_item_id": "waffle_fries", "quantity": 1}]
		}`)

		require.Equal(t, nethttp.StatusCreated, rec.Code)
		o := body["order"].(map[string]any)
		assert.Equal(t, "drive_thru", o["order_type"])
		assert.Equal(t, "pending", o["status"])
		totals := o["totals"].(map[string]any)
		assert.InDelta(t, 2.79, totals["subtotal"].(float64), 0.001)
		assert.InDelta(t, 3.01, totals["total_amount"].(float64), 0.001)
		assert.Equal(t, float64(1), body["queue_position"].(float64))
	})

	t.Run("should assign an external id to delivery orders", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, body := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders", `{
			"order_type": "uber_eats",
			"customer": {"name": "Bob Smith"},
			"items": [{"menu_item_id": "chicken_sandwich", "quantity": 1}]
		}`)

		require.Equal(t, nethttp.StatusCreated, rec.Code)
		o := body["order"].(map[string]any)
		assert.Regexp(t, `^UE\d{6}$`, o["external_order_id"])
	})

	t.Run("should reject an unknown order type", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, _ := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders", `{
			"order_type": "teleport",
			"customer": {"name": "Bob Smith"}
		}`)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown menu item", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, _ := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders", `{
			"order_type": "dine_in",
			"customer": {"name": "Bob Smith"},
			"items": [{"menu_item_id": "mystery_item", "quantity": 1}]
		}`)

		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})
}

func TestServer_OrderLifecycle(t *testing.T) {
	t.Run("should walk an order from pending to completed", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		for _, step := range []struct {
			action string
			status string
		}{
			{"confirm", "confirmed"},
			{"prepare", "preparing"},
			{"ready", "ready"},
			{"finalize", "completed"},
		} {
			rec, body := doRequest(t, e, nethttp.MethodPost,
				fmt.Sprintf("/api/v1/orders/%s/%s", id, step.action), "")
			require.Equal(t, nethttp.StatusOK, rec.Code, step.action)
			assert.Equal(t, step.status, body["order"].(map[string]any)["status"])
		}
	})

	t.Run("should answer conflict for an invalid transition", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, _ := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/ready", "")

		assert.Equal(t, nethttp.StatusConflict, rec.Code)
	})

	t.Run("should answer not found for an unknown order", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, _ := doRequest(t, e, nethttp.MethodPost,
			"/api/v1/orders/00000000-0000-0000-0000-000000000001/confirm", "")

		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})
}

func TestServer_OrderItems(t *testing.T) {
	t.Run("should add and remove lines while the order is open", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, body := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/items",
			`{"menu_item_id": "chicken_sandwich", "quantity": 2}`)
		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Len(t, body["order"].(map[string]any)["items"].([]any), 2)

		rec, body = doRequest(t, e, nethttp.MethodDelete, "/api/v1/orders/"+id+"/items/0", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Len(t, body["order"].(map[string]any)["items"].([]any), 1)
	})

	t.Run("should refuse line changes once preparation started", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)
		doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/confirm", "")
		doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/prepare", "")

		rec, _ := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/items",
			`{"menu_item_id": "chicken_sandwich", "quantity": 1}`)

		assert.Equal(t, nethttp.StatusConflict, rec.Code)
	})
}

func TestServer_Tip(t *testing.T) {
	t.Run("should recompute the total", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, body := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/tip",
			`{"amount": 2.00}`)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		totals := body["order"].(map[string]any)["totals"].(map[string]any)
		assert.InDelta(t, 5.01, totals["total_amount"].(float64), 0.001)
	})

	t.Run("should reject a negative tip", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, _ := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/tip",
			`{"amount": -1.00}`)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestServer_Queries(t *testing.T) {
	t.Run("should filter orders by status", func(t *testing.T) {
		e, _ := newTestServer(t)
		createOrder(t, e)
		id := createOrder(t, e)
		doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/confirm", "")

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders?status=confirmed", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0]["order"].(map[string]any)["order_id"])
	})

	t.Run("should report wait estimates", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, body := doRequest(t, e, nethttp.MethodGet, "/api/v1/orders/"+id+"/wait", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["queue_position"].(float64))
		// waffle fries: 3 min prep + 2 buffer, head of queue
		assert.Equal(t, float64(5), body["estimated_wait_minutes"].(float64))
	})

	t.Run("should expose processor statistics", func(t *testing.T) {
		e, _ := newTestServer(t)
		createOrder(t, e)

		rec, body := doRequest(t, e, nethttp.MethodGet, "/api/v1/statistics", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["total_orders"].(float64))
	})
}

func TestServer_Menu(t *testing.T) {
	t.Run("should list the full catalog", func(t *testing.T) {
		e, _ := newTestServer(t)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/menu", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 23)
	})

	t.Run("should search by name", func(t *testing.T) {
		e, _ := newTestServer(t)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/menu?q=waffle", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.NotEmpty(t, list)
		for _, item := range list {
			assert.Contains(t, strings.ToLower(item["name"].(string)+item["description"].(string)), "waffle")
		}
	})
}

func TestServer_Messages(t *testing.T) {
	t.Run("should generate and route a kitchen message", func(t *testing.T) {
		e, recorder := newTestServer(t)
		id := createOrder(t, e)

		rec, body := doRequest(t, e, nethttp.MethodPost,
			"/api/v1/orders/"+id+"/messages?format=kitchen", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, "kitchen", body["format"])
		assert.Equal(t, []any{"kitchen_display"}, body["delivered_routes"].([]any))
		assert.Equal(t, []string{"kitchen_orders"}, recorder.destinations)
	})

	t.Run("should reject an unsupported format", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, _ := doRequest(t, e, nethttp.MethodPost,
			"/api/v1/orders/"+id+"/messages?format=yaml", "")

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should register a delivery order with its platform", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec, body := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders", `{
			"order_type": "doordash",
			"customer": {"name": "Bob Smith"},
			"items": [{"menu_item_id": "chicken_sandwich", "quantity": 1}]
		}`)
		require.Equal(t, nethttp.StatusCreated, rec.Code)
		id := body["order"].(map[string]any)["order_id"].(string)

		rec, body = doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/external", "")

		require.Equal(t, nethttp.StatusCreated, rec.Code)
		assert.Equal(t, "acsp_789", body["restaurant_id"])
		assert.Regexp(t, `^DD\d{6}$`, body["external_order_id"])
		assert.Equal(t, "pending", body["status"])
		assert.InDelta(t, 5.17, body["total_amount"].(float64), 0.001)

		rec, body = doRequest(t, e, nethttp.MethodGet, "/api/v1/external/statistics", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["doordash"].(map[string]any)["total_orders"].(float64))
	})

	t.Run("should reject external registration for in-house orders", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)

		rec, _ := doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/external", "")

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should expose route statistics", func(t *testing.T) {
		e, _ := newTestServer(t)
		id := createOrder(t, e)
		doRequest(t, e, nethttp.MethodPost, "/api/v1/orders/"+id+"/messages?format=json", "")

		rec, body := doRequest(t, e, nethttp.MethodGet, "/api/v1/routes/statistics", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		stats := body["kitchen_display"].(map[string]any)
		assert.Equal(t, float64(1), stats["delivered_count"].(float64))
	})
}
