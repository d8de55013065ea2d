package orderControllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	orderControllers "github.com/Annamalai555/mernstack-project/controllers/order"
	"github.com/Annamalai555/mernstack-project/models"
)

type fakeOrderStore struct {
	orders []models.Order
}

func (f *fakeOrderStore) InsertOrder(_ context.Context, o *models.Order) error {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now()
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderStore) FindOrdersByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func setupOrderRouter(f *fakeOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", orderControllers.PlaceOrder(f))
	r.GET("/api/orders/:userId", orderControllers.GetOrders(f))
	return r
}

func TestPlaceOrder(t *testing.T) {
	userID := primitive.NewObjectID()
	f := &fakeOrderStore{}
	router := setupOrderRouter(f)

	t.Run("stores the order with the client-supplied total", func(t *testing.T) {
		body, _ := json.Marshal(gin.H{
			"userId": userID.Hex(),
			"items": []models.CartItem{
				{ProductID: primitive.NewObjectID(), Title: "Chair", Price: 49.5, Quantity: 2},
			},
			"address":     "12 Main St",
			"paymentType": "cod",
			"total":       99.0,
		})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var order models.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, 99.0, order.Total)
		assert.Equal(t, "cod", order.PaymentType)
		assert.False(t, order.CreatedAt.IsZero())
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"userId":"`+userID.Hex()+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrders(t *testing.T) {
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	f := &fakeOrderStore{}
	router := setupOrderRouter(f)

	for i := 0; i < 2; i++ {
		require.NoError(t, f.InsertOrder(context.Background(), &models.Order{UserID: userID, Total: float64(i)}))
	}
	require.NoError(t, f.InsertOrder(context.Background(), &models.Order{UserID: other, Total: 7}))

	t.Run("returns only the caller's orders", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/"+userID.Hex(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var orders []models.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.Len(t, orders, 2)
	})

	t.Run("user with no orders gets an empty array", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})

	t.Run("malformed userId rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/xyz", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
