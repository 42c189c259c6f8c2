package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"barberpro-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func productRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	pc := NewProductController(db)
	r.POST("/products", pc.CreateProduct)
	r.GET("/products", pc.GetProducts)
	r.GET("/products/low-stock", pc.GetLowStockProducts)
	r.GET("/products/:id", pc.GetProduct)
	r.PUT("/products/:id", pc.UpdateProduct)
	r.PUT("/products/:id/stock", pc.AdjustStock)
	r.DELETE("/products/:id", pc.DeleteProduct)
	return r
}

func TestAdjustStockAppliesDelta(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db)
	product := seedProduct(t, db, "Shampoo", 12.00, 4)

	w := performRequest(r, http.MethodPut, "/products/"+product.ID.String()+"/stock", `{"delta":6,"reason":"restock"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var got models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Stock != 10 {
		t.Fatalf("expected stock 10 got %d", got.Stock)
	}

	w = performRequest(r, http.MethodPut, "/products/"+product.ID.String()+"/stock", `{"delta":-3,"reason":"breakage"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Stock != 7 {
		t.Fatalf("expected stock 7 got %d", got.Stock)
	}
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db)

	w := performRequest(r, http.MethodPut, "/products/6ba7b810-9dad-11d1-80b4-00c04fd430c8/stock", `{"delta":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestLowStockListing(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db)
	seedProduct(t, db, "Plenty", 10.00, 50)
	low := seedProduct(t, db, "Scarce", 10.00, 2)

	inactive := seedProduct(t, db, "Retired", 10.00, 0)
	db.Model(&inactive).Update("is_active", false)

	w := performRequest(r, http.MethodGet, "/products/low-stock", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 low-stock product got %d", len(products))
	}
	if products[0].ID != low.ID {
		t.Fatalf("expected %s got %s", low.Name, products[0].Name)
	}
}

func TestDeleteProductDeactivates(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db)
	product := seedProduct(t, db, "Wax", 14.00, 3)

	w := performRequest(r, http.MethodDelete, "/products/"+product.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got models.Product
	if err := db.First(&got, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("product row gone: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected product to be deactivated")
	}

	// Default listing hides it, ?all=true still shows it
	w = performRequest(r, http.MethodGet, "/products", "")
	var visible []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &visible); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("expected empty listing got %d", len(visible))
	}

	w = performRequest(r, http.MethodGet, "/products?all=true", "")
	var all []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 product with all=true got %d", len(all))
	}
}

func TestUpdateProductCannotTouchStock(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db)
	product := seedProduct(t, db, "Oil", 20.00, 9)

	w := performRequest(r, http.MethodPut, "/products/"+product.ID.String(), `{"salePrice":25.00,"stock":999}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var got models.Product
	if err := db.First(&got, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.SalePrice != 25.00 {
		t.Fatalf("expected sale price 25.00 got %.2f", got.SalePrice)
	}
	if got.Stock != 9 {
		t.Fatalf("stock changed through update: %d", got.Stock)
	}
}
