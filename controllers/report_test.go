package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func reportRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	rc := NewReportController(db)
	sc := NewSaleController(db)
	ec := NewExpenseController(db)
	r.GET("/reports/summary", rc.GetFinancialSummary)
	r.POST("/sales", sc.CreateSale)
	r.POST("/expenses", ec.CreateExpense)
	return r
}

func TestFinancialSummaryDerivesProfit(t *testing.T) {
	db := setupTestDB(t)
	r := reportRouter(db)
	client := seedClient(t, db, "Paulo", "11988880004")
	service := seedService(t, db, "Haircut", 22.00)
	product := seedProduct(t, db, "Pomade", 8.00, 10)

	body := fmt.Sprintf(`{"clientId":"%s","kind":"service","itemId":"%s","paymentMethod":"cash"}`, client.ID, service.ID)
	if w := performRequest(r, http.MethodPost, "/sales", body); w.Code != http.StatusCreated {
		t.Fatalf("service sale: expected 201 got %d", w.Code)
	}
	body = fmt.Sprintf(`{"kind":"product","itemId":"%s","quantity":2,"paymentMethod":"card"}`, product.ID)
	if w := performRequest(r, http.MethodPost, "/sales", body); w.Code != http.StatusCreated {
		t.Fatalf("product sale: expected 201 got %d", w.Code)
	}

	body = fmt.Sprintf(`{"description":"Razor blades","category":"supplies","amount":12.50,"date":"%s"}`, utils.Today())
	if w := performRequest(r, http.MethodPost, "/expenses", body); w.Code != http.StatusCreated {
		t.Fatalf("expense: expected 201 got %d", w.Code)
	}

	w := performRequest(r, http.MethodGet, "/reports/summary?start="+utils.Today()+"&end="+utils.Today(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var summary FinancialSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if summary.TotalSales != 38.00 {
		t.Fatalf("expected sales 38.00 got %.2f", summary.TotalSales)
	}
	if summary.TotalExpenses != 12.50 {
		t.Fatalf("expected expenses 12.50 got %.2f", summary.TotalExpenses)
	}
	if summary.Profit != 25.50 {
		t.Fatalf("expected profit 25.50 got %.2f", summary.Profit)
	}
	if summary.SaleCount != 2 {
		t.Fatalf("expected 2 sales got %d", summary.SaleCount)
	}
	if len(summary.TopItems) != 2 {
		t.Fatalf("expected 2 top items got %d", len(summary.TopItems))
	}
	if summary.TopItems[0].Name != "Haircut" || summary.TopItems[0].Revenue != 22.00 {
		t.Fatalf("unexpected top item: %+v", summary.TopItems[0])
	}
	if len(summary.TopClients) != 1 || summary.TopClients[0].Spent != 22.00 {
		t.Fatalf("unexpected top clients: %+v", summary.TopClients)
	}
}

func TestFinancialSummaryEmptyRange(t *testing.T) {
	db := setupTestDB(t)
	r := reportRouter(db)

	w := performRequest(r, http.MethodGet, "/reports/summary?start=2020-01-01&end=2020-01-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var summary FinancialSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.TotalSales != 0 || summary.TotalExpenses != 0 || summary.Profit != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestFinancialSummaryRejectsBadRange(t *testing.T) {
	db := setupTestDB(t)
	r := reportRouter(db)

	w := performRequest(r, http.MethodGet, "/reports/summary?start=01-01-2020&end=2020-01-31", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
