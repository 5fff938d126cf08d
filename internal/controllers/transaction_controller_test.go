package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"church_admin/internal/models"
)

func recordPayment(t *testing.T, r *gin.Engine, body map[string]interface{}) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/transactions", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("record payment: status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)
	return created.ID
}

func TestRecordTransactionRoundTrip(t *testing.T) {
	r := setupRouter(t)

	id := recordPayment(t, r, map[string]interface{}{
		"memberId": 1, "member": "Ama Mensah", "phone": "0241000000",
		"type": "First Fruit", "amount": 150.0, "method": "MoMo",
		"month": "August", "paymentDate": "2026-08-28", "date": "2026-08-28", "time": "09:30",
	})
	if id == 0 {
		t.Fatal("no id returned")
	}

	var list struct {
		Data []models.Transaction `json:"data"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/transactions", nil), &list)
	if len(list.Data) != 1 {
		t.Fatalf("list = %+v", list.Data)
	}
	tx := list.Data[0]
	if tx.ID != id || tx.Amount != 150.0 || tx.Type != "First Fruit" || tx.Method != "MoMo" {
		t.Fatalf("round trip mismatch: %+v", tx)
	}
	if tx.Status != "Completed" {
		t.Fatalf("status = %q, want Completed default", tx.Status)
	}
}

func TestListTransactionsNewestFirst(t *testing.T) {
	r := setupRouter(t)

	first := recordPayment(t, r, map[string]interface{}{
		"memberId": 1, "type": "Tithe", "amount": 10.0, "method": "Cash",
	})
	second := recordPayment(t, r, map[string]interface{}{
		"memberId": 1, "type": "Offering", "amount": 20.0, "method": "Bank",
	})

	var list struct {
		Data []models.Transaction `json:"data"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/transactions", nil), &list)
	if len(list.Data) != 2 || list.Data[0].ID != second || list.Data[1].ID != first {
		t.Fatalf("order = %+v", list.Data)
	}
}

func TestRecordTransactionValidation(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing amount", map[string]interface{}{"memberId": 1, "type": "Tithe", "method": "Cash"}},
		{"zero amount", map[string]interface{}{"memberId": 1, "type": "Tithe", "amount": 0.0, "method": "Cash"}},
		{"unknown method", map[string]interface{}{"memberId": 1, "type": "Tithe", "amount": 5.0, "method": "Cheque"}},
		{"missing member", map[string]interface{}{"type": "Tithe", "amount": 5.0, "method": "Cash"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/transactions", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	var list struct {
		Data []models.Transaction `json:"data"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/transactions", nil), &list)
	if len(list.Data) != 0 {
		t.Fatalf("rejected payments must not reach storage: %+v", list.Data)
	}
}
