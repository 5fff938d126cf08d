package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"church_admin/internal/stats"
)

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/signup", map[string]interface{}{
		"firstName": "Kwame", "lastName": "Admin", "phone": "0207000000", "password": "pw", "role": "admin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("admin signup: status = %d: %s", w.Code, w.Body.String())
	}
	var resp authResponse
	decode(t, w, &resp)
	return resp.Token
}

func doAuthedGet(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, &bytes.Buffer{})
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatsRequireAdmin(t *testing.T) {
	r := setupRouter(t)

	if w := doAuthedGet(t, r, "/stats/financial", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", w.Code)
	}

	recordPayment(t, r, map[string]interface{}{
		"memberId": 1, "type": "Tithe", "amount": 50.0, "method": "Cash",
	})

	w := doJSON(t, r, http.MethodPost, "/auth/signup", map[string]interface{}{
		"firstName": "Esi", "lastName": "Owusu", "phone": "0551000000", "password": "pw",
	})
	var member authResponse
	decode(t, w, &member)

	// a valid non-admin token gets 403 and no aggregate data
	got := doAuthedGet(t, r, "/stats/financial", member.Token)
	if got.Code != http.StatusForbidden {
		t.Fatalf("member token: status = %d, want 403", got.Code)
	}
	if strings.Contains(got.Body.String(), "total") {
		t.Fatalf("forbidden response leaked the stats payload: %s", got.Body.String())
	}

	if w := doAuthedGet(t, r, "/stats/financial", adminToken(t, r)); w.Code != http.StatusOK {
		t.Fatalf("admin token: status = %d, want 200", w.Code)
	}
}

func TestFinancialStats(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, r)

	// the canonical grouping example: {A:100, B:200, A:50}
	for _, p := range []struct {
		typ    string
		amount float64
	}{{"A", 100}, {"B", 200}, {"A", 50}} {
		recordPayment(t, r, map[string]interface{}{
			"memberId": 1, "type": p.typ, "amount": p.amount, "method": "Cash",
		})
	}

	w := doAuthedGet(t, r, "/stats/financial", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var got struct {
		Total  float64                    `json:"total"`
		Count  int                        `json:"count"`
		ByType map[string]stats.Breakdown `json:"byType"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 350 || got.Count != 3 {
		t.Fatalf("total = %v, count = %d", got.Total, got.Count)
	}
	if got.ByType["A"] != (stats.Breakdown{Count: 2, Total: 150}) {
		t.Errorf("byType[A] = %+v", got.ByType["A"])
	}
	if got.ByType["B"] != (stats.Breakdown{Count: 1, Total: 200}) {
		t.Errorf("byType[B] = %+v", got.ByType["B"])
	}
}

func TestAssetStats(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, r)

	doJSON(t, r, http.MethodPost, "/assets", map[string]interface{}{
		"name": "Projector", "purchaseValue": 1000.0, "currentValue": 800.0, "quantity": 2, "condition": "Good",
	})
	doJSON(t, r, http.MethodPost, "/assets", map[string]interface{}{
		"name": "Canopy", "purchaseValue": 300.0, "condition": "Fair",
	})

	w := doAuthedGet(t, r, "/stats/assets", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var got struct {
		TotalQuantity int            `json:"totalQuantity"`
		CurrentValue  float64        `json:"currentValue"`
		PurchaseValue float64        `json:"purchaseValue"`
		ByCondition   map[string]int `json:"byCondition"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalQuantity != 3 {
		t.Errorf("totalQuantity = %d, want 3", got.TotalQuantity)
	}
	// canopy's currentValue defaulted to its purchaseValue
	if got.CurrentValue != 1900 || got.PurchaseValue != 2300 {
		t.Errorf("values = %v/%v, want 1900/2300", got.CurrentValue, got.PurchaseValue)
	}
	if got.ByCondition["Good"] != 2 || got.ByCondition["Fair"] != 1 {
		t.Errorf("byCondition = %v", got.ByCondition)
	}
}

func TestAttendanceStats(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, r)

	// two check-ins dated today fall inside the current week
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/attendance", map[string]interface{}{
			"memberId": i + 1, "service": "Sunday Service",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("check-in: status = %d: %s", w.Code, w.Body.String())
		}
	}

	w := doAuthedGet(t, r, "/stats/attendance", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var got struct {
		Total      int     `json:"total"`
		ThisWeek   int     `json:"thisWeek"`
		GrowthRate float64 `json:"growthRate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 2 || got.ThisWeek != 2 {
		t.Fatalf("total/thisWeek = %d/%d, want 2/2", got.Total, got.ThisWeek)
	}
	if got.GrowthRate != 100 {
		t.Errorf("growthRate = %v, want 100 against an empty previous week", got.GrowthRate)
	}
}
