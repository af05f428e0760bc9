package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"recruit-kit/internal/calc"
)

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h(rec, req)
	return rec
}

func TestBDMCommissionHandler(t *testing.T) {
	a := NewAPI(Deps{Config: testConfig()})

	t.Run("json", func(t *testing.T) {
		rec := postJSON(t, a.BDMCommissionHandler, "/api/calc/commission/bdm", `{"revenue":1500000,"gp":0.35}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var got calc.BDMResult
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		if got.Tier != "Tier 2" || got.CommissionableRevenue != 500_000 || got.Rate != 0.04 || got.Commission != 20_000 || got.Bonus != 0 {
			t.Errorf("result = %+v", got)
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := postJSON(t, a.BDMCommissionHandler, "/api/calc/commission/bdm?format=xlsx", `{"revenue":1500000,"gp":0.35}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != calc.XLSXContentType {
			t.Errorf("Content-Type = %q", ct)
		}
		if !strings.Contains(rec.Header().Get("Content-Disposition"), "bdm-commission.xlsx") {
			t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
			t.Error("body is not a zip package")
		}
	})

	t.Run("bad json", func(t *testing.T) {
		rec := postJSON(t, a.BDMCommissionHandler, "/api/calc/commission/bdm", `{`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		rec := postJSON(t, a.BDMCommissionHandler, "/api/calc/commission/bdm", `{"revenue":-1,"gp":0.3}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if resp := decodeError(t, rec); resp.Type != ValidationError {
			t.Errorf("type = %s", resp.Type)
		}
	})
}

func TestCalculatorHandlers(t *testing.T) {
	a := NewAPI(Deps{Config: testConfig()})

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    string
		status  int
	}{
		{"contractor", a.ContractorHandler, `{"mode":"gp","rateType":"hourly","engagement":"company","payRate":80,"chargeRate":100}`, http.StatusOK},
		{"contractor bad gp", a.ContractorHandler, `{"mode":"charge","payRate":80,"targetGP":1.5}`, http.StatusBadRequest},
		{"fte", a.FTEHandler, `{"mode":"fee","baseSalary":100000,"feePercent":0.2}`, http.StatusOK},
		{"recruiter", a.RecruiterCommissionHandler, `{"quarterlyGP":150000,"baseSalary":80000}`, http.StatusOK},
		{"recruiter bad salary", a.RecruiterCommissionHandler, `{"quarterlyGP":150000,"baseSalary":0}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, tt.handler, "/api/calc", tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.FTEHandler(rec, httptest.NewRequest(http.MethodGet, "/api/calc/fte", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d", rec.Code)
		}
		if resp := decodeError(t, rec); resp.Type != ValidationError || resp.Error != "method GET not allowed" {
			t.Errorf("error = %+v", resp)
		}
	})
}

func TestWorkdaysHandler(t *testing.T) {
	t.Run("uses the holiday source and default country", func(t *testing.T) {
		src := &fakeHolidays{}
		a := NewAPI(Deps{Config: testConfig(), Holidays: src})

		rec := postJSON(t, a.WorkdaysHandler, "/api/calc/workdays", `{"start":"2025-01-01","end":"2025-01-10","dailyRate":500}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var got calc.WorkdaysResult
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		if src.country != "AU" || !reflect.DeepEqual(src.years, []int{2025}) {
			t.Errorf("fetched %v for %q", src.years, src.country)
		}
		if got.CalendarDays != 10 || got.WeekendDays != 2 || got.WorkingDays != 7 || got.Earnings != 3500 {
			t.Errorf("result = %+v", got)
		}
		if len(got.Holidays) != 1 || got.FallbackUsed {
			t.Errorf("holidays = %+v, fallback = %v", got.Holidays, got.FallbackUsed)
		}
	})

	t.Run("built-in list without a source", func(t *testing.T) {
		a := NewAPI(Deps{Config: testConfig()})
		rec := postJSON(t, a.WorkdaysHandler, "/api/calc/workdays", `{"start":"2025-12-22","end":"2025-12-31"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var got calc.WorkdaysResult
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		// Christmas (Thu) and Boxing Day (Fri) fall on weekdays in 2025.
		if !got.FallbackUsed || got.WorkingDays != 6 {
			t.Errorf("result = %+v", got)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		a := NewAPI(Deps{Config: testConfig(), Holidays: &fakeHolidays{}})
		rec := postJSON(t, a.WorkdaysHandler, "/api/calc/workdays", `{"start":"2025-02-01","end":"2025-01-01"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d", rec.Code)
		}
	})
}
