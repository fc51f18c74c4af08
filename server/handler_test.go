package server

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gym-allocator/allocation/domain"
	"gym-allocator/allocation/infra"
)

func testProfile() infra.Profile {
	return infra.Profile{
		Preferences: 2,
		EmailDomain: "",
		Slots:       map[string]int{"X": 1, "Y": 1},
	}
}

func postCSV(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "http://example/allocate", strings.NewReader(body))
	r.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandler_AnnotatesUploadedCSV(t *testing.T) {
	h := Handler(Options{Profile: testProfile()})

	w := postCSV(t, h, "Name,SLOT PREFERENCE : 1\nana,X\nbia,X\n")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv response, got %q", ct)
	}
	if w.Header().Get("X-Allocation-Run") == "" {
		t.Fatalf("expected X-Allocation-Run header to be set")
	}
	if got := w.Header().Get("X-Allocation-Rows"); got != "2" {
		t.Fatalf("expected X-Allocation-Rows=2, got %q", got)
	}

	rows, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("response is not valid csv: %v", err)
	}
	if rows[1][2] != "X" || rows[2][2] != string(domain.NoSlotAllocated) {
		t.Fatalf("unexpected outcomes: %v", rows)
	}
}

func TestHandler_FreshCapacityPerRequest(t *testing.T) {
	h := Handler(Options{Profile: testProfile()})
	body := "SLOT PREFERENCE : 1\nX\n"

	// dois uploads seguidos: cada um disputa uma tabela nova
	for i := 0; i < 2; i++ {
		w := postCSV(t, h, body)
		rows, err := csv.NewReader(w.Body).ReadAll()
		if err != nil {
			t.Fatalf("response is not valid csv: %v", err)
		}
		if rows[1][1] != "X" {
			t.Fatalf("expected allocation on request %d, got %v", i, rows)
		}
	}
}

func TestHandler_RejectsNonPost(t *testing.T) {
	h := Handler(Options{Profile: testProfile()})

	r := httptest.NewRequest(http.MethodGet, "http://example/allocate", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestHandler_BadCSVIsA400NotAPartialResponse(t *testing.T) {
	h := Handler(Options{Profile: testProfile()})

	// aspas quebradas no meio do corpo: a passada falha, nada anotado sai
	w := postCSV(t, h, "Name,SLOT PREFERENCE : 1\nana,X\n\"broken\n")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "ana") {
		t.Fatalf("expected no partial annotated output, got %q", w.Body.String())
	}
}

func TestHandler_MirrorsStats(t *testing.T) {
	stats := infra.NewMemoryStats()
	h := Handler(Options{Profile: testProfile(), Stats: stats})

	postCSV(t, h, "SLOT PREFERENCE : 1\nX\nX\n")

	total := stats.Total()
	if total.Allocated != 1 || total.Unallocated != 1 {
		t.Fatalf("unexpected stats totals: %+v", total)
	}
}
