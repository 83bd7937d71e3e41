package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/gigledger/internal/service"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "plain date",
			raw:  "2020-08-15",
			want: time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			raw:  "2020-08-15T19:11:26Z",
			want: time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC),
		},
		{
			name: "datetime without zone",
			raw:  "2020-08-15T19:11:26",
			want: time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC),
		},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "not-a-date", wantErr: true},
		{name: "wrong order", raw: "15-08-2020", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q): %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 0},
		{raw: "5", want: 5},
		{raw: " 3 ", want: 3},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%q", tt.raw), func(t *testing.T) {
			got, err := parseLimit(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseLimit(%q) = %d, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLimit(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHandleErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{log: zerolog.Nop()}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"forbidden", service.ErrPermissionDenied, http.StatusForbidden},
		{"conflict", service.ErrConflict, http.StatusConflict},
		{"invalid input", service.ErrInvalidInput, http.StatusBadRequest},
		{"integrity", service.ErrIntegrity, http.StatusInternalServerError},
		{"wrapped forbidden", fmt.Errorf("%w: insufficient balance", service.ErrPermissionDenied), http.StatusForbidden},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			h.handleError(c, tt.err)
			if recorder.Code != tt.want {
				t.Errorf("status = %d, want %d", recorder.Code, tt.want)
			}
		})
	}
}

func TestDateOnlyWidening(t *testing.T) {
	start, err := parseDate("2020-08-01")
	if err != nil {
		t.Fatal(err)
	}
	end, err := parseDate("2020-08-15")
	if err != nil {
		t.Fatal(err)
	}
	if !dateOnly(end) {
		t.Fatal("plain date should report as date-only")
	}

	widened := end.Add(24*time.Hour - time.Nanosecond)
	paidLateThatDay := time.Date(2020, 8, 15, 23, 59, 59, 0, time.UTC)
	if paidLateThatDay.Before(start) || paidLateThatDay.After(widened) {
		t.Error("payment late on the end date fell outside the widened window")
	}

	withTime, err := parseDate("2020-08-15T10:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if dateOnly(withTime) {
		t.Error("timestamp with a clock component must not widen")
	}
}
