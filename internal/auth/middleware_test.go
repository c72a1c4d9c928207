package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	tm := newTestManager(t, TokenTTL)

	valid, err := tm.Issue(7, "b@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	expiredTM := newTestManager(t, -time.Hour)
	expired, err := expiredTM.Issue(7, "b@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized},
		{"bearer with empty token", "Bearer ", http.StatusUnauthorized},
		{"malformed token", "Bearer not-a-token", http.StatusForbidden},
		{"expired token", "Bearer " + expired, http.StatusForbidden},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIdentity Identity
			var reached bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				gotIdentity, _ = IdentityFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Middleware(tm)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !reached {
					t.Fatal("handler not reached for valid token")
				}
				if gotIdentity.UserID != 7 || gotIdentity.Email != "b@x.com" {
					t.Fatalf("unexpected identity: %+v", gotIdentity)
				}
			} else if reached {
				t.Fatal("handler reached despite rejection")
			}
		})
	}
}

func TestIdentityFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := IdentityFromContext(req.Context()); ok {
		t.Fatal("expected no identity on a bare context")
	}
}
