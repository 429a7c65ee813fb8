package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

func tracedRequest(method, target string, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), values.ContextTracingKey, tracing.Context{
		RequestID:     "test-request",
		RequestSource: "test",
	})
	return r.WithContext(ctx)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	api, mock := newMockAPI(t)

	mock.ExpectExec(`UPDATE auth_tokens`).
		WithArgs("some-refresh-token").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	r := tracedRequest(http.MethodPost, "/auth/logout", `{"refresh_token":"some-refresh-token"}`)
	resp := api.Logout(nil, r)

	if resp.Status != values.Success {
		t.Errorf("status = %q; want %q", resp.Status, values.Success)
	}
	expectationsMet(t, mock)
}

func TestLogoutRequiresRefreshToken(t *testing.T) {
	api, mock := newMockAPI(t)

	r := tracedRequest(http.MethodPost, "/auth/logout", `{}`)
	resp := api.Logout(nil, r)

	if resp.Status != values.BadRequestBody {
		t.Errorf("status = %q; want %q", resp.Status, values.BadRequestBody)
	}
	expectationsMet(t, mock)
}
