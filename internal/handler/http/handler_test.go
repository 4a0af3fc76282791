package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/mock"
	"github.com/goldram69/gemdjsso/internal/service"
	"github.com/goldram69/gemdjsso/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

const testHookSecret = "hook-secret"

// ── Helpers ──

type testServices struct {
	auth    *mock.MockAuthService
	sync    *mock.MockProfileSyncService
	sso     *mock.MockSSOService
	appInfo *mock.MockAppInfoService
}

func testHandlerConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			HookSecret:    testHookSecret,
			TokenDuration: time.Hour,
		},
		Session: config.Session{
			TTL:        10 * time.Minute,
			CookieName: "gemdjsso_session",
		},
	}
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		sync:    mock.NewMockProfileSyncService(ctrl),
		sso:     mock.NewMockSSOService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:        svcs.auth,
		ProfileSyncService: svcs.sync,
		SSOService:         svcs.sso,
		AppInfoService:     svcs.appInfo,
	}, testHandlerConfig(), metrics.NewMetrics(prometheus.NewRegistry()), logger.Nop())

	return h, svcs
}

// injectNopLogger puts a nop logger into the request context the way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func signedHookRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(hashHeader, utils.NewHasher(testHookSecret).HashHex([]byte(body)))
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
