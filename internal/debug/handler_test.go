package debug

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/academia/internal/metrics"
)

func TestHandler(t *testing.T) {
	type testCase struct {
		Path         string
		ExpectedCode int
	}

	testCases := []testCase{
		{Path: "/debug/pprof/", ExpectedCode: http.StatusOK},
		{Path: "/debug/pprof/goroutine", ExpectedCode: http.StatusOK},
		{Path: "/debug/vars", ExpectedCode: http.StatusOK},
		{Path: "/debug/metrics", ExpectedCode: http.StatusOK},
		{Path: "/debug/unknown", ExpectedCode: http.StatusNotFound},
	}

	handler := NewHandler("/debug", metrics.New().Handler())

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedCode, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}
		})
	}
}
