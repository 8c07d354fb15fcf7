package setup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/academia/internal/config"
	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	type testCase struct {
		Method       string
		Path         string
		ExpectedCode int
		// Selector expected in the rendered page, if any
		Selector string
	}

	testCases := []testCase{
		{Method: http.MethodGet, Path: "/", ExpectedCode: http.StatusOK, Selector: "#hero"},
		{Method: http.MethodGet, Path: "/login", ExpectedCode: http.StatusOK, Selector: "#login-form"},
		{Method: http.MethodGet, Path: "/simulaciones", ExpectedCode: http.StatusNotFound, Selector: "#navbar"},
		{Method: http.MethodGet, Path: "/recuperar-contrasena", ExpectedCode: http.StatusNotFound, Selector: "#not-found"},
		{Method: http.MethodGet, Path: "/assets/img/logo.svg", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Path: "/debug/metrics", ExpectedCode: http.StatusOK},
		{Method: http.MethodDelete, Path: "/login", ExpectedCode: http.StatusNotFound},
	}

	ctx := context.Background()

	conf := config.NewDefaultConfig()

	if err := config.Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	conf.Assets.Dir = ""
	conf.Debug.Enabled = true
	conf.Login.Delay = config.NewInterpolatedDuration(time.Millisecond)

	handler, err := NewHandlerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	forms, err := NewFormsFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer forms.Close()

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			req := httptest.NewRequest(tc.Method, tc.Path, nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedCode, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if tc.Selector == "" {
				return
			}

			doc, err := goquery.NewDocumentFromReader(res.Body)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if doc.Find(tc.Selector).Length() == 0 {
				t.Errorf("expected '%s' in the page", tc.Selector)
			}
		})
	}
}
