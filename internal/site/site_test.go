package site

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultSiteIsValid(t *testing.T) {
	s := NewDefault()

	if err := s.Validate(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 4, len(s.NavItems); e != g {
		t.Errorf("len(s.NavItems): expected '%v', got '%v'", e, g)
	}

	if e, g := 3, len(s.Categories); e != g {
		t.Errorf("len(s.Categories): expected '%v', got '%v'", e, g)
	}
}

func TestValidate(t *testing.T) {
	type testCase struct {
		Mutate     func(s *Site)
		ShouldFail bool
	}

	testCases := []testCase{
		{
			Mutate:     func(s *Site) {},
			ShouldFail: false,
		},
		{
			Mutate: func(s *Site) {
				s.NavItems[0].Path = "simulaciones"
			},
			ShouldFail: true,
		},
		{
			Mutate: func(s *Site) {
				s.Categories[1].Title = ""
			},
			ShouldFail: true,
		},
		{
			Mutate: func(s *Site) {
				s.Hero.Image.Fallback = "not a url"
			},
			ShouldFail: true,
		},
		{
			Mutate: func(s *Site) {
				s.Contact.Email = "contacto"
			},
			ShouldFail: true,
		},
		{
			Mutate: func(s *Site) {
				s.NavItems = nil
			},
			ShouldFail: true,
		},
		{
			Mutate: func(s *Site) {
				s.UserMenu[0].Path = ""
			},
			ShouldFail: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			s := NewDefault()
			tc.Mutate(s)

			err := s.Validate()

			if e, g := tc.ShouldFail, err != nil; e != g {
				t.Errorf("s.Validate() failed: expected '%v', got '%v' (%v)", e, g, err)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	type testCase struct {
		Query         string
		Limit         int
		ExpectedPaths []string
	}

	testCases := []testCase{
		{
			Query:         "",
			Limit:         5,
			ExpectedPaths: []string{},
		},
		{
			Query:         "   ",
			Limit:         5,
			ExpectedPaths: []string{},
		},
		{
			Query:         "mate",
			Limit:         1,
			ExpectedPaths: []string{"/matematicas"},
		},
		{
			Query:         "MATEMATICAS",
			Limit:         5,
			ExpectedPaths: []string{"/matematicas"},
		},
		{
			Query:         "podcast",
			Limit:         5,
			ExpectedPaths: []string{"/podcast"},
		},
		{
			Query:         "simul",
			Limit:         0,
			ExpectedPaths: []string{},
		},
		{
			Query:         "zzzz",
			Limit:         5,
			ExpectedPaths: []string{},
		},
	}

	s := NewDefault()

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			results := s.Search(tc.Query, tc.Limit)

			if e, g := len(tc.ExpectedPaths), len(results); e != g {
				t.Fatalf("len(results): expected '%v', got '%v' (%v)", e, g, results)
			}

			for i, path := range tc.ExpectedPaths {
				if e, g := path, results[i].Path; e != g {
					t.Errorf("results[%d].Path: expected '%v', got '%v'", i, e, g)
				}
			}
		})
	}
}

func TestSearchDeduplicatesPaths(t *testing.T) {
	s := NewDefault()

	results := s.Search("simulaciones", 10)
	if len(results) == 0 {
		t.Fatalf("expected at least one result")
	}

	if e, g := "/simulaciones", results[0].Path; e != g {
		t.Errorf("results[0].Path: expected '%v', got '%v'", e, g)
	}

	if e, g := "Modelos interactivos de física e ingeniería.", results[0].Description; e != g {
		t.Errorf("results[0].Description: expected '%v', got '%v'", e, g)
	}

	seen := map[string]bool{}
	for _, r := range results {
		if seen[r.Path] {
			t.Errorf("path '%s' returned more than once", r.Path)
		}

		seen[r.Path] = true
	}
}
