package store

import (
	"context"
	"errors"
	"testing"

	"psycare-backend/pkg/utils"
)

func TestPageWindow_Defaults(t *testing.T) {
	skip, limit := pageWindow(0, 0)
	if skip != 0 {
		t.Errorf("default page must start at the first record, got skip %d", skip)
	}
	if limit != DefaultPerPage {
		t.Errorf("expected default limit %d, got %d", DefaultPerPage, limit)
	}
}

func TestPageWindow_SkipMath(t *testing.T) {
	cases := []struct {
		page, perPage, skip, limit int64
	}{
		{1, 30, 0, 30},
		{2, 30, 30, 30},
		{3, 10, 20, 10},
		{5, 100, 400, 100},
		{-1, 30, 0, 30}, // nonsense pages clamp to the first
	}

	for _, tc := range cases {
		skip, limit := pageWindow(tc.page, tc.perPage)
		if skip != tc.skip || limit != tc.limit {
			t.Errorf("pageWindow(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.perPage, skip, limit, tc.skip, tc.limit)
		}
	}
}

func TestGetByID_MalformedIDIsNotFound(t *testing.T) {
	// the hex check runs before any storage access, so no collection is needed
	s := &Store[struct{}]{resource: "Patient"}

	for _, id := range []string{"", "not-hex", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "68b1c4f2e4b0a1b2c3d4e5f"} {
		rec, err := s.GetByID(context.Background(), id)
		if rec != nil {
			t.Errorf("id %q: expected no record", id)
		}
		var apiErr *utils.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("id %q: expected an APIError, got %T", id, err)
		}
		if apiErr.Code != 404 {
			t.Errorf("id %q: expected 404, got %d", id, apiErr.Code)
		}
		if apiErr.Message != "Patient does not exist" {
			t.Errorf("id %q: unexpected message %q", id, apiErr.Message)
		}
	}
}
