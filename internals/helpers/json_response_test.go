// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty", 0, 1, 20, 1, false, false},
		{"single page", 5, 1, 20, 1, false, false},
		{"exact boundary", 40, 1, 20, 2, true, false},
		{"middle page", 100, 3, 20, 5, true, true},
		{"last page", 100, 5, 20, 5, false, true},
		{"defaults on zero perPage", 10, 0, 0, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Fatalf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext || p.HasPrev != tt.wantPrev {
				t.Fatalf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tt.wantNext, tt.wantPrev)
			}
		})
	}
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/x", 1, 20, 0},
		{"page and per_page", "/x?page=3&per_page=10", 3, 10, 20},
		{"limit alias", "/x?limit=5", 1, 5, 0},
		{"per_page wins over limit", "/x?per_page=7&limit=50", 1, 7, 0},
		{"clamped to max", "/x?per_page=5000", 1, 100, 0},
		{"negative page", "/x?page=-2", 1, 20, 0},
	}

	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Offset != tt.wantOffset {
				t.Fatalf("paging = %+v, want page=%d limit=%d offset=%d", got, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
