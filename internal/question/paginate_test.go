package question

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := map[string]int{
		"":    1,
		"1":   1,
		"3":   3,
		"0":   0,
		"-2":  -2,
		"abc": 1,
		"2.5": 1,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParsePage(raw), "ParsePage(%q)", raw)
	}
}

func TestPaginateWindowLength(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 19, 20, 25} {
		items := make([]int, n)
		for page := 1; page <= n/PageSize+2; page++ {
			want := max(0, min(PageSize, n-(page-1)*PageSize))
			assert.Len(t, Paginate(items, page), want, "n=%d page=%d", n, page)
		}
	}
}

func TestPaginateReconstructsInput(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	var joined []int
	for page := 1; ; page++ {
		window := Paginate(items, page)
		if len(window) == 0 {
			break
		}
		joined = append(joined, window...)
	}
	if diff := cmp.Diff(items, joined); diff != "" {
		t.Fatalf("pages do not reconstruct input (-want +got):\n%s", diff)
	}
}

func TestPaginateOutOfRangeIsEmptyNotNil(t *testing.T) {
	items := []int{1, 2, 3}
	for _, page := range []int{0, -1, 2, 100} {
		window := Paginate(items, page)
		assert.NotNil(t, window, "page %d", page)
		assert.Empty(t, window, "page %d", page)
	}
}
