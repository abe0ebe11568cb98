package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name        string
	Description string
	Modified    int
}

func fields(r row) []string { return []string{r.Name, r.Description} }

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	rows := []row{
		{Name: "Algebra Basics", Description: "numbers"},
		{Name: "Geometry", Description: "Shapes and ALGEBRA tricks"},
		{Name: "Biology", Description: "cells"},
	}

	got := Filter(rows, "algebra", fields)
	require.Len(t, got, 2)
	assert.Equal(t, "Algebra Basics", got[0].Name)
	assert.Equal(t, "Geometry", got[1].Name)

	// Empty and whitespace-only queries keep everything.
	assert.Len(t, Filter(rows, "", fields), 3)
	assert.Len(t, Filter(rows, "   ", fields), 3)

	// No match yields an empty, non-nil slice.
	empty := Filter(rows, "chemistry", fields)
	require.NotNil(t, empty)
	assert.Len(t, empty, 0)

	// The base collection is never mutated.
	assert.Equal(t, "Algebra Basics", rows[0].Name)
	assert.Len(t, rows, 3)
}

func TestFilterThenPaginatePartition(t *testing.T) {
	var rows []row
	for i := 0; i < 37; i++ {
		name := fmt.Sprintf("Track %02d", i)
		if i%3 == 0 {
			name = fmt.Sprintf("Math Track %02d", i)
		}
		rows = append(rows, row{Name: name})
	}

	filtered := Filter(rows, "math", fields)
	require.Len(t, filtered, 13)

	// Page slices partition the filtered result: no overlap, no gaps.
	seen := make(map[string]int)
	total := 0
	pages := Paginate(filtered, 1, 5).PageCount
	for p := 1; p <= pages; p++ {
		page := Paginate(filtered, p, 5)
		for _, r := range page.Items {
			seen[r.Name]++
			total++
		}
	}
	assert.Equal(t, len(filtered), total)
	for name, count := range seen {
		assert.Equalf(t, 1, count, "item %s appeared %d times", name, count)
	}
}

func TestPaginateClamping(t *testing.T) {
	var rows []row
	for i := 0; i < 25; i++ {
		rows = append(rows, row{Name: fmt.Sprintf("Track %02d", i)})
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantItems int
	}{
		{"first page", 1, 1, 10},
		{"middle page", 2, 2, 10},
		{"last page short", 3, 3, 5},
		{"past the end clamps to last", 4, 3, 5},
		{"page zero clamps to first", 0, 1, 10},
		{"negative clamps to first", -2, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(rows, tt.page, 10)
			assert.Equal(t, 3, got.PageCount)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Len(t, got.Items, tt.wantItems)
			assert.Equal(t, 25, got.TotalItems)
			assert.Equal(t, got.Page > 1, got.HasPrev)
			assert.Equal(t, got.Page < got.PageCount, got.HasNext)
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	got := Paginate([]row{}, 3, 10)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 1, got.PageCount)
	require.NotNil(t, got.Items)
	assert.Len(t, got.Items, 0)
	assert.False(t, got.HasPrev)
	assert.False(t, got.HasNext)
}

func TestSortStableKeepsTiesInOrder(t *testing.T) {
	rows := []row{
		{Name: "a", Modified: 1},
		{Name: "b", Modified: 2},
		{Name: "c", Modified: 2},
		{Name: "d", Modified: 3},
	}
	got := SortStable(rows, func(x, y row) bool { return x.Modified > y.Modified })

	require.Len(t, got, 4)
	assert.Equal(t, "d", got[0].Name)
	// Equal keys keep their fetch order.
	assert.Equal(t, "b", got[1].Name)
	assert.Equal(t, "c", got[2].Name)
	assert.Equal(t, "a", got[3].Name)
	// Input untouched.
	assert.Equal(t, "a", rows[0].Name)
}
