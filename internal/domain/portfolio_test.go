package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func galleryIDs(items []GalleryItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestFilterGallery(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
		want     []int
	}{
		{name: "everything", category: CategoryAll, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "empty category means all", category: "", want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "category only", category: "tv", want: []int{2, 6, 10}},
		{name: "title match ignores case", category: CategoryAll, query: "pop", want: []int{1, 5, 8, 9}},
		{name: "description match", category: CategoryAll, query: "HIDDEN storage", want: []int{2}},
		{name: "tag match", category: CategoryAll, query: "weatherproof", want: []int{11}},
		{name: "word in titles and tags", category: CategoryAll, query: "modern", want: []int{1, 2, 7}},
		{name: "tag inside category", category: "wall", query: "bedroom", want: []int{12}},
		{name: "query and category disjoint", category: "commercial", query: "kitchen", want: nil},
		{name: "unknown category", category: "garden", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterGallery(GalleryItems, tt.category, tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, galleryIDs(got))
		})
	}
}

func TestFilterServices(t *testing.T) {
	tests := []struct {
		category string
		want     []int
	}{
		{category: CategoryAll, want: []int{1, 2, 3, 4, 5, 6}},
		{category: "lighting", want: []int{3}},
		{category: "maintenance", want: []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := FilterServices(ServiceListings, tt.category)
			ids := make([]int, len(got))
			for i, s := range got {
				ids[i] = s.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name       string
		n, i       int
		prev, next int
	}{
		{name: "first wraps back", n: 4, i: 0, prev: 3, next: 1},
		{name: "middle", n: 4, i: 2, prev: 1, next: 3},
		{name: "last wraps forward", n: 4, i: 3, prev: 2, next: 0},
		{name: "single item", n: 1, i: 0, prev: 0, next: 0},
		{name: "empty", n: 0, i: 0, prev: -1, next: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := Neighbors(tt.n, tt.i)
			assert.Equal(t, tt.prev, prev)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestHasCategory(t *testing.T) {
	assert.True(t, HasCategory(GalleryCategories, ""))
	assert.True(t, HasCategory(GalleryCategories, CategoryAll))
	assert.True(t, HasCategory(GalleryCategories, "commercial"))
	assert.False(t, HasCategory(GalleryCategories, "maintenance"))
	assert.True(t, HasCategory(ServiceCategories, "maintenance"))
}
