package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentlyViewed_MostRecentFirst(t *testing.T) {
	r := NewRecentlyViewed(NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	r.Record(ctx, "s1", "dress")
	r.Record(ctx, "s1", "tote")
	r.Record(ctx, "s1", "scarf")

	assert.Equal(t, []string{"scarf", "tote", "dress"}, r.List(ctx, "s1"))
}

func TestRecentlyViewed_NoDuplicates(t *testing.T) {
	r := NewRecentlyViewed(NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	r.Record(ctx, "s1", "dress")
	r.Record(ctx, "s1", "tote")
	r.Record(ctx, "s1", "dress")

	assert.Equal(t, []string{"dress", "tote"}, r.List(ctx, "s1"), "re-viewing moves the product to the front")
}

func TestRecentlyViewed_BoundedToLimit(t *testing.T) {
	r := NewRecentlyViewed(NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	for i := 1; i <= RecentLimit+3; i++ {
		r.Record(ctx, "s1", fmt.Sprintf("p%d", i))
	}

	list := r.List(ctx, "s1")
	require.Len(t, list, RecentLimit)
	assert.Equal(t, []string{"p8", "p7", "p6", "p5", "p4"}, list)
}

func TestRecentlyViewed_MalformedDataFallsBackToEmpty(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, RecentKey("s1"), []byte("not json")))

	r := NewRecentlyViewed(s, zerolog.Nop())

	assert.Empty(t, r.List(ctx, "s1"))
	r.Record(ctx, "s1", "dress")
	assert.Equal(t, []string{"dress"}, r.List(ctx, "s1"))
}
