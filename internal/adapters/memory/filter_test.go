package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// seedFilterStore loads three bottles:
//
//	1: 2020, 750 ml, Dry,     "Cherry, Chocolate", pairs with "Steak"
//	2: 2019, 500 ml, Sweet,   "Honey",             pairs with "Blue Cheese"
//	3: 2020, 750 ml, SemiDry, "Apple, cherry pie", pairs with "Fish"
func seedFilterStore(t *testing.T) *BottleStore {
	t.Helper()

	ctx := context.Background()
	winemakers, bottles := newStores(t)
	winemakers.Add(ctx, domain.Winemaker{Name: "A"})

	seed := []domain.Bottle{
		{Name: "One", Year: 2020, SizeInMilliliter: 750, CountInWineCellar: 3, Style: domain.WineStyleDry, Taste: "Cherry, Chocolate", FoodPairing: "Steak", WinemakerID: 1},
		{Name: "Two", Year: 2019, SizeInMilliliter: 500, CountInWineCellar: 0, Style: domain.WineStyleSweet, Taste: "Honey", FoodPairing: "Blue Cheese", WinemakerID: 1},
		{Name: "Three", Year: 2020, SizeInMilliliter: 750, CountInWineCellar: 3, Style: domain.WineStyleSemiDry, Taste: "Apple, cherry pie", FoodPairing: "Fish", WinemakerID: 1},
	}
	for _, b := range seed {
		_, err := bottles.Add(ctx, b)
		require.NoError(t, err)
	}

	return bottles
}

func TestBottleStore_Filter(t *testing.T) {
	bottles := seedFilterStore(t)

	tests := []struct {
		name   string
		filter domain.BottleFilter
		want   []int
	}{
		{name: "no criteria returns everything", filter: domain.BottleFilter{}, want: []int{1, 2, 3}},
		{name: "year", filter: domain.BottleFilter{Year: ptr(2020)}, want: []int{1, 3}},
		{name: "size", filter: domain.BottleFilter{SizeInMilliliter: ptr(500)}, want: []int{2}},
		{name: "zero count is an active criterion", filter: domain.BottleFilter{CountInWineCellar: ptr(0)}, want: []int{2}},
		{name: "style", filter: domain.BottleFilter{Style: ptr(domain.WineStyleSemiDry)}, want: []int{3}},
		{name: "taste is case-insensitive substring", filter: domain.BottleFilter{Taste: "cherry"}, want: []int{1, 3}},
		{name: "taste upper case", filter: domain.BottleFilter{Taste: "CHOCOLATE"}, want: []int{1}},
		{name: "food pairing substring", filter: domain.BottleFilter{FoodPairing: "cheese"}, want: []int{2}},
		{name: "blank taste is ignored", filter: domain.BottleFilter{Taste: "   "}, want: []int{1, 2, 3}},
		{name: "blank food pairing is ignored", filter: domain.BottleFilter{FoodPairing: "\t"}, want: []int{1, 2, 3}},
		{
			name:   "criteria combine with AND",
			filter: domain.BottleFilter{Year: ptr(2020), Taste: "cherry", Style: ptr(domain.WineStyleDry)},
			want:   []int{1},
		},
		{name: "no match", filter: domain.BottleFilter{Year: ptr(1999)}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bottles.Filter(context.Background(), tt.filter)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, bottleIDs(got))
		})
	}
}

func TestBottleStore_Filter_EmptyEqualsGetAll(t *testing.T) {
	bottles := seedFilterStore(t)
	ctx := context.Background()

	assert.Equal(t, bottles.GetAll(ctx), bottles.Filter(ctx, domain.BottleFilter{}))
}

func TestBuildPredicate_MatchesAllWithoutCriteria(t *testing.T) {
	match := buildPredicate(domain.BottleFilter{})

	assert.True(t, match(domain.Bottle{}))
	assert.True(t, match(domain.Bottle{Year: 1900, Taste: "anything"}))
}
