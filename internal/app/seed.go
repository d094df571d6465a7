package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

// sampleBottle is a bottle whose winemaker is referenced by position in
// the sample winemaker list rather than by id.
type sampleBottle struct {
	maker  int
	bottle domain.Bottle
}

func sampleWinemakers() []domain.Winemaker {
	return []domain.Winemaker{
		{Name: "Winemaker A", Address: "123 Wine St, Napa, CA"},
		{Name: "Winemaker B", Address: "456 Vineyard Rd, Sonoma, CA"},
	}
}

func sampleBottles() []sampleBottle {
	return []sampleBottle{
		{maker: 0, bottle: domain.Bottle{
			Name:              "Cabernet Sauvignon",
			Year:              2018,
			SizeInMilliliter:  500,
			CountInWineCellar: 10,
			Style:             domain.WineStyleDry,
			Taste:             "Plum, Tobacco",
			Description:       "A full-bodied red wine.",
			FoodPairing:       "Steak, Grilled Lamb",
			Link:              "http://example.com/cab-sauvignon",
			Image:             "http://example.com/images/cab-sauvignon.jpg",
		}},
		{maker: 1, bottle: domain.Bottle{
			Name:              "Chardonnay",
			Year:              2020,
			SizeInMilliliter:  750,
			CountInWineCellar: 20,
			Style:             domain.WineStyleDry,
			Taste:             "Apple, Vanilla",
			Description:       "A crisp white wine.",
			FoodPairing:       "Chicken, Fish",
			Link:              "http://example.com/chardonnay",
			Image:             "http://example.com/images/chardonnay.jpg",
		}},
		{maker: 0, bottle: domain.Bottle{
			Name:              "Merlot",
			Year:              2019,
			SizeInMilliliter:  500,
			CountInWineCellar: 15,
			Style:             domain.WineStyleSemiDry,
			Taste:             "Cherry, Chocolate",
			Description:       "A smooth red wine with chocolate notes.",
			FoodPairing:       "Pasta, Beef",
			Link:              "http://example.com/merlot",
			Image:             "http://example.com/images/merlot.jpg",
		}},
		{maker: 1, bottle: domain.Bottle{
			Name:              "Sauvignon Blanc",
			Year:              2021,
			SizeInMilliliter:  750,
			CountInWineCellar: 25,
			Style:             domain.WineStyleDry,
			Taste:             "Citrus, Green Apple",
			Description:       "A refreshing white wine with a citrusy flavor.",
			FoodPairing:       "Seafood, Salads",
			Link:              "http://example.com/sauvignon-blanc",
			Image:             "http://example.com/images/sauvignon-blanc.jpg",
		}},
	}
}

// SeedSampleData adds two winemakers and four bottles through the service.
// On an empty store the winemakers get ids 1 and 2 and the bottles 1 to 4.
func (s *InventoryService) SeedSampleData(ctx context.Context) error {
	makers := sampleWinemakers()
	ids := make([]int, len(makers))

	for i, w := range makers {
		created, err := s.CreateWinemaker(ctx, w)
		if err != nil {
			return fmt.Errorf("seeding winemaker %q: %w", w.Name, err)
		}

		ids[i] = created.ID
	}

	bottles := sampleBottles()
	for _, sb := range bottles {
		b := sb.bottle
		b.WinemakerID = ids[sb.maker]

		if _, err := s.CreateBottle(ctx, b); err != nil {
			return fmt.Errorf("seeding bottle %q: %w", b.Name, err)
		}
	}

	s.logger.InfoContext(ctx, "sample data seeded",
		slog.Int("winemakers", len(makers)),
		slog.Int("bottles", len(bottles)),
	)

	return nil
}
