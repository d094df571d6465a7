package memory

import (
	"strings"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

// predicate reports whether a bottle satisfies one criterion.
type predicate func(domain.Bottle) bool

func matchAll(domain.Bottle) bool { return true }

// buildPredicate turns each active criterion into a predicate and folds
// them with logical AND, starting from matchAll.
func buildPredicate(f domain.BottleFilter) predicate {
	var preds []predicate

	if f.Year != nil {
		year := *f.Year
		preds = append(preds, func(b domain.Bottle) bool { return b.Year == year })
	}

	if f.SizeInMilliliter != nil {
		size := *f.SizeInMilliliter
		preds = append(preds, func(b domain.Bottle) bool { return b.SizeInMilliliter == size })
	}

	if f.CountInWineCellar != nil {
		count := *f.CountInWineCellar
		preds = append(preds, func(b domain.Bottle) bool { return b.CountInWineCellar == count })
	}

	if f.Style != nil {
		style := *f.Style
		preds = append(preds, func(b domain.Bottle) bool { return b.Style == style })
	}

	if strings.TrimSpace(f.Taste) != "" {
		taste := strings.ToLower(f.Taste)
		preds = append(preds, func(b domain.Bottle) bool {
			return strings.Contains(strings.ToLower(b.Taste), taste)
		})
	}

	if strings.TrimSpace(f.FoodPairing) != "" {
		pairing := strings.ToLower(f.FoodPairing)
		preds = append(preds, func(b domain.Bottle) bool {
			return strings.Contains(strings.ToLower(b.FoodPairing), pairing)
		})
	}

	match := predicate(matchAll)
	for _, p := range preds {
		match = and(match, p)
	}

	return match
}

func and(a, b predicate) predicate {
	return func(bottle domain.Bottle) bool {
		return a(bottle) && b(bottle)
	}
}
