package services

import (
	"fmt"
	"math/rand"
)

// Meal-time buckets and sample foods for seeding. Bucket order is fixed so a
// fixed seed always produces the same entries.
var mealBuckets = []string{"breakfast", "lunch", "afternoon", "dinner", "night"}

var mealHours = map[string][2]int{
	"breakfast": {7, 12},
	"lunch":     {12, 15},
	"afternoon": {15, 18},
	"dinner":    {18, 21},
	"night":     {21, 24},
}

var mealFoods = map[string][]string{
	"breakfast": {"Omelette", "Avocado Toast", "Yogurt & Granola", "Smoothie Bowl"},
	"lunch":     {"Grilled Chicken Salad", "Turkey Sandwich", "Quinoa Bowl", "Sushi Roll"},
	"afternoon": {"Protein Bar", "Apple & Peanut Butter", "Hummus & Veggies"},
	"dinner":    {"Salmon with Veggies", "Steak & Potatoes", "Tofu Stir Fry", "Pasta Primavera"},
	"night":     {"Herbal Tea", "Cottage Cheese"},
}

// MockSeeder populates the store with plausible entries through the same Add
// path real clients use. Only for --debug and --dump-report runs.
type MockSeeder struct {
	store *EntryStore
	rng   *rand.Rand
}

func NewMockSeeder(store *EntryStore, seed int64) *MockSeeder {
	return &MockSeeder{store: store, rng: rand.New(rand.NewSource(seed))}
}

// Seed adds 3-6 entries per day across the range and returns how many were
// added. Night entries carry no caffeine.
func (m *MockSeeder) Seed(rng DateRange) (int, error) {
	count := 0
	for _, day := range rng.Days() {
		n := 3 + m.rng.Intn(4)
		for i := 0; i < n; i++ {
			bucket := mealBuckets[m.rng.Intn(len(mealBuckets))]
			hours := mealHours[bucket]
			hr := hours[0] + m.rng.Intn(hours[1]-hours[0])
			mn := m.rng.Intn(60)
			foods := mealFoods[bucket]

			calories := 100 + m.rng.Intn(601)
			protein := 5 + m.rng.Intn(46)
			caffeine := 0
			if bucket != "night" {
				caffeine = m.rng.Intn(151)
			}

			req := EntryRequest{
				Timestamp:   fmt.Sprintf("%sT%02d:%02d:00", day.Format(dateLayout), hr, mn),
				Description: foods[m.rng.Intn(len(foods))],
				Calories:    &calories,
				Protein:     &protein,
				Carbs:       10 + m.rng.Intn(91),
				Fat:         5 + m.rng.Intn(26),
				Caffeine:    caffeine,
			}
			if _, err := m.store.Add(req); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
