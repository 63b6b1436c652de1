package models

// NutritionEntry is one recorded nutrition event. The timestamp is kept in its
// submitted YYYY-MM-DDThh:mm:ss form, so lexicographic order matches
// chronological order. Date is derived from the timestamp at insert time and
// is the grouping key for queries and deletes.
type NutritionEntry struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Timestamp   string `gorm:"not null" json:"timestamp"`
	Date        string `gorm:"index;not null" json:"-"`
	Description string `gorm:"not null" json:"description"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`
	Carbs       int    `json:"carbs"`
	Fat         int    `json:"fat"`
	Caffeine    int    `json:"caffeine"`
}
