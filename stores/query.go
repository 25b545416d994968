package stores

import (
	"encoding/json"

	"gorm.io/gorm"
)

// QueryEngine aggregates the catalog and the vote ledger for the read
// endpoints. It owns no state of its own.
type QueryEngine struct {
	DB      *gorm.DB
	Catalog *CatalogStore
}

func NewQueryEngine(db *gorm.DB, catalog *CatalogStore) *QueryEngine {
	return &QueryEngine{DB: db, Catalog: catalog}
}

// MenuResult is one menu's tally for the results endpoint.
type MenuResult struct {
	MenuID         uint            `gorm:"column:menu_id" json:"menu_id"`
	RestaurantName string          `gorm:"column:restaurant_name" json:"restaurant_name"`
	Items          json.RawMessage `gorm:"column:items" json:"items"`
	VoteCount      int64           `gorm:"column:vote_count" json:"vote_count"`
}

// TodaysMenus returns every menu dated with the server's current date.
// An empty catalog for today is reported as ErrNoMenusToday so the
// transport can answer with an empty-result status instead of a real error.
func (q *QueryEngine) TodaysMenus() ([]MenuWithRestaurant, error) {
	menus, err := q.Catalog.MenusForDate(Today())
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, ErrNoMenusToday
	}
	return menus, nil
}

// TodaysResults tallies votes per menu for today's menus. The whole tally is
// one SQL statement, so every count reflects the same committed snapshot of
// the ledger; a vote landing mid-aggregation is either fully in or fully out.
func (q *QueryEngine) TodaysResults() ([]MenuResult, error) {
	var rows []MenuResult
	err := q.DB.Table("menus").
		Select("menus.id AS menu_id, restaurants.name AS restaurant_name, menus.items AS items, COUNT(votes.id) AS vote_count").
		Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id").
		Joins("LEFT JOIN votes ON votes.menu_id = menus.id").
		Where("menus.date = ?", Today()).
		Group("menus.id, restaurants.id, restaurants.name, menus.items").
		Order("menus.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
