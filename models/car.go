package models

import "time"

// PageSize is the fixed number of cars returned per listing page
const PageSize = 25

// MaxPage is the highest page a listing accepts; its offset fits any int
const MaxPage = 1_000_000

type Car struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Brand     string    `json:"brand" gorm:"not null;index"`
	Make      string    `json:"make"`
	Year      int       `json:"year"`
	Price     int       `json:"price" gorm:"not null;index"`
	Km        int       `json:"km"`
	Cm3       int       `json:"cm3"`
	OwnerID   uint      `json:"owner" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Car) TableName() string {
	return "Car"
}

// CarPatch is a partial update: nil fields are left untouched.
// There is no owner field: the owner never changes after creation.
type CarPatch struct {
	Brand *string
	Make  *string
	Year  *int
	Price *int
	Km    *int
	Cm3   *int
}

// Changes returns the column -> value map of the fields present in the patch
func (p CarPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Brand != nil {
		changes["brand"] = *p.Brand
	}
	if p.Make != nil {
		changes["make"] = *p.Make
	}
	if p.Year != nil {
		changes["year"] = *p.Year
	}
	if p.Price != nil {
		changes["price"] = *p.Price
	}
	if p.Km != nil {
		changes["km"] = *p.Km
	}
	if p.Cm3 != nil {
		changes["cm3"] = *p.Cm3
	}
	return changes
}

func (p CarPatch) IsEmpty() bool {
	return len(p.Changes()) == 0
}

// CarFilter holds the listing query. Price bounds are exclusive on both ends.
type CarFilter struct {
	MinPrice int
	MaxPrice int
	Brand    string
	Page     int
}

// Offset is the zero-based row offset of the filter's page. Every page past
// MaxPage shares the offset just beyond the last accepted page.
func (f CarFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	if f.Page > MaxPage {
		return MaxPage * PageSize
	}
	return (f.Page - 1) * PageSize
}

// InRange reports whether the page is between 1 and MaxPage
func (f CarFilter) InRange() bool {
	return f.Page >= 1 && f.Page <= MaxPage
}
