// Package menu builds the grouped, ordered view of the menu shown on the
// public index page.
package menu

import (
	"sort"

	"tasca-menu/internal/models"
)

// CategoryOrder is the fixed display order of the house categories.
// Categories not listed here are appended after these, alphabetically.
var CategoryOrder = []string{
	"Petiscos (Starters)",
	"Saladas (Salads)",
	"Pizzas",
	"Burgers",
	"Pratos (Mains)",
	"Sobremesas (Desserts)",
	"Bar",
}

// Section is one rendered category bucket.
type Section struct {
	Name  string
	Items []models.MenuItem
}

// Categorize groups items by their exact category string, sorts each bucket
// by item name, and orders the buckets: CategoryOrder slots first (empty
// slots omitted), then any remaining categories in alphabetical order.
// Matching is deliberately exact; "pizzas" and "Pizzas " are distinct
// categories and land in the alphabetical tail.
func Categorize(items []models.MenuItem) []Section {
	buckets := make(map[string][]models.MenuItem)
	for _, item := range items {
		buckets[item.Category] = append(buckets[item.Category], item)
	}
	for _, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Name < bucket[j].Name })
	}

	var sections []Section
	for _, name := range CategoryOrder {
		if bucket, ok := buckets[name]; ok {
			sections = append(sections, Section{Name: name, Items: bucket})
			delete(buckets, name)
		}
	}

	rest := make([]string, 0, len(buckets))
	for name := range buckets {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		sections = append(sections, Section{Name: name, Items: buckets[name]})
	}

	return sections
}
