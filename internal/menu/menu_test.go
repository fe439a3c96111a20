package menu

import (
	"testing"

	"tasca-menu/internal/models"

	"github.com/stretchr/testify/assert"
)

func item(name, category string) models.MenuItem {
	return models.MenuItem{Name: name, Category: category}
}

func sectionNames(sections []Section) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

func TestCategorizeEmpty(t *testing.T) {
	assert.Empty(t, Categorize(nil))
	assert.Empty(t, Categorize([]models.MenuItem{}))
}

func TestCategorizePriorityOrderThenAlphabeticalTail(t *testing.T) {
	items := []models.MenuItem{
		item("Margherita", "Pizzas"),
		item("Caipirinha", "Bar"),
		item("Calzone", "Pizzas"),
		item("Mystery Dish", "Zeta"),
	}

	sections := Categorize(items)

	assert.Equal(t, []string{"Pizzas", "Bar", "Zeta"}, sectionNames(sections))
	// name-sorted within the Pizzas bucket
	assert.Equal(t, "Calzone", sections[0].Items[0].Name)
	assert.Equal(t, "Margherita", sections[0].Items[1].Name)
}

func TestCategorizeUnknownCategoriesSortAlphabetically(t *testing.T) {
	items := []models.MenuItem{
		item("C", "Zeta"),
		item("A", "Alpha"),
		item("B", "Bar"),
	}

	sections := Categorize(items)

	assert.Equal(t, []string{"Bar", "Alpha", "Zeta"}, sectionNames(sections))
}

func TestCategorizeOmitsEmptyPrioritySlots(t *testing.T) {
	sections := Categorize([]models.MenuItem{item("Bica", "Bar")})

	assert.Equal(t, []string{"Bar"}, sectionNames(sections))
}

func TestCategorizeMatchingIsExact(t *testing.T) {
	// case and whitespace differences miss the priority slot and land in
	// the alphabetical tail
	items := []models.MenuItem{
		item("Margherita", "Pizzas"),
		item("Funghi", "pizzas"),
		item("Diavola", "Pizzas "),
	}

	sections := Categorize(items)

	assert.Equal(t, []string{"Pizzas", "Pizzas ", "pizzas"}, sectionNames(sections))
}

func TestCategorizeKeepsEveryItemExactlyOnce(t *testing.T) {
	items := []models.MenuItem{
		item("Margherita", "Pizzas"),
		item("Caipirinha", "Bar"),
		item("Salada Mista", "Saladas (Salads)"),
		item("Mystery Dish", "Zeta"),
	}

	sections := Categorize(items)

	seen := map[string]int{}
	total := 0
	for _, s := range sections {
		for _, it := range s.Items {
			seen[it.Name]++
			total++
		}
	}
	assert.Equal(t, len(items), total)
	for name, n := range seen {
		assert.Equalf(t, 1, n, "item %s appears %d times", name, n)
	}
}
