package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylemart/stylemart/internal/models"
)

var testCatalog = []models.Product{
	{Name: "Red Saree", Price: "20.5"},
	{Name: "Blue Jeans", Price: "15"},
}

func TestResolveSumsDuplicatesIndependently(t *testing.T) {
	var c Cart
	c = c.Add("Red Saree")
	c = c.Add("Blue Jeans")
	c = c.Add("Red Saree")

	items, total, orphans := c.Resolve(testCatalog)

	assert.InDelta(t, 56.0, total, 1e-9)
	assert.Len(t, items, 3)
	assert.Equal(t, items[0], items[2])
	assert.Equal(t, "Red Saree", items[0].Name)
	assert.Equal(t, "Blue Jeans", items[1].Name)
	assert.Zero(t, orphans)
}

func TestResolveSkipsOrphansSilently(t *testing.T) {
	c := Cart{"Red Saree", "Discontinued Scarf", "Blue Jeans"}

	items, total, orphans := c.Resolve(testCatalog)

	assert.Len(t, items, 2)
	assert.InDelta(t, 35.5, total, 1e-9)
	assert.Equal(t, 1, orphans)
}

func TestResolveFirstCatalogMatchWins(t *testing.T) {
	dup := []models.Product{
		{Name: "Red Saree", Price: "20.5", Image: "first.jpg"},
		{Name: "Red Saree", Price: "99", Image: "second.jpg"},
	}
	items, total, _ := Cart{"Red Saree"}.Resolve(dup)

	assert.Len(t, items, 1)
	assert.Equal(t, "first.jpg", items[0].Image)
	assert.InDelta(t, 20.5, total, 1e-9)
}

func TestRemoveDropsAllOccurrences(t *testing.T) {
	c := Cart{"a", "b", "a", "c", "a"}
	c = c.Remove("a")
	assert.Equal(t, Cart{"b", "c"}, c)
}

func TestRemoveMissingNameIsNoop(t *testing.T) {
	c := Cart{"a", "b"}
	assert.Equal(t, Cart{"a", "b"}, c.Remove("z"))
}

func TestClear(t *testing.T) {
	c := Cart{"a", "b"}
	assert.Empty(t, c.Clear())
	assert.Zero(t, c.Clear().Count())
}

func TestResolveEmptyCart(t *testing.T) {
	items, total, orphans := Cart(nil).Resolve(testCatalog)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.Zero(t, orphans)
}
