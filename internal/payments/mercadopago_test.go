package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest(t *testing.T) {
	req := buildRequest(CheckoutItem{
		Reference:   "product-42",
		Title:       "Pomada Modeladora",
		Description: "Fixação forte",
		PictureURL:  "https://cdn.example.com/pomada.webp",
		UnitPrice:   49.90,
	})

	assert.Equal(t, "product-42", req.ExternalReference)
	require.Len(t, req.Items, 1)

	item := req.Items[0]
	assert.Equal(t, "product-42", item.ID)
	assert.Equal(t, "Pomada Modeladora", item.Title)
	assert.Equal(t, "Fixação forte", item.Description)
	assert.Equal(t, "https://cdn.example.com/pomada.webp", item.PictureURL)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 49.90, item.UnitPrice)
}
