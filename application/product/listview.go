package product

import (
	"strings"

	"github.com/muhammadheryan/storefront-search/model"
)

// FormatListItem shapes an enriched item into the card shown in product grids.
func FormatListItem(item model.WebsiteItem) model.ProductCard {
	card := model.ProductCard{
		Name:            item.Name,
		ItemCode:        item.ItemCode,
		ItemName:        firstNonEmpty(item.ItemName, item.Name),
		ItemGroup:       item.ItemGroup,
		Route:           route(item.Route),
		Image:           firstNonEmpty(item.WebsiteImage, item.Thumbnail, item.Image),
		Description:     firstNonEmpty(item.WebsiteDescription, item.Description),
		InStock:         item.InStock,
		StockQtyDisplay: item.StockQtyDisplay,
		FormattedPrice:  item.FormattedPrice,
	}

	if item.Price != nil {
		card.HasPrice = true
		card.Price = item.Price.PriceListRate
		card.Currency = item.Price.Currency
	}

	return card
}

func route(r string) string {
	if r == "" || strings.HasPrefix(r, "/") || strings.Contains(r, "://") {
		return r
	}
	return "/" + r
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
