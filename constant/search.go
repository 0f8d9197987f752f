package constant

import "time"

// Redis key names, always passed through MakeKey before use.
const (
	WebsiteItemIndex                = "website_items_index"
	WebsiteItemNameAutocomplete     = "website_items_name_dict"
	WebsiteItemCategoryAutocomplete = "website_items_category_dict"
	WebsiteItemDocPrefix            = "website_item:"
	ItemPriceCachePrefix            = "item_price:"
)

const (
	DefaultProductListLimit  = 12
	MaxProductListLimit      = 100
	DefaultSuggestionLimit   = 10
	CategorySuggestionLimit  = 10
	FuzzyMinQueryLength      = 4
	DefaultPriceCacheTTL     = 10 * time.Minute
	DefaultSiteKeyPrefix     = "storefront"
	InStockDisplay           = "In stock"
	OutOfStockDisplay        = "Out of stock"
	EndOfLifeZeroDate        = "0000-00-00"
	ItemIndexQueue           = "website_item_index_queue"
	ItemIndexExchange        = "website_item_index_exchange"
	ItemIndexRoutingKey      = "website_item_index"
	InternalServiceHeaderVal = "website-item-index-consumer"
)

// MakeKey namespaces a key with the site prefix so several storefronts can
// share one Redis instance.
func MakeKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "|" + key
}
