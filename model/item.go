package model

import "time"

// WebsiteItem is one row of the storefront listing query. Price and the
// display fields are filled in later by the website info enricher.
type WebsiteItem struct {
	Name               string    `db:"name" json:"name"`
	ItemName           string    `db:"item_name" json:"item_name"`
	ItemCode           string    `db:"item_code" json:"item_code"`
	Route              string    `db:"route" json:"route"`
	Image              string    `db:"image" json:"image"`
	WebsiteImage       string    `db:"website_image" json:"website_image"`
	Thumbnail          string    `db:"thumbnail" json:"thumbnail"`
	ItemGroup          string    `db:"item_group" json:"item_group"`
	Description        string    `db:"description" json:"description"`
	WebsiteDescription string    `db:"website_description" json:"website_description"`
	IsStockItem        bool      `db:"is_stock_item" json:"is_stock_item"`
	InStock            bool      `db:"in_stock" json:"in_stock"`
	WebsiteWarehouse   string    `db:"website_warehouse" json:"website_warehouse"`
	HasBatchNo         bool      `db:"has_batch_no" json:"has_batch_no"`
	Weightage          int64     `db:"weightage" json:"weightage"`
	Modified           time.Time `db:"modified" json:"modified"`
	Visible            bool      `db:"visible" json:"-"`

	Price           *ItemPrice `db:"-" json:"price,omitempty"`
	FormattedPrice  string     `db:"-" json:"formatted_price,omitempty"`
	StockQtyDisplay string     `db:"-" json:"stock_qty_display,omitempty"`
}

// IndexFields returns the hash fields stored in the full-text item index.
func (i WebsiteItem) IndexFields() map[string]any {
	webItemName := i.ItemName
	if webItemName == "" {
		webItemName = i.Name
	}
	thumbnail := i.Thumbnail
	if thumbnail == "" {
		thumbnail = i.WebsiteImage
	}
	return map[string]any{
		"name":                 i.Name,
		"item_code":            i.ItemCode,
		"web_item_name":        webItemName,
		"item_name":            i.ItemName,
		"item_group":           i.ItemGroup,
		"description":          i.Description,
		"web_long_description": i.WebsiteDescription,
		"route":                i.Route,
		"thumbnail":            thumbnail,
	}
}

// ItemPrice is the selling rate of an item on a price list.
type ItemPrice struct {
	ItemCode      string  `db:"item_code" json:"item_code"`
	PriceList     string  `db:"price_list" json:"price_list"`
	PriceListRate float64 `db:"price_list_rate" json:"price_list_rate"`
	Currency      string  `db:"currency" json:"currency"`
}

// ProductListFilter drives the storefront listing query. Start and Limit are
// already normalized when they reach the repository.
type ProductListFilter struct {
	Search string
	Start  int
	Limit  int
	Today  time.Time
}

// ProductCard is the display record returned by the product list endpoint.
type ProductCard struct {
	Name            string  `json:"name"`
	ItemCode        string  `json:"item_code"`
	ItemName        string  `json:"item_name"`
	ItemGroup       string  `json:"item_group"`
	Route           string  `json:"route"`
	Image           string  `json:"image,omitempty"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency,omitempty"`
	FormattedPrice  string  `json:"formatted_price,omitempty"`
	InStock         bool    `json:"in_stock"`
	StockQtyDisplay string  `json:"stock_qty_display,omitempty"`
	HasPrice        bool    `json:"has_price"`
}
