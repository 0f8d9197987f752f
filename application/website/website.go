package website

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muhammadheryan/storefront-search/cmd/config"
	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/model"
	pricerepo "github.com/muhammadheryan/storefront-search/repository/price"
	redisrepo "github.com/muhammadheryan/storefront-search/repository/redis"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// WebsiteInfo augments listing rows with the fields the storefront shows
// beside each item.
type WebsiteInfo interface {
	SetProductInfoForWebsite(ctx context.Context, item *model.WebsiteItem) error
	InvalidatePrice(ctx context.Context, itemCode string) error
}

type websiteInfoImpl struct {
	config    *config.Config
	priceRepo pricerepo.PriceRepository
	redisRepo redisrepo.Repository
}

func NewWebsiteInfo(config *config.Config, priceRepo pricerepo.PriceRepository, redisRepo redisrepo.Repository) WebsiteInfo {
	return &websiteInfoImpl{
		config:    config,
		priceRepo: priceRepo,
		redisRepo: redisRepo,
	}
}

// cachedPrice wraps the price so a missing price can be cached too.
type cachedPrice struct {
	Price *model.ItemPrice `json:"price"`
}

func (s *websiteInfoImpl) SetProductInfoForWebsite(ctx context.Context, item *model.WebsiteItem) error {
	price, err := s.getPrice(ctx, item.ItemCode)
	if err != nil {
		return err
	}

	item.Price = price
	item.FormattedPrice = ""
	if price != nil {
		currency := price.Currency
		if currency == "" {
			currency = s.config.Search.Currency
		}
		item.FormattedPrice = FormatPrice(price.PriceListRate, currency)
	}

	item.StockQtyDisplay = ""
	if item.IsStockItem {
		if item.InStock {
			item.StockQtyDisplay = constant.InStockDisplay
		} else {
			item.StockQtyDisplay = constant.OutOfStockDisplay
		}
	}

	return nil
}

func (s *websiteInfoImpl) InvalidatePrice(ctx context.Context, itemCode string) error {
	return s.redisRepo.Delete(ctx, s.priceKey(itemCode))
}

func (s *websiteInfoImpl) getPrice(ctx context.Context, itemCode string) (*model.ItemPrice, error) {
	key := s.priceKey(itemCode)

	raw, err := s.redisRepo.Get(ctx, key)
	switch {
	case err == nil:
		var cached cachedPrice
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached.Price, nil
		}
		logger.Warn("[SetProductInfoForWebsite] corrupt price cache entry", zap.String("key", key))
	case !errors.Is(err, redisrepo.ErrCacheMiss):
		logger.Warn("[SetProductInfoForWebsite] price cache read failed", zap.String("error", err.Error()))
	}

	price, err := s.priceRepo.GetItemPrice(ctx, itemCode, s.config.Search.PriceList)
	if err != nil {
		return nil, fmt.Errorf("get item price %s: %w", itemCode, err)
	}

	body, err := json.Marshal(cachedPrice{Price: price})
	if err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(body), s.config.Search.PriceCacheTTL); err != nil {
			logger.Warn("[SetProductInfoForWebsite] price cache write failed", zap.String("error", err.Error()))
		}
	}

	return price, nil
}

func (s *websiteInfoImpl) priceKey(itemCode string) string {
	return constant.MakeKey(s.config.Search.KeyPrefix, constant.ItemPriceCachePrefix+s.config.Search.PriceList+":"+itemCode)
}

// FormatPrice renders a rate with its currency code, e.g. "USD 1,250.00".
func FormatPrice(rate float64, currency string) string {
	out := pricePrinter.Sprintf("%.2f", rate)
	if currency == "" {
		return out
	}
	return currency + " " + out
}
