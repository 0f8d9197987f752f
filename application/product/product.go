package product

import (
	"context"
	"time"

	appwebsite "github.com/muhammadheryan/storefront-search/application/website"
	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/model"
	productRepo "github.com/muhammadheryan/storefront-search/repository/product"
	"github.com/muhammadheryan/storefront-search/utils/errors"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	GetProductList(ctx context.Context, search string, start, limit int) ([]model.ProductCard, error)
	ListWebsiteItems(ctx context.Context, filter *model.ProductListFilter) ([]model.WebsiteItem, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
	websiteInfo appwebsite.WebsiteInfo
	maxLimit    int
	now         func() time.Time
}

func NewProductApp(productRepo productRepo.ProductRepository, websiteInfo appwebsite.WebsiteInfo, maxLimit int) ProductApp {
	return NewProductAppWithClock(productRepo, websiteInfo, maxLimit, time.Now)
}

// NewProductAppWithClock is NewProductApp with a fixed notion of "today".
func NewProductAppWithClock(productRepo productRepo.ProductRepository, websiteInfo appwebsite.WebsiteInfo, maxLimit int, now func() time.Time) ProductApp {
	if maxLimit <= 0 {
		maxLimit = constant.MaxProductListLimit
	}
	return &productAppImpl{
		productRepo: productRepo,
		websiteInfo: websiteInfo,
		maxLimit:    maxLimit,
		now:         now,
	}
}

// GetProductList returns one page of storefront items, best ranked first.
func (s *productAppImpl) GetProductList(ctx context.Context, search string, start, limit int) ([]model.ProductCard, error) {
	if start < 0 {
		start = 0
	}
	if limit <= 0 {
		limit = constant.DefaultProductListLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	items, err := s.ListWebsiteItems(ctx, &model.ProductListFilter{
		Search: search,
		Start:  start,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	cards := make([]model.ProductCard, 0, len(items))
	for i := range items {
		if err := s.websiteInfo.SetProductInfoForWebsite(ctx, &items[i]); err != nil {
			logger.Error("[GetProductList] error websiteInfo.SetProductInfoForWebsite",
				zap.String("item_code", items[i].ItemCode), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		cards = append(cards, FormatListItem(items[i]))
	}

	return cards, nil
}

// ListWebsiteItems runs the raw listing query without enrichment.
func (s *productAppImpl) ListWebsiteItems(ctx context.Context, filter *model.ProductListFilter) ([]model.WebsiteItem, error) {
	if filter.Today.IsZero() {
		filter.Today = s.now()
	}

	items, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListWebsiteItems] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return items, nil
}
