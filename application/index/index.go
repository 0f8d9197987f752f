package index

import (
	"context"
	stderrors "errors"
	"time"

	appwebsite "github.com/muhammadheryan/storefront-search/application/website"
	"github.com/muhammadheryan/storefront-search/cmd/config"
	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/model"
	productrepo "github.com/muhammadheryan/storefront-search/repository/product"
	searchrepo "github.com/muhammadheryan/storefront-search/repository/search"
	"github.com/muhammadheryan/storefront-search/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront-search/utils/errors"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	validatorx "github.com/muhammadheryan/storefront-search/utils/validator"
	"go.uber.org/zap"
)

// ItemPublisher queues index refreshes for the consumer.
type ItemPublisher interface {
	PublishItemIndex(ctx context.Context, msg rabbitmq.ItemIndexMessage) error
}

type IndexApp interface {
	CreateIndex(ctx context.Context) error
	ReindexItem(ctx context.Context, itemCode string) (*model.IndexItemResponse, error)
	RebuildIndex(ctx context.Context) (*model.RebuildIndexResponse, error)
}

type indexAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	searchRepo  searchrepo.SearchRepository
	websiteInfo appwebsite.WebsiteInfo
	publisher   ItemPublisher
	now         func() time.Time
}

// NewIndexApp wires index maintenance. With a nil publisher RebuildIndex
// reindexes every item inline.
func NewIndexApp(config *config.Config, productRepo productrepo.ProductRepository, searchRepo searchrepo.SearchRepository, websiteInfo appwebsite.WebsiteInfo, publisher ItemPublisher) IndexApp {
	return &indexAppImpl{
		config:      config,
		productRepo: productRepo,
		searchRepo:  searchRepo,
		websiteInfo: websiteInfo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *indexAppImpl) CreateIndex(ctx context.Context) error {
	err := s.searchRepo.CreateIndex(ctx, s.key(constant.WebsiteItemIndex), s.key(constant.WebsiteItemDocPrefix))
	if err != nil {
		logger.Error("[CreateIndex] error searchRepo.CreateIndex", zap.String("error", err.Error()))
		return searchError(err)
	}
	return nil
}

// ReindexItem writes the item's document and suggestions, or removes them when
// the item is missing or hidden from the website.
func (s *indexAppImpl) ReindexItem(ctx context.Context, itemCode string) (*model.IndexItemResponse, error) {
	if err := validatorx.ValidateStruct(&model.IndexItemRequest{ItemCode: itemCode}); err != nil {
		logger.Warn("[ReindexItem] invalid request", zap.String("error", validatorx.Describe(err)))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	item, err := s.productRepo.GetByCode(ctx, itemCode, s.now())
	if err != nil {
		logger.Error("[ReindexItem] error productRepo.GetByCode", zap.String("item_code", itemCode), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.websiteInfo.InvalidatePrice(ctx, itemCode); err != nil {
		logger.Warn("[ReindexItem] error websiteInfo.InvalidatePrice", zap.String("item_code", itemCode), zap.String("error", err.Error()))
	}

	docKey := s.key(constant.WebsiteItemDocPrefix + itemCode)
	nameDict := s.key(constant.WebsiteItemNameAutocomplete)

	if item == nil || !item.Visible {
		if err := s.searchRepo.DeleteDocument(ctx, docKey); err != nil {
			logger.Error("[ReindexItem] error searchRepo.DeleteDocument", zap.String("item_code", itemCode), zap.String("error", err.Error()))
			return nil, searchError(err)
		}
		if item != nil {
			if err := s.searchRepo.DeleteSuggestion(ctx, nameDict, webItemName(item)); err != nil {
				logger.Error("[ReindexItem] error searchRepo.DeleteSuggestion", zap.String("item_code", itemCode), zap.String("error", err.Error()))
				return nil, searchError(err)
			}
		}
		return &model.IndexItemResponse{ItemCode: itemCode, Indexed: false}, nil
	}

	if err := s.searchRepo.IndexDocument(ctx, &model.IndexDocument{Key: docKey, Fields: item.IndexFields()}); err != nil {
		logger.Error("[ReindexItem] error searchRepo.IndexDocument", zap.String("item_code", itemCode), zap.String("error", err.Error()))
		return nil, searchError(err)
	}
	if err := s.searchRepo.AddSuggestion(ctx, nameDict, webItemName(item), 1); err != nil {
		logger.Error("[ReindexItem] error searchRepo.AddSuggestion name", zap.String("item_code", itemCode), zap.String("error", err.Error()))
		return nil, searchError(err)
	}
	if item.ItemGroup != "" {
		if err := s.searchRepo.AddSuggestion(ctx, s.key(constant.WebsiteItemCategoryAutocomplete), item.ItemGroup, 1); err != nil {
			logger.Error("[ReindexItem] error searchRepo.AddSuggestion category", zap.String("item_code", itemCode), zap.String("error", err.Error()))
			return nil, searchError(err)
		}
	}

	return &model.IndexItemResponse{ItemCode: itemCode, Indexed: true}, nil
}

// RebuildIndex makes sure the index exists and refreshes every visible item,
// through the queue when one is configured.
func (s *indexAppImpl) RebuildIndex(ctx context.Context) (*model.RebuildIndexResponse, error) {
	if err := s.CreateIndex(ctx); err != nil {
		return nil, err
	}

	codes, err := s.productRepo.ListCodes(ctx, s.now())
	if err != nil {
		logger.Error("[RebuildIndex] error productRepo.ListCodes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		for _, code := range codes {
			msg := rabbitmq.ItemIndexMessage{ItemCode: code, RequestedAt: s.now()}
			if err := s.publisher.PublishItemIndex(ctx, msg); err != nil {
				logger.Error("[RebuildIndex] error publisher.PublishItemIndex", zap.String("item_code", code), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
		return &model.RebuildIndexResponse{Total: len(codes), Enqueued: true}, nil
	}

	for _, code := range codes {
		if _, err := s.ReindexItem(ctx, code); err != nil {
			return nil, err
		}
	}
	return &model.RebuildIndexResponse{Total: len(codes), Enqueued: false}, nil
}

func (s *indexAppImpl) key(name string) string {
	return constant.MakeKey(s.config.Search.KeyPrefix, name)
}

func webItemName(item *model.WebsiteItem) string {
	if item.ItemName != "" {
		return item.ItemName
	}
	return item.Name
}

func searchError(err error) error {
	if stderrors.Is(err, searchrepo.ErrIndexUnavailable) {
		return errors.SetCustomError(constant.ErrSearchUnavailable)
	}
	return errors.SetCustomError(constant.ErrInternal)
}
