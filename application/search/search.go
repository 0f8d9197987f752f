package search

import (
	"context"
	stderrors "errors"

	appproduct "github.com/muhammadheryan/storefront-search/application/product"
	"github.com/muhammadheryan/storefront-search/cmd/config"
	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/model"
	searchrepo "github.com/muhammadheryan/storefront-search/repository/search"
	"github.com/muhammadheryan/storefront-search/utils/errors"
	"github.com/muhammadheryan/storefront-search/utils/fulltext"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	"go.uber.org/zap"
)

type SearchApp interface {
	Search(ctx context.Context, req *model.SearchRequest) ([]model.SearchDocument, error)
	GetCategorySuggestions(ctx context.Context, query string) ([]string, error)
}

type searchAppImpl struct {
	config     *config.Config
	searchRepo searchrepo.SearchRepository
	productApp appproduct.ProductApp
}

// NewSearchApp wires the search use cases. productApp serves the plain
// listing query when the search index cannot be reached; it may be nil.
func NewSearchApp(config *config.Config, searchRepo searchrepo.SearchRepository, productApp appproduct.ProductApp) SearchApp {
	return &searchAppImpl{
		config:     config,
		searchRepo: searchRepo,
		productApp: productApp,
	}
}

// Search expands the query with item name suggestions and runs it against the
// full-text item index. Hits keep the index's relevance order.
func (s *searchAppImpl) Search(ctx context.Context, req *model.SearchRequest) ([]model.SearchDocument, error) {
	if req.Query == "" {
		// TODO: return top searches once search analytics are recorded
		return []model.SearchDocument{}, nil
	}

	term := fulltext.CleanUp(req.Query)
	if term == "" {
		return []model.SearchDocument{}, nil
	}

	limit := req.Limit
	if limit <= 0 {
		limit = constant.DefaultSuggestionLimit
	}

	suggestions, err := s.searchRepo.GetSuggestions(ctx,
		s.key(constant.WebsiteItemNameAutocomplete),
		term,
		limit,
		fulltext.UseFuzzy(req.FuzzySearch, term, constant.FuzzyMinQueryLength),
	)
	if err != nil {
		return s.handleSearchError(ctx, "[Search] error searchRepo.GetSuggestions", err, term, limit)
	}

	alternatives := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		alternatives = append(alternatives, suggestion.String)
	}
	query := fulltext.NewQuery(term, alternatives...)

	logger.Debug("[Search] executing query", zap.String("query", query.String()))

	docs, err := s.searchRepo.Search(ctx, s.key(constant.WebsiteItemIndex), query.String())
	if err != nil {
		return s.handleSearchError(ctx, "[Search] error searchRepo.Search", err, term, limit)
	}

	logger.Debug("[Search] search results", zap.Int("count", len(docs)))

	return docs, nil
}

// GetCategorySuggestions returns up to ten category names completing query.
func (s *searchAppImpl) GetCategorySuggestions(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	suggestions, err := s.searchRepo.GetSuggestions(ctx,
		s.key(constant.WebsiteItemCategoryAutocomplete),
		query,
		constant.CategorySuggestionLimit,
		false,
	)
	if err != nil {
		logger.Error("[GetCategorySuggestions] error searchRepo.GetSuggestions", zap.String("error", err.Error()))
		if stderrors.Is(err, searchrepo.ErrIndexUnavailable) {
			return nil, errors.SetCustomError(constant.ErrSearchUnavailable)
		}
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	names := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		names = append(names, suggestion.String)
	}
	return names, nil
}

func (s *searchAppImpl) handleSearchError(ctx context.Context, msg string, err error, term string, limit int) ([]model.SearchDocument, error) {
	logger.Error(msg, zap.String("error", err.Error()))

	switch {
	case stderrors.Is(err, searchrepo.ErrQueryMalformed):
		return nil, errors.SetCustomError(constant.ErrSearchQueryMalformed)
	case stderrors.Is(err, searchrepo.ErrIndexUnavailable):
		return s.fallbackSearch(ctx, term, limit)
	}
	return nil, errors.SetCustomError(constant.ErrInternal)
}

// fallbackSearch answers from the item store with the listing query when the
// index is down. Documents carry the same field names as indexed ones.
func (s *searchAppImpl) fallbackSearch(ctx context.Context, term string, limit int) ([]model.SearchDocument, error) {
	if s.productApp == nil {
		return nil, errors.SetCustomError(constant.ErrSearchUnavailable)
	}

	logger.Warn("[Search] search index unavailable, falling back to item store", zap.String("term", term))

	items, err := s.productApp.ListWebsiteItems(ctx, &model.ProductListFilter{
		Search: term,
		Start:  0,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrSearchUnavailable)
	}

	docs := make([]model.SearchDocument, 0, len(items))
	for _, item := range items {
		doc := model.SearchDocument(item.IndexFields())
		doc["id"] = s.key(constant.WebsiteItemDocPrefix + item.ItemCode)
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *searchAppImpl) key(name string) string {
	return constant.MakeKey(s.config.Search.KeyPrefix, name)
}
