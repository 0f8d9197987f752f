package search_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	appsearch "github.com/muhammadheryan/storefront-search/application/search"
	"github.com/muhammadheryan/storefront-search/cmd/config"
	"github.com/muhammadheryan/storefront-search/constant"
	productmocks "github.com/muhammadheryan/storefront-search/mocks/application/product"
	searchmocks "github.com/muhammadheryan/storefront-search/mocks/repository/search"
	"github.com/muhammadheryan/storefront-search/model"
	searchrepo "github.com/muhammadheryan/storefront-search/repository/search"
	cerr "github.com/muhammadheryan/storefront-search/utils/errors"
	"github.com/stretchr/testify/mock"
)

const (
	nameDict     = "shop|website_items_name_dict"
	categoryDict = "shop|website_items_category_dict"
	itemIndex    = "shop|website_items_index"
)

func testConfig() *config.Config {
	return &config.Config{Search: config.SearchConfig{KeyPrefix: "shop"}}
}

func TestSearchApp_Search(t *testing.T) {
	type fields struct {
		searchRepo *searchmocks.SearchRepository
		productApp *productmocks.ProductApp
	}
	tests := []struct {
		name     string
		req      *model.SearchRequest
		mockCall func(f fields)
		want     []model.SearchDocument
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: empty query never touches the index",
			req:  &model.SearchRequest{Query: "", Limit: 10, FuzzySearch: true},
			want: []model.SearchDocument{},
		},
		{
			name: "success: query with only symbols is empty after sanitizing",
			req:  &model.SearchRequest{Query: "'%!", Limit: 10, FuzzySearch: true},
			want: []model.SearchDocument{},
		},
		{
			name: "success: suggestions expand the query",
			req:  &model.SearchRequest{Query: "red shoe", Limit: 10, FuzzySearch: true},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "red shoe", 10, true).
					Return([]model.Suggestion{{String: "red shoes"}, {String: "red sandals"}}, nil).
					Once()
				f.searchRepo.
					On("Search", mock.Anything, itemIndex, "red shoe|('red shoes')|('red sandals')").
					Return([]model.SearchDocument{
						{"id": "shop|website_item:SHOE-1", "web_item_name": "Red Shoes"},
						{"id": "shop|website_item:SAND-1", "web_item_name": "Red Sandals"},
					}, nil).
					Once()
			},
			want: []model.SearchDocument{
				{"id": "shop|website_item:SHOE-1", "web_item_name": "Red Shoes"},
				{"id": "shop|website_item:SAND-1", "web_item_name": "Red Sandals"},
			},
		},
		{
			name: "success: short query disables fuzzy matching",
			req:  &model.SearchRequest{Query: "shoe", Limit: 10, FuzzySearch: true},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "shoe", 10, false).
					Return([]model.Suggestion{}, nil).
					Once()
				f.searchRepo.
					On("Search", mock.Anything, itemIndex, "shoe").
					Return([]model.SearchDocument{}, nil).
					Once()
			},
			want: []model.SearchDocument{},
		},
		{
			name: "success: fuzzy off when not requested",
			req:  &model.SearchRequest{Query: "sandals", Limit: 3, FuzzySearch: false},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "sandals", 3, false).
					Return([]model.Suggestion{}, nil).
					Once()
				f.searchRepo.
					On("Search", mock.Anything, itemIndex, "sandals").
					Return([]model.SearchDocument{}, nil).
					Once()
			},
			want: []model.SearchDocument{},
		},
		{
			name: "success: query and suggestions are sanitized",
			req:  &model.SearchRequest{Query: "kid's boots!", FuzzySearch: true},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "kids boots", 10, true).
					Return([]model.Suggestion{{String: "kid's boots (winter)"}}, nil).
					Once()
				f.searchRepo.
					On("Search", mock.Anything, itemIndex, "kids boots|('kids boots winter')").
					Return([]model.SearchDocument{}, nil).
					Once()
			},
			want: []model.SearchDocument{},
		},
		{
			name: "success: index down falls back to the item store",
			req:  &model.SearchRequest{Query: "lamp", Limit: 5, FuzzySearch: true},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "lamp", 5, false).
					Return(nil, fmt.Errorf("%w: dial tcp: refused", searchrepo.ErrIndexUnavailable)).
					Once()
				f.productApp.
					On("ListWebsiteItems", mock.Anything, &model.ProductListFilter{Search: "lamp", Start: 0, Limit: 5}).
					Return([]model.WebsiteItem{{Name: "LAMP-1", ItemCode: "LAMP-1", ItemName: "Desk Lamp", ItemGroup: "Lighting"}}, nil).
					Once()
			},
			want: []model.SearchDocument{
				{
					"id":                   "shop|website_item:LAMP-1",
					"name":                 "LAMP-1",
					"item_code":            "LAMP-1",
					"web_item_name":        "Desk Lamp",
					"item_name":            "Desk Lamp",
					"item_group":           "Lighting",
					"description":          "",
					"web_long_description": "",
					"route":                "",
					"thumbnail":            "",
				},
			},
		},
		{
			name: "error: index down and item store down",
			req:  &model.SearchRequest{Query: "lamp", Limit: 5},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "lamp", 5, false).
					Return([]model.Suggestion{}, nil).
					Once()
				f.searchRepo.
					On("Search", mock.Anything, itemIndex, "lamp").
					Return(nil, fmt.Errorf("%w: no such index", searchrepo.ErrIndexUnavailable)).
					Once()
				f.productApp.
					On("ListWebsiteItems", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInternal)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrSearchUnavailable,
		},
		{
			name: "error: malformed query",
			req:  &model.SearchRequest{Query: "lamp", Limit: 5},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "lamp", 5, false).
					Return([]model.Suggestion{}, nil).
					Once()
				f.searchRepo.
					On("Search", mock.Anything, itemIndex, "lamp").
					Return(nil, fmt.Errorf("%w: Syntax error", searchrepo.ErrQueryMalformed)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrSearchQueryMalformed,
		},
		{
			name: "error: unclassified failure",
			req:  &model.SearchRequest{Query: "lamp", Limit: 5},
			mockCall: func(f fields) {
				f.searchRepo.
					On("GetSuggestions", mock.Anything, nameDict, "lamp", 5, false).
					Return(nil, errors.New("WRONGTYPE")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				searchRepo: searchmocks.NewSearchRepository(t),
				productApp: productmocks.NewProductApp(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appsearch.NewSearchApp(testConfig(), f.searchRepo, f.productApp)

			got, err := app.Search(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Search() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Search() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSearchApp_GetCategorySuggestions(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		mockCall func(repo *searchmocks.SearchRepository)
		want     []string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: empty query never touches the index",
			query: "",
			want:  []string{},
		},
		{
			name:  "success: raw query is passed through unsanitized",
			query: "kid's",
			mockCall: func(repo *searchmocks.SearchRepository) {
				repo.
					On("GetSuggestions", mock.Anything, categoryDict, "kid's", 10, false).
					Return([]model.Suggestion{{String: "Kid's Shoes"}, {String: "Kid's Toys"}}, nil).
					Once()
			},
			want: []string{"Kid's Shoes", "Kid's Toys"},
		},
		{
			name:  "error: index unavailable",
			query: "lig",
			mockCall: func(repo *searchmocks.SearchRepository) {
				repo.
					On("GetSuggestions", mock.Anything, categoryDict, "lig", 10, false).
					Return(nil, fmt.Errorf("%w: EOF", searchrepo.ErrIndexUnavailable)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrSearchUnavailable,
		},
		{
			name:  "error: other failure",
			query: "lig",
			mockCall: func(repo *searchmocks.SearchRepository) {
				repo.
					On("GetSuggestions", mock.Anything, categoryDict, "lig", 10, false).
					Return(nil, errors.New("boom")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := searchmocks.NewSearchRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appsearch.NewSearchApp(testConfig(), repo, nil)

			got, err := app.GetCategorySuggestions(context.Background(), tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCategorySuggestions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !cerr.IsType(err, tt.errCode) {
					t.Fatalf("error = %v, want type %v", err, tt.errCode)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetCategorySuggestions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
