package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/storefront-search/constant"
	indexmocks "github.com/muhammadheryan/storefront-search/mocks/application/index"
	productmocks "github.com/muhammadheryan/storefront-search/mocks/application/product"
	searchmocks "github.com/muhammadheryan/storefront-search/mocks/application/search"
	"github.com/muhammadheryan/storefront-search/model"
	"github.com/muhammadheryan/storefront-search/transport"
	cerr "github.com/muhammadheryan/storefront-search/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "s3cret"

type fields struct {
	productApp *productmocks.ProductApp
	searchApp  *searchmocks.SearchApp
	indexApp   *indexmocks.IndexApp
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestRestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		header     map[string]string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
		wantData   string
	}{
		{
			name:   "products: defaults when nothing is passed",
			method: http.MethodGet,
			target: "/api/v1/products",
			mockCall: func(f fields) {
				f.productApp.On("GetProductList", mock.Anything, "", 0, 12).
					Return([]model.ProductCard{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			wantData:   `[]`,
		},
		{
			name:   "products: pagination is coerced",
			method: http.MethodGet,
			target: "/api/v1/products?search=lamp&start=abc&limit=5.9",
			mockCall: func(f fields) {
				f.productApp.On("GetProductList", mock.Anything, "lamp", 0, 5).
					Return([]model.ProductCard{{ItemCode: "LAMP-1", ItemName: "Desk Lamp"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:   "products: store failure",
			method: http.MethodGet,
			target: "/api/v1/products?start=12",
			mockCall: func(f fields) {
				f.productApp.On("GetProductList", mock.Anything, "", 12, 12).
					Return(nil, cerr.SetCustomError(constant.ErrInternal)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "0001",
		},
		{
			name:   "search: fuzzy defaults to on",
			method: http.MethodGet,
			target: "/api/v1/search?query=red+shoe",
			mockCall: func(f fields) {
				f.searchApp.On("Search", mock.Anything, &model.SearchRequest{Query: "red shoe", Limit: 10, FuzzySearch: true}).
					Return([]model.SearchDocument{{"id": "website_item:SHOE-1"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			wantData:   `[{"id":"website_item:SHOE-1"}]`,
		},
		{
			name:   "search: explicit limit and fuzzy off",
			method: http.MethodGet,
			target: "/api/v1/search?query=shoe&limit=3&fuzzy_search=false",
			mockCall: func(f fields) {
				f.searchApp.On("Search", mock.Anything, &model.SearchRequest{Query: "shoe", Limit: 3, FuzzySearch: false}).
					Return([]model.SearchDocument{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			wantData:   `[]`,
		},
		{
			name:   "search: index unavailable",
			method: http.MethodGet,
			target: "/api/v1/search?query=shoe",
			mockCall: func(f fields) {
				f.searchApp.On("Search", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrSearchUnavailable)).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "0005",
		},
		{
			name:   "categories: suggestions returned as names",
			method: http.MethodGet,
			target: "/api/v1/search/categories?query=lig",
			mockCall: func(f fields) {
				f.searchApp.On("GetCategorySuggestions", mock.Anything, "lig").
					Return([]string{"Lighting"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			wantData:   `["Lighting"]`,
		},
		{
			name:       "internal: missing key is rejected",
			method:     http.MethodPost,
			target:     "/internal/v1/index/items/LAMP-1",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name:       "internal: wrong key is rejected",
			method:     http.MethodPost,
			target:     "/internal/v1/index",
			header:     map[string]string{"Authorization": "Bearer nope"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name:   "internal: reindex item",
			method: http.MethodPost,
			target: "/internal/v1/index/items/LAMP-1",
			header: map[string]string{"Authorization": "Bearer " + internalKey},
			mockCall: func(f fields) {
				f.indexApp.On("ReindexItem", mock.Anything, "LAMP-1").
					Return(&model.IndexItemResponse{ItemCode: "LAMP-1", Indexed: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			wantData:   `{"item_code":"LAMP-1","indexed":true}`,
		},
		{
			name:   "internal: escaped item code",
			method: http.MethodPost,
			target: "/internal/v1/index/items/LAMP%2F1%20XL",
			header: map[string]string{"Authorization": "Bearer " + internalKey},
			mockCall: func(f fields) {
				f.indexApp.On("ReindexItem", mock.Anything, "LAMP/1 XL").
					Return(&model.IndexItemResponse{ItemCode: "LAMP/1 XL", Indexed: false}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:   "internal: create index",
			method: http.MethodPost,
			target: "/internal/v1/index",
			header: map[string]string{"Authorization": "Bearer " + internalKey},
			mockCall: func(f fields) {
				f.indexApp.On("CreateIndex", mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:   "internal: rebuild",
			method: http.MethodPost,
			target: "/internal/v1/index/rebuild",
			header: map[string]string{"Authorization": "Bearer " + internalKey},
			mockCall: func(f fields) {
				f.indexApp.On("RebuildIndex", mock.Anything).
					Return(&model.RebuildIndexResponse{Total: 2, Enqueued: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			wantData:   `{"total":2,"enqueued":true}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				productApp: productmocks.NewProductApp(t),
				searchApp:  searchmocks.NewSearchApp(t),
				indexApp:   indexmocks.NewIndexApp(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			handler := transport.NewTransport(f.productApp, f.searchApp, f.indexApp, internalKey)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestIDHeader))

			var body envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, string(body.Data))
			}
		})
	}
}

func TestRestHandler_RequestIDIsPropagated(t *testing.T) {
	searchApp := searchmocks.NewSearchApp(t)
	searchApp.On("GetCategorySuggestions", mock.Anything, "").Return([]string{}, nil).Once()

	handler := transport.NewTransport(nil, searchApp, nil, "")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/categories", nil)
	req.Header.Set(constant.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(constant.RequestIDHeader))
}

func TestRestHandler_InternalRoutesDisabledWithoutKey(t *testing.T) {
	handler := transport.NewTransport(nil, nil, indexmocks.NewIndexApp(t), "")
	req := httptest.NewRequest(http.MethodPost, "/internal/v1/index", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
