package transport

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	appindex "github.com/muhammadheryan/storefront-search/application/index"
	appproduct "github.com/muhammadheryan/storefront-search/application/product"
	appsearch "github.com/muhammadheryan/storefront-search/application/search"
	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/model"
	"github.com/muhammadheryan/storefront-search/utils/errors"
	"github.com/spf13/cast"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp appproduct.ProductApp
	SearchApp  appsearch.SearchApp
	IndexApp   appindex.IndexApp
}

func NewTransport(productApp appproduct.ProductApp, searchApp appsearch.SearchApp, indexApp appindex.IndexApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()
	// item codes may contain slashes
	mux.UseEncodedPath()

	rh := &RestHandler{
		ProductApp: productApp,
		SearchApp:  searchApp,
		IndexApp:   indexApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/api/v1/products", rh.GetProductList).Methods(http.MethodGet, http.MethodPost)
	mux.HandleFunc("/api/v1/search", rh.Search).Methods(http.MethodGet, http.MethodPost)
	mux.HandleFunc("/api/v1/search/categories", rh.GetCategorySuggestions).Methods(http.MethodGet, http.MethodPost)

	// Internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/index", rh.CreateIndex).Methods(http.MethodPost)
	internal.HandleFunc("/index/rebuild", rh.RebuildIndex).Methods(http.MethodPost)
	internal.HandleFunc("/index/items/{item_code}", rh.ReindexItem).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// GetProductList handler
// @Summary List storefront products
// @Description Paginated website items, optionally filtered by a search term. Pagination inputs are coerced to integers.
// @Tags Product
// @Produce json
// @Param search query string false "Search term"
// @Param start query int false "Offset" default(0)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} Response{data=[]model.ProductCard}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [get]
func (s *RestHandler) GetProductList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ProductApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	search := r.FormValue("search")
	start := formInt(r, "start", 0)
	limit := formInt(r, "limit", constant.DefaultProductListLimit)

	res, err := s.ProductApp.GetProductList(ctx, search, start, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Search handler
// @Summary Search products
// @Description Full-text item search broadened with item name autocomplete suggestions.
// @Tags Search
// @Produce json
// @Param query query string true "Search text"
// @Param limit query int false "Number of suggestions used to expand the query" default(10)
// @Param fuzzy_search query bool false "Allow fuzzy suggestions for queries longer than 4 characters" default(true)
// @Success 200 {object} Response{data=[]map[string]interface{}}
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/search [get]
func (s *RestHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.SearchApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	req := &model.SearchRequest{
		Query:       r.FormValue("query"),
		Limit:       formInt(r, "limit", constant.DefaultSuggestionLimit),
		FuzzySearch: formBool(r, "fuzzy_search", true),
	}

	res, err := s.SearchApp.Search(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCategorySuggestions handler
// @Summary Category suggestions
// @Description Up to ten category names completing the query.
// @Tags Search
// @Produce json
// @Param query query string true "Category prefix"
// @Success 200 {object} Response{data=[]string}
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/search/categories [get]
func (s *RestHandler) GetCategorySuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.SearchApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.SearchApp.GetCategorySuggestions(ctx, r.FormValue("query"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateIndex handler
// @Summary Create the item search index
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /internal/v1/index [post]
func (s *RestHandler) CreateIndex(w http.ResponseWriter, r *http.Request) {
	if s.IndexApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.IndexApp.CreateIndex(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RebuildIndex handler
// @Summary Reindex every website item
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.RebuildIndexResponse}
// @Failure 401 {object} ErrorResponse
// @Router /internal/v1/index/rebuild [post]
func (s *RestHandler) RebuildIndex(w http.ResponseWriter, r *http.Request) {
	if s.IndexApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.IndexApp.RebuildIndex(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReindexItem handler
// @Summary Reindex one website item
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param item_code path string true "Item code"
// @Success 200 {object} Response{data=model.IndexItemResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /internal/v1/index/items/{item_code} [post]
func (s *RestHandler) ReindexItem(w http.ResponseWriter, r *http.Request) {
	if s.IndexApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	itemCode, err := url.PathUnescape(mux.Vars(r)["item_code"])
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.IndexApp.ReindexItem(r.Context(), itemCode)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// formInt reads an integer input the lenient way: absent means fallback,
// anything unparsable means 0 and fractions are truncated.
func formInt(r *http.Request, key string, fallback int) int {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return fallback
	}
	return int(cast.ToFloat64(v))
}

func formBool(r *http.Request, key string, fallback bool) bool {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return fallback
	}
	return cast.ToBool(v)
}
