package product

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductListFilter) ([]model.WebsiteItem, error)
	GetByCode(ctx context.Context, itemCode string, today time.Time) (*model.WebsiteItem, error)
	ListCodes(ctx context.Context, today time.Time) ([]string, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	websiteItemColumns = `SELECT I.name, COALESCE(I.item_name, '') AS item_name, I.item_code, COALESCE(I.route, '') AS route,
	COALESCE(I.image, '') AS image, COALESCE(I.website_image, '') AS website_image, COALESCE(I.thumbnail, '') AS thumbnail,
	COALESCE(I.item_group, '') AS item_group, COALESCE(I.description, '') AS description,
	COALESCE(I.web_long_description, '') AS website_description, I.is_stock_item,
	CASE WHEN (S.actual_qty - S.reserved_qty) > 0 THEN 1 ELSE 0 END AS in_stock,
	COALESCE(I.website_warehouse, '') AS website_warehouse, I.has_batch_no,
	COALESCE(I.weightage, 0) AS weightage, I.modified`

	websiteItemFrom = `
FROM item I
LEFT JOIN bin S ON I.item_code = S.item_code AND I.website_warehouse = S.warehouse`

	selectWebsiteItem = websiteItemColumns + `, 1 AS visible` + websiteItemFrom

	visibleItemCondition = `I.show_in_website = 1
	AND I.disabled = 0
	AND (I.end_of_life IS NULL OR I.end_of_life = '` + constant.EndOfLifeZeroDate + `' OR I.end_of_life > ?)`

	searchCondition = `(I.web_long_description LIKE ? ESCAPE '\\'
	OR I.description LIKE ? ESCAPE '\\'
	OR I.item_name LIKE ? ESCAPE '\\'
	OR I.name LIKE ? ESCAPE '\\')`

	listOrder = ` ORDER BY I.weightage DESC, in_stock DESC, I.modified DESC LIMIT ? OFFSET ?`

	getItemByCode = websiteItemColumns + `,
	CASE WHEN ` + visibleItemCondition + ` THEN 1 ELSE 0 END AS visible` + websiteItemFrom + `
WHERE I.item_code = ?
LIMIT 1`

	listVisibleCodes = `SELECT I.item_code FROM item I WHERE ` + visibleItemCondition + ` ORDER BY I.item_code`
)

// BuildListQuery composes the storefront listing query and its arguments.
// User input only ever travels as bound arguments.
func BuildListQuery(filter *model.ProductListFilter) (string, []any) {
	args := make([]any, 0, 7)

	var b strings.Builder
	b.WriteString(selectWebsiteItem)
	b.WriteString("\nWHERE ")
	b.WriteString(visibleItemCondition)
	args = append(args, filter.Today.Format(time.DateOnly))

	if filter.Search != "" {
		b.WriteString("\n\tAND ")
		b.WriteString(searchCondition)
		pattern := "%" + EscapeLike(filter.Search) + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	b.WriteString(listOrder)
	args = append(args, filter.Limit, filter.Start)

	return b.String(), args
}

// EscapeLike escapes LIKE wildcards so the term matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s *SQL) List(ctx context.Context, filter *model.ProductListFilter) ([]model.WebsiteItem, error) {
	query, args := BuildListQuery(filter)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.WebsiteItem, 0, filter.Limit)
	for rows.Next() {
		var it model.WebsiteItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByCode returns the item whatever its visibility, with Visible telling
// whether the storefront may show it. A missing item yields nil.
func (s *SQL) GetByCode(ctx context.Context, itemCode string, today time.Time) (*model.WebsiteItem, error) {
	var item model.WebsiteItem
	if err := s.conn.QueryRowxContext(ctx, getItemByCode, today.Format(time.DateOnly), itemCode).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) ListCodes(ctx context.Context, today time.Time) ([]string, error) {
	codes := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &codes, listVisibleCodes, today.Format(time.DateOnly)); err != nil {
		return nil, err
	}
	return codes, nil
}
