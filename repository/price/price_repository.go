package price

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront-search/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PriceRepository interface {
	GetItemPrice(ctx context.Context, itemCode, priceList string) (*model.ItemPrice, error)
}

func NewPriceRepository(conn *sqlx.DB) PriceRepository {
	return &SQL{conn: conn}
}

const getItemPrice = `SELECT item_code, price_list, price_list_rate, COALESCE(currency, '') AS currency
FROM item_price
WHERE item_code = ? AND price_list = ? AND selling = 1
ORDER BY valid_from DESC
LIMIT 1`

// GetItemPrice returns nil without error when the item has no price on the list.
func (s *SQL) GetItemPrice(ctx context.Context, itemCode, priceList string) (*model.ItemPrice, error) {
	var price model.ItemPrice
	if err := s.conn.QueryRowxContext(ctx, getItemPrice, itemCode, priceList).StructScan(&price); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}
