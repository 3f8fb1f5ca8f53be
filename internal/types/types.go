package types

// Идентификаторы товаров магазина, клиент присылает их строкой.
const (
	ItemMovie = "item-movie"
	ItemGuide = "item-guide"
	ItemBadge = "item-badge"
)

// Официальные цены. Цене от клиента не доверяем, всегда сверяем с этой таблицей.
var officialPrices = map[string]int{
	ItemMovie: 100,
	ItemGuide: 500,
	ItemBadge: 1000,
}

// PriceOf возвращает официальную цену товара.
func PriceOf(itemID string) (int, bool) {
	price, found := officialPrices[itemID]
	return price, found
}

// PriceMatches сверяет цену от клиента с официальной.
// Для неизвестного товара всегда false. Дробная цена (100.5) не совпадет
// ни с одной, а 100.0 совпадает со 100.
func PriceMatches(itemID string, claimed float64) bool {
	price, found := PriceOf(itemID)
	if !found {
		return false
	}

	return float64(price) == claimed
}

// Тело запроса на покупку.
type PurchaseRequest struct {
	UserID    string  `json:"userId"`
	ItemID    string  `json:"itemId"`
	ItemPrice float64 `json:"itemPrice"`
}

// Нулевая цена считается отсутствующей, как и пустые строки.
func (r PurchaseRequest) Complete() bool {
	return r.UserID != "" && r.ItemID != "" && r.ItemPrice != 0
}

// Тело запроса на выдачу прав админа. Email нужен только для ответа.
type GrantAdminRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
