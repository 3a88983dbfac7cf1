package invtotal

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// PriceTable is an in-memory Catalog.
//
// Its zero value is not usable, use NewPriceTable or LoadPriceTable.
type PriceTable struct {
	names  map[ItemID]string
	prices map[ItemID]int64
}

// NewPriceTable creates an empty price table. Coins are always known.
func NewPriceTable() *PriceTable {
	t := &PriceTable{
		names:  make(map[ItemID]string),
		prices: make(map[ItemID]int64),
	}
	t.Set(Coins, "Coins", 1)
	return t
}

// Set declares an item with its name and unit price.
func (t *PriceTable) Set(id ItemID, name string, price int64) {
	t.names[id] = name
	t.prices[id] = price
}

// Name implements Catalog.
func (t *PriceTable) Name(id ItemID) string { return t.names[id] }

// Price implements Catalog.
func (t *PriceTable) Price(id ItemID) int64 { return t.prices[id] }

// Len returns the number of items in the table.
func (t *PriceTable) Len() int { return len(t.prices) }

// DefaultPricePath selects every item object at the root of a price document.
const DefaultPricePath = "$[*]"

// LoadPriceTable reads a price table from a JSON document.
//
// path is a jsonpath expression selecting the list of item objects in the
// document. Each object must carry an "id", and may carry a "name" and a
// "price" (the last traded price, as a number or a numeric string), e.g.
//
//	{"data": [{"id": 314, "name": "Feather", "price": 3}]}
//
// with path "$.data[*]".
func LoadPriceTable(r io.Reader, path string) (*PriceTable, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid price document: %w", err)
	}
	if path == "" {
		path = DefaultPricePath
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath returns a single object when the path is not a wildcard.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	t := NewPriceTable()
	for i, jitem := range jlist {
		item, ok := jitem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("price entry #%d is not an object: %v", i, jitem)
		}
		id, err := jsonInt(item["id"])
		if err != nil {
			return nil, fmt.Errorf("price entry #%d: invalid id: %w", i, err)
		}
		var price int64
		if p, exists := item["price"]; exists && p != nil {
			if price, err = jsonInt(p); err != nil {
				return nil, fmt.Errorf("price entry #%d: invalid price: %w", i, err)
			}
		}
		name, _ := item["name"].(string)
		t.Set(ItemID(id), name, price)
	}
	return t, nil
}

// LoadPriceFile is LoadPriceTable on a file.
func LoadPriceFile(filename, path string) (*PriceTable, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadPriceTable(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// jsonInt converts a decoded json value to an integer.
func jsonInt(v any) (int64, error) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt64 || x < math.MinInt64 {
			return 0, fmt.Errorf("not an integer: %v", x)
		}
		return int64(x), nil
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
