package bill

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Plate string

const (
	PlateFull   Plate = "Full"
	PlateHalf   Plate = "Half"
	PlateSmall  Plate = "Small"
	PlateMedium Plate = "Medium"
	PlateLarge  Plate = "Large"
)

var Plates = []Plate{PlateFull, PlateHalf, PlateSmall, PlateMedium, PlateLarge}

// ParsePlate matches s against Plates ignoring case. Anything else,
// including the empty string, is a full plate.
func ParsePlate(s string) Plate {
	s = strings.TrimSpace(s)
	for _, p := range Plates {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return PlateFull
}

type LineItem struct {
	DisplayName string          `json:"display_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (it LineItem) Total() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Draft is the staged "new item" form. Quantity and Price hold the raw
// input text; they are only parsed when the draft is committed.
type Draft struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Plate    Plate  `json:"plate"`
}

func EmptyDraft() Draft {
	return Draft{Plate: PlateFull}
}

func (d Draft) lineItem() (LineItem, error) {
	if d.Name == "" {
		return LineItem{}, &ValidationError{Field: "name"}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(d.Quantity))
	if err != nil || qty <= 0 {
		return LineItem{}, &ValidationError{Field: "quantity"}
	}
	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil || price.IsNegative() {
		return LineItem{}, &ValidationError{Field: "price"}
	}
	plate := ParsePlate(string(d.Plate))
	return LineItem{
		DisplayName: d.Name + " (" + string(plate) + ")",
		Quantity:    qty,
		UnitPrice:   price,
	}, nil
}
