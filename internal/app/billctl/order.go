package billctl

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"restobill/go_backend/internal/domain/bill"
)

// Order is the YAML form of a bill, e.g.
//
//	gst_rate: 18
//	client: {name: Asha, phone: "9876543210"}
//	items:
//	  - {name: Paneer, quantity: 2, price: 150, plate: Full}
type Order struct {
	GSTRate string       `yaml:"gst_rate"`
	Client  *bill.Client `yaml:"client"`
	Items   []OrderItem  `yaml:"items"`
}

type OrderItem struct {
	Name     string `yaml:"name"`
	Quantity string `yaml:"quantity"`
	Price    string `yaml:"price"`
	Plate    string `yaml:"plate"`
}

func LoadOrder(path string) (Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Order{}, err
	}
	var o Order
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Order{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return o, nil
}

// Build replays the order through the bill model. taxOverride wins over the
// file's rate when set; defaultRate applies when neither is.
func (o Order) Build(profile bill.Profile, taxOverride string, defaultRate decimal.Decimal) (*bill.Bill, error) {
	rate := defaultRate
	for _, s := range []string{o.GSTRate, taxOverride} {
		if s == "" {
			continue
		}
		r, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("gst rate %q: %w", s, err)
		}
		rate = r
	}

	b := bill.New(profile, rate)
	for i, it := range o.Items {
		_, err := b.AddItem(bill.Draft{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Plate:    bill.Plate(it.Plate),
		})
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	if o.Client != nil {
		b.SetClient(o.Client)
	}
	return b, nil
}
