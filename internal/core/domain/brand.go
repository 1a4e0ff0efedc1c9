package domain

// Brand is a competitor brand with its current offers, in display order.
type Brand struct {
	ID                   string  `json:"id" yaml:"id"`
	Name                 string  `json:"name" yaml:"name"`
	MarketShare          float64 `json:"marketShare" yaml:"marketShare"`
	StockPrice           float64 `json:"stockPrice" yaml:"stockPrice"`
	RevenueInBillions    float64 `json:"revenueInBillions" yaml:"revenueInBillions"`
	CustomerSatisfaction float64 `json:"customerSatisfaction" yaml:"customerSatisfaction"`
	YearlyGrowth         float64 `json:"yearlyGrowth" yaml:"yearlyGrowth"`
	NewOffers            []Offer `json:"newOffers" yaml:"newOffers"`
}

// Offer is a plan sold by a brand. Features keep their original order.
type Offer struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Features []string `json:"features" yaml:"features"`
}

// BrandInput is a partial brand body.
type BrandInput struct {
	Name                 *string  `json:"name"`
	MarketShare          *float64 `json:"marketShare"`
	StockPrice           *float64 `json:"stockPrice"`
	RevenueInBillions    *float64 `json:"revenueInBillions"`
	CustomerSatisfaction *float64 `json:"customerSatisfaction"`
	YearlyGrowth         *float64 `json:"yearlyGrowth"`
	NewOffers            *[]Offer `json:"newOffers"`
}

// Brand builds a brand from the input. Offer ids are left as supplied.
func (in BrandInput) Brand(id string) Brand {
	b := Brand{ID: id, NewOffers: []Offer{}}
	set(&b.Name, in.Name)
	set(&b.MarketShare, in.MarketShare)
	set(&b.StockPrice, in.StockPrice)
	set(&b.RevenueInBillions, in.RevenueInBillions)
	set(&b.CustomerSatisfaction, in.CustomerSatisfaction)
	set(&b.YearlyGrowth, in.YearlyGrowth)
	if in.NewOffers != nil {
		b.NewOffers = NormalizeOffers(*in.NewOffers)
	}
	return b
}

// NormalizeOffers copies offers replacing nil feature lists with empty ones.
func NormalizeOffers(offers []Offer) []Offer {
	out := make([]Offer, len(offers))
	for i, o := range offers {
		o.Features = Strings(o.Features)
		out[i] = o
	}
	return out
}
