package values

type Config interface {
}

type StorefrontValues struct {
	SuggestLatencyMs  int    `yaml:"suggest-latency-ms"`
	LowStockThreshold int    `yaml:"low-stock-threshold"`
	Currency          string `yaml:"currency"`
}

type PromoTable struct {
	Codes map[string]float64 `yaml:"codes"`
}

func DefaultPromoTable() PromoTable {
	return PromoTable{
		Codes: map[string]float64{
			"WELCOME10": 0.1,
			"SUMMER20":  0.2,
		},
	}
}
