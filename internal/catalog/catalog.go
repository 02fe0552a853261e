package catalog

import "next-golang/internal/constants"

// Catalog は計算エンジンに注入する参照データ一式。
// 単価やリストを増やすときはここだけ触ればよく、エンジン側は変更不要。
type Catalog struct {
	Workers        []string          `json:"workers"`
	Customers      []string          `json:"customers"`
	Suppliers      []string          `json:"suppliers"`
	CategoryLabels map[string]string `json:"category_labels"`

	RegularRate float64 `json:"regular_rate"`
	HolidayRate float64 `json:"holiday_rate"`
	TravelRate  float64 `json:"travel_rate"`

	DefaultSupplier string `json:"default_supplier"`
	DefaultCarrier  string `json:"default_carrier"`
}

func Default() Catalog {
	return Catalog{
		Workers:         constants.Workers,
		Customers:       constants.Customers,
		Suppliers:       constants.Suppliers,
		CategoryLabels:  constants.TimeCategoryLabels,
		RegularRate:     constants.RegularRate,
		HolidayRate:     constants.HolidayRate,
		TravelRate:      constants.TravelRate,
		DefaultSupplier: constants.DefaultSupplier,
		DefaultCarrier:  constants.DefaultCarrier,
	}
}

func (c Catalog) IsWorker(name string) bool {
	for _, w := range c.Workers {
		if w == name {
			return true
		}
	}
	return false
}

// CategoryLabel はコードに対応する表示名を返す。未知のコードはそのまま返す。
func (c Catalog) CategoryLabel(code string) string {
	if label, ok := c.CategoryLabels[code]; ok {
		return label
	}
	return code
}
