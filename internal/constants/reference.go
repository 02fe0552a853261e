package constants

// 参照データ。フロント側のドロップダウンと完全に一致させること。

var Workers = []string{"大竹", "豊島", "鈴木", "内田", "新人"}

var Customers = []string{"東海汽船", "清水港運", "焼津漁協", "鈴与海運", "その他"}

var Suppliers = []string{"モノタロウ", "アマゾン", "ハートストック", "JRC", "その他"}

// 時間区分コード
const (
	CategoryRegular  = "regular"
	CategoryOvertime = "overtime"
	CategoryHoliday  = "holiday"
	CategoryTravel   = "travel"
)

var TimeCategoryLabels = map[string]string{
	CategoryRegular:  "時間内",
	CategoryOvertime: "時間外",
	CategoryHoliday:  "休日",
	CategoryTravel:   "移動",
}

const (
	RegularRate = 7000 // 平日単価
	HolidayRate = 8400 // 休日単価
	TravelRate  = 0.8  // 移動費係数
)

const (
	DefaultSupplier = "モノタロウ"
	DefaultCarrier  = "大竹"
)
