package storage

import "time"

type BasicInfo struct {
	Customer       string `json:"customer"`
	ShipName       string `json:"ship_name"`
	Category       string `json:"category"`
	ModelName      string `json:"model_name"`
	CompletionDate string `json:"completion_date"`
}

// TimeSlot は1人の作業者の連続した作業区間。開始・終了は "HH:MM"（未入力は空文字）。
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Category  string `json:"category"`
}

// WorkerStats は1人分の集計結果。時間は表示用に小数第2位で丸め済み。
type WorkerStats struct {
	TravelHours   float64 `json:"travel_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	HolidayHours  float64 `json:"holiday_hours"`
	TotalCost     int64   `json:"total_cost"`
}

// MaterialLine の purchase_total / selling_total は派生列。
// quantity・単価の更新時にエンジン側で同期的に再計算される。
type MaterialLine struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	ProductName   string  `json:"product_name"`
	ModelType     string  `json:"model_type"`
	IsStock       bool    `json:"is_stock"`
	Supplier      string  `json:"supplier"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseTotal float64 `json:"purchase_total"`
	SellingPrice  float64 `json:"selling_price"`
	SellingTotal  float64 `json:"selling_total"`
	ShippingFee   float64 `json:"shipping_fee"`
	Carrier       string  `json:"carrier"`
}

type MaterialsTotals struct {
	PurchaseTotal float64 `json:"purchase_total"`
	SellingTotal  float64 `json:"selling_total"`
	ShippingFee   float64 `json:"shipping_fee"`
	Margin        float64 `json:"margin"`
}

// ReportDraft はウィザード全ステップ分の入力。
// WorkerTimes には未選択の作業者の行が残っていてもよく、集計には効かない。
type ReportDraft struct {
	BasicInfo       BasicInfo             `json:"basic_info"`
	SelectedWorkers []string              `json:"selected_workers"`
	WorkerTimes     map[string][]TimeSlot `json:"worker_times"`
	Materials       []MaterialLine        `json:"materials"`
}

type Report struct {
	ID int64 `json:"id"`
	ReportDraft
	CreatedAt time.Time `json:"created_at"`
}
