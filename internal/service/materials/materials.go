package materials

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"next-golang/internal/catalog"
	"next-golang/internal/storage"
)

// Recorder は品名履歴の書き込み先。エンジンは書くだけで読まない。
type Recorder interface {
	Record(ctx context.Context, name string)
}

type Options struct {
	// Strict は数量・金額の負値をエラーにする
	Strict bool
}

// Engine は材料持出表の行更新と集計のエンジン。
type Engine struct {
	cat     catalog.Catalog
	history Recorder
	opts    Options
}

func NewEngine(cat catalog.Catalog, history Recorder, opts Options) *Engine {
	return &Engine{cat: cat, history: history, opts: opts}
}

// FieldUpdate は1行への単一フィールド更新指示。
type FieldUpdate struct {
	RowID string      `json:"row_id"`
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// Apply は対象行のフィールドを書き換え、派生列を同期的に再計算して返す。
// 対象行が無い場合は何もしない。他の行には一切手を触れない。
func (e *Engine) Apply(ctx context.Context, lines []storage.MaterialLine, upd FieldUpdate) []storage.MaterialLine {
	for i := range lines {
		if lines[i].ID != upd.RowID {
			continue
		}
		e.applyField(ctx, &lines[i], upd.Field, upd.Value)
		break
	}
	return lines
}

func (e *Engine) applyField(ctx context.Context, line *storage.MaterialLine, field string, value interface{}) {
	switch field {
	case "date":
		line.Date = asString(value)
	case "product_name":
		name := asString(value)
		line.ProductName = name
		if name != "" && e.history != nil {
			e.history.Record(ctx, name)
		}
	case "model_type":
		line.ModelType = asString(value)
	case "is_stock":
		line.IsStock = asBool(value)
	case "supplier":
		line.Supplier = asString(value)
	case "carrier":
		line.Carrier = asString(value)
	case "quantity":
		line.Quantity = asNumber(value)
		line.PurchaseTotal = line.Quantity * line.PurchasePrice
		line.SellingTotal = line.Quantity * line.SellingPrice
	case "purchase_price":
		line.PurchasePrice = asNumber(value)
		line.PurchaseTotal = line.Quantity * line.PurchasePrice
	case "selling_price":
		line.SellingPrice = asNumber(value)
		line.SellingTotal = line.Quantity * line.SellingPrice
	case "shipping_fee":
		line.ShippingFee = asNumber(value)
	default:
		// purchase_total / selling_total は派生列なので直接は書けない
	}
}

// ValidateUpdate は厳格モード時のみ負値を弾く。通常モードでは常にnil。
func (e *Engine) ValidateUpdate(upd FieldUpdate) error {
	if !e.opts.Strict {
		return nil
	}
	switch upd.Field {
	case "quantity", "purchase_price", "selling_price", "shipping_fee":
		if asNumber(upd.Value) < 0 {
			return fmt.Errorf("%s: negative value %v", upd.Field, upd.Value)
		}
	}
	return nil
}

// AddLine は既定値入りの新しい行を末尾に追加する。
func (e *Engine) AddLine(lines []storage.MaterialLine) []storage.MaterialLine {
	return append(lines, storage.MaterialLine{
		ID:       uuid.NewString(),
		Supplier: e.cat.DefaultSupplier,
		Quantity: 1,
		Carrier:  e.cat.DefaultCarrier,
	})
}

// RemoveLine はidが一致する行を取り除く。見つからなければ元のまま。
func RemoveLine(lines []storage.MaterialLine, id string) []storage.MaterialLine {
	out := make([]storage.MaterialLine, 0, len(lines))
	for _, line := range lines {
		if line.ID == id {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Totals は各行の確定済み合計列を足し込む。行ごとの式をここで計算し直しはしない。
func Totals(lines []storage.MaterialLine) storage.MaterialsTotals {
	var t storage.MaterialsTotals
	for _, line := range lines {
		t.PurchaseTotal += line.PurchaseTotal
		t.SellingTotal += line.SellingTotal
		t.ShippingFee += line.ShippingFee
	}
	t.Margin = t.SellingTotal - t.PurchaseTotal - t.ShippingFee
	return t
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// JSON経由の数値はfloat64で来るが、文字列で送ってくるクライアントも許容する。
func asNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	}
	return 0
}
