package labor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"next-golang/internal/catalog"
	"next-golang/internal/storage"
)

func newEngine(opts Options) *Engine {
	return NewEngine(catalog.Default(), opts)
}

func TestSlotHours(t *testing.T) {
	e := newEngine(Options{})

	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"通常の1日", "08:00", "17:30", 9.5},
		{"開始が空", "", "17:30", 0},
		{"終了が空", "08:00", "", 0},
		{"両方空", "", "", 0},
		{"数字でない", "morning", "17:00", 0},
		{"コロンなし", "0800", "17:00", 0},
		{"同時刻", "09:00", "09:00", 0},
		{"分単位", "09:15", "09:30", 0.25},
		// 終了<開始は負のまま通す
		{"日跨ぎ", "22:00", "06:00", -16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.SlotHours(tt.start, tt.end), 1e-9)
		})
	}
}

func TestSlotHours_OvernightWrap(t *testing.T) {
	e := newEngine(Options{OvernightWrap: true})

	assert.InDelta(t, 8.0, e.SlotHours("22:00", "06:00"), 1e-9)
	// 日中のスロットは補正されない
	assert.InDelta(t, 9.5, e.SlotHours("08:00", "17:30"), 1e-9)
}

func TestWorkerStats_CategoryAggregation(t *testing.T) {
	e := newEngine(Options{})

	slots := []storage.TimeSlot{
		{StartTime: "08:00", EndTime: "16:00", Category: "regular"},
		{StartTime: "16:00", EndTime: "18:00", Category: "overtime"},
		{StartTime: "08:00", EndTime: "12:00", Category: "holiday"},
		{StartTime: "07:00", EndTime: "08:00", Category: "travel"},
		// 区分なしは時間内扱い
		{StartTime: "13:00", EndTime: "14:00", Category: ""},
		{StartTime: "14:00", EndTime: "15:00", Category: "unknown"},
	}

	stats := e.WorkerStats(slots)

	assert.Equal(t, 1.0, stats.TravelHours)
	assert.Equal(t, 10.0, stats.RegularHours)
	assert.Equal(t, 2.0, stats.OvertimeHours)
	assert.Equal(t, 4.0, stats.HolidayHours)
	// 1*7000*0.8 + 10*7000 + 2*7000 + 4*8400 = 5600+70000+14000+33600
	assert.Equal(t, int64(123200), stats.TotalCost)
}

func TestWorkerStats_RegularPlusHoliday(t *testing.T) {
	e := newEngine(Options{})

	slots := []storage.TimeSlot{
		{StartTime: "08:00", EndTime: "16:00", Category: "regular"},
		{StartTime: "08:00", EndTime: "12:00", Category: "holiday"},
	}

	stats := e.WorkerStats(slots)

	// 8*7000 + 4*8400 = 89600
	assert.Equal(t, int64(89600), stats.TotalCost)
}

func TestWorkerStats_RoundsCostAndHours(t *testing.T) {
	e := newEngine(Options{})

	// 移動1分: 1/60h * 7000 * 0.8 = 93.33... → 93円
	slots := []storage.TimeSlot{
		{StartTime: "09:00", EndTime: "09:01", Category: "travel"},
	}

	stats := e.WorkerStats(slots)

	assert.Equal(t, int64(93), stats.TotalCost)
	// 時間は表示用に小数第2位へ
	assert.Equal(t, 0.02, stats.TravelHours)
}

func TestWorkerStats_EmptySlots(t *testing.T) {
	e := newEngine(Options{})

	stats := e.WorkerStats(nil)

	assert.Equal(t, storage.WorkerStats{}, stats)
}

func TestCalculate_SelectedWorkersOnly(t *testing.T) {
	e := newEngine(Options{})

	times := map[string][]storage.TimeSlot{
		"大竹": {{StartTime: "08:00", EndTime: "16:00", Category: "regular"}},
		// 未選択の作業者にデータが残っていても総合計には入らない
		"鈴木": {{StartTime: "08:00", EndTime: "16:00", Category: "holiday"}},
	}

	stats, grandTotal := e.Calculate([]string{"大竹"}, times)

	assert.Len(t, stats, 1)
	assert.Contains(t, stats, "大竹")
	assert.Equal(t, int64(56000), grandTotal)

	_, withBoth := e.Calculate([]string{"大竹", "鈴木"}, times)
	assert.Equal(t, int64(56000+33600), withBoth)
}

func TestCalculate_DuplicateSelectionCountsOnce(t *testing.T) {
	e := newEngine(Options{})

	times := map[string][]storage.TimeSlot{
		"大竹": {{StartTime: "08:00", EndTime: "16:00", Category: "regular"}},
	}

	stats, grandTotal := e.Calculate([]string{"大竹", "大竹"}, times)

	assert.Len(t, stats, 1)
	assert.Equal(t, int64(56000), grandTotal)
}

func TestCalculate_WorkerWithoutSheet(t *testing.T) {
	e := newEngine(Options{})

	stats, grandTotal := e.Calculate([]string{"新人"}, map[string][]storage.TimeSlot{})

	assert.Equal(t, storage.WorkerStats{}, stats["新人"])
	assert.Equal(t, int64(0), grandTotal)
}

func TestCalculate_Idempotent(t *testing.T) {
	e := newEngine(Options{})

	times := map[string][]storage.TimeSlot{
		"豊島": {
			{StartTime: "08:00", EndTime: "17:30", Category: "regular"},
			{StartTime: "18:00", EndTime: "20:15", Category: "overtime"},
		},
	}
	selected := []string{"豊島"}

	stats1, total1 := e.Calculate(selected, times)
	stats2, total2 := e.Calculate(selected, times)

	assert.Equal(t, stats1, stats2)
	assert.Equal(t, total1, total2)
}

func TestValidateSheet(t *testing.T) {
	strict := newEngine(Options{Strict: true})
	permissive := newEngine(Options{})

	bad := map[string][]storage.TimeSlot{
		"内田": {{StartTime: "25:99", EndTime: "17:00", Category: "regular"}},
	}
	empty := map[string][]storage.TimeSlot{
		"内田": {{StartTime: "", EndTime: "", Category: "regular"}},
	}

	assert.Error(t, strict.ValidateSheet([]string{"内田"}, bad))
	// 未入力はエラーにしない
	assert.NoError(t, strict.ValidateSheet([]string{"内田"}, empty))
	// 未選択の作業者の不正値は見ない
	assert.NoError(t, strict.ValidateSheet([]string{"大竹"}, bad))
	// 通常モードは常にnil
	assert.NoError(t, permissive.ValidateSheet([]string{"内田"}, bad))
}
