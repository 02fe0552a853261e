package labor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"next-golang/internal/catalog"
	"next-golang/internal/constants"
	"next-golang/internal/storage"
)

type Options struct {
	// Strict は不正な時刻文字列を0時間に落とさずエラーにする
	Strict bool
	// OvernightWrap は日跨ぎ（終了<開始）のスロットに24時間を足す
	OvernightWrap bool
}

// Engine は作業時間と労務費の計算エンジン。入力が同じなら出力は常に同じ。
type Engine struct {
	cat  catalog.Catalog
	opts Options
}

func NewEngine(cat catalog.Catalog, opts Options) *Engine {
	return &Engine{cat: cat, opts: opts}
}

// SlotHours は "HH:MM" の開始・終了から時間数を求める。
// どちらかが空または解釈できない場合は0。終了が開始より前のときは
// 負の値のまま返す（OvernightWrap時のみ+24h補正）。
func (e *Engine) SlotHours(start, end string) float64 {
	startMin, ok := parseClock(start)
	if !ok {
		return 0
	}
	endMin, ok := parseClock(end)
	if !ok {
		return 0
	}

	hours := float64(endMin-startMin) / 60
	if hours < 0 && e.opts.OvernightWrap {
		hours += 24
	}
	return hours
}

func parseClock(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// WorkerStats は1人分のスロットを区分ごとに合算して金額を出す。
// 区分が不明・未設定のスロットは時間内扱い。
func (e *Engine) WorkerStats(slots []storage.TimeSlot) storage.WorkerStats {
	var travel, regular, overtime, holiday float64

	for _, slot := range slots {
		hours := e.SlotHours(slot.StartTime, slot.EndTime)
		switch slot.Category {
		case constants.CategoryTravel:
			travel += hours
		case constants.CategoryOvertime:
			overtime += hours
		case constants.CategoryHoliday:
			holiday += hours
		default:
			regular += hours
		}
	}

	// 時間外も平日単価（割増なし）
	total := travel*e.cat.RegularRate*e.cat.TravelRate +
		regular*e.cat.RegularRate +
		overtime*e.cat.RegularRate +
		holiday*e.cat.HolidayRate

	return storage.WorkerStats{
		TravelHours:   round2(travel),
		RegularHours:  round2(regular),
		OvertimeHours: round2(overtime),
		HolidayHours:  round2(holiday),
		TotalCost:     roundYen(total),
	}
}

// Calculate は選択中の作業者だけを集計する。未選択の作業者のスロットは
// WorkerTimes に残っていても総合計には入らない。selected内の重複は1回だけ数える。
func (e *Engine) Calculate(selected []string, times map[string][]storage.TimeSlot) (map[string]storage.WorkerStats, int64) {
	stats := make(map[string]storage.WorkerStats, len(selected))
	var grandTotal int64

	for _, worker := range selected {
		if _, done := stats[worker]; done {
			continue
		}
		s := e.WorkerStats(times[worker])
		stats[worker] = s
		grandTotal += s.TotalCost
	}

	return stats, grandTotal
}

// ValidateSheet は厳格モード時のみ時刻文字列を検証する。通常モードでは常にnil。
func (e *Engine) ValidateSheet(selected []string, times map[string][]storage.TimeSlot) error {
	if !e.opts.Strict {
		return nil
	}

	for _, worker := range selected {
		for i, slot := range times[worker] {
			if err := validateClock(slot.StartTime); err != nil {
				return fmt.Errorf("%s: slot %d: %w", worker, i, err)
			}
			if err := validateClock(slot.EndTime); err != nil {
				return fmt.Errorf("%s: slot %d: %w", worker, i, err)
			}
		}
	}
	return nil
}

func validateClock(s string) error {
	if s == "" {
		// 未入力は許容（0時間として扱われる）
		return nil
	}
	h, m, found := strings.Cut(s, ":")
	if !found {
		return fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid time %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid time %q", s)
	}
	return nil
}

// roundYen は0.5を常に+∞方向へ丸めて整数円にする。
func roundYen(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// 表示用の丸め。金額計算には使わない。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
