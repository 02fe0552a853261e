package calculate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"next-golang/internal/storage"
)

type LaborCalculator interface {
	ValidateSheet(selected []string, times map[string][]storage.TimeSlot) error
	Calculate(selected []string, times map[string][]storage.TimeSlot) (map[string]storage.WorkerStats, int64)
}

type Resp struct {
	WorkerStats map[string]storage.WorkerStats `json:"worker_stats"`
	GrandTotal  int64                          `json:"grand_total"`
}

func CalculateLabor(log *slog.Logger, calc LaborCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.labor.calculate.CalculateLabor"

		var req struct {
			SelectedWorkers []string                      `json:"selected_workers"`
			WorkerTimes     map[string][]storage.TimeSlot `json:"worker_times"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := calc.ValidateSheet(req.SelectedWorkers, req.WorkerTimes); err != nil {
			log.Warn("時刻の入力が不正", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stats, grandTotal := calc.Calculate(req.SelectedWorkers, req.WorkerTimes)

		render.JSON(w, r, Resp{
			WorkerStats: stats,
			GrandTotal:  grandTotal,
		})
	}
}
