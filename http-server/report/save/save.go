package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"next-golang/internal/catalog"
	"next-golang/internal/storage"
)

type ReportSaver interface {
	SaveReport(ctx context.Context, draft storage.ReportDraft) (int64, error)
}

// SaveReport は完成した報告書を保存する。
// ウィザードの進行条件と同じく、顧客名・船名と作業者1人以上を必須にする。
func SaveReport(log *slog.Logger, saver ReportSaver, cat catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.save.SaveReport"

		var req storage.ReportDraft
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.BasicInfo.Customer == "" {
			log.Warn("顧客名が未入力", slog.String("op", op))
			http.Error(w, "customer is required", http.StatusBadRequest)
			return
		}
		if req.BasicInfo.ShipName == "" {
			log.Warn("船名が未入力", slog.String("op", op))
			http.Error(w, "ship_name is required", http.StatusBadRequest)
			return
		}
		if len(req.SelectedWorkers) == 0 {
			log.Warn("作業者が未選択", slog.String("op", op))
			http.Error(w, "at least one worker must be selected", http.StatusBadRequest)
			return
		}

		for i, worker := range req.SelectedWorkers {
			if !cat.IsWorker(worker) {
				log.Error("未登録の作業者", slog.Int("index", i), slog.String("worker", worker))
				http.Error(w, fmt.Sprintf("unknown worker: %s", worker), http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveReport(ctx, req)
		if err != nil {
			log.Error("報告書の保存に失敗", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("報告書を保存",
			slog.Int64("report_id", id),
			slog.String("ship_name", req.BasicInfo.ShipName),
			slog.Int("workers", len(req.SelectedWorkers)),
			slog.Int("materials", len(req.Materials)),
		)

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
