package summary

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"next-golang/internal/service/report"
	"next-golang/internal/storage"
)

type Summarizer interface {
	Summarize(ctx context.Context, draft storage.ReportDraft) (report.Summary, error)
}

// SummarizeReport は作業報告と材料持出の集計をまとめて返す。
// フロントが最終確認画面を1リクエストで描けるようにするための口。
func SummarizeReport(log *slog.Logger, svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.summary.SummarizeReport"

		var req storage.ReportDraft
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sum, err := svc.Summarize(ctx, req)
		if err != nil {
			log.Warn("集計の検証エラー", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.JSON(w, r, sum)
	}
}
