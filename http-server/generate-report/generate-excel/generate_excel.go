package generate_excel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, id int64) ([]byte, error)
}

// GenerateReportExcel は保存済みの報告書をxlsxでダウンロードさせる。
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			http.Error(w, "Bad request: invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		data, err := gen.GenerateExcel(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "Report not found", http.StatusNotFound)
				return
			}
			log.Error("Excel生成に失敗", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="work_report_%d.xlsx"`, id))
		w.Write(data)
	}
}
