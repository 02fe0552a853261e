package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"next-golang/internal/service/materials"
	"next-golang/internal/storage"
)

type LineUpdater interface {
	ValidateUpdate(upd materials.FieldUpdate) error
	Apply(ctx context.Context, lines []storage.MaterialLine, upd materials.FieldUpdate) []storage.MaterialLine
}

type Resp struct {
	Materials []storage.MaterialLine  `json:"materials"`
	Totals    storage.MaterialsTotals `json:"totals"`
}

// UpdateMaterialLine は1フィールドの更新を適用し、更新後のリストと集計を返す。
func UpdateMaterialLine(log *slog.Logger, updater LineUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.materials.update.UpdateMaterialLine"

		var req struct {
			Materials []storage.MaterialLine `json:"materials"`
			Update    materials.FieldUpdate  `json:"update"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Update.RowID == "" || req.Update.Field == "" {
			log.Warn("更新指示が不完全", slog.String("op", op), slog.Any("update", req.Update))
			http.Error(w, "Bad request: row_id and field are required", http.StatusBadRequest)
			return
		}

		if err := updater.ValidateUpdate(req.Update); err != nil {
			log.Warn("更新値が不正", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lines := updater.Apply(ctx, req.Materials, req.Update)

		render.JSON(w, r, Resp{
			Materials: lines,
			Totals:    materials.Totals(lines),
		})
	}
}
