package remove

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"next-golang/internal/service/materials"
	"next-golang/internal/storage"
)

type Resp struct {
	Materials []storage.MaterialLine  `json:"materials"`
	Totals    storage.MaterialsTotals `json:"totals"`
}

// RemoveMaterialLine はidが一致する行を取り除く。存在しないidはエラーにせずそのまま返す。
func RemoveMaterialLine(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.materials.remove.RemoveMaterialLine"

		var req struct {
			Materials []storage.MaterialLine `json:"materials"`
			ID        string                 `json:"id"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		lines := materials.RemoveLine(req.Materials, req.ID)

		render.JSON(w, r, Resp{
			Materials: lines,
			Totals:    materials.Totals(lines),
		})
	}
}
