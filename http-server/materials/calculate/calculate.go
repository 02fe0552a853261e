package calculate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"next-golang/internal/service/materials"
	"next-golang/internal/storage"
)

// CalculateMaterials は行リストの集計（仕入・売値・送料・粗利）だけを返す。
func CalculateMaterials(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.materials.calculate.CalculateMaterials"

		var req struct {
			Materials []storage.MaterialLine `json:"materials"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, materials.Totals(req.Materials))
	}
}
