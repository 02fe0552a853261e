package add

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"next-golang/internal/service/materials"
	"next-golang/internal/storage"
)

type LineAdder interface {
	AddLine(lines []storage.MaterialLine) []storage.MaterialLine
}

type Resp struct {
	Materials []storage.MaterialLine  `json:"materials"`
	Totals    storage.MaterialsTotals `json:"totals"`
}

// AddMaterialLine は既定値入りの新しい行を末尾に足して返す。
func AddMaterialLine(log *slog.Logger, adder LineAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.materials.add.AddMaterialLine"

		var req struct {
			Materials []storage.MaterialLine `json:"materials"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		lines := adder.AddLine(req.Materials)

		render.JSON(w, r, Resp{
			Materials: lines,
			Totals:    materials.Totals(lines),
		})
	}
}
