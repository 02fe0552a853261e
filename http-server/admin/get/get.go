package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"next-golang/internal/catalog"
)

// GetCatalogAdmin は参照データ一式（作業者・顧客・仕入先・単価）を返す。
func GetCatalogAdmin(log *slog.Logger, cat catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, cat)
	}
}
