package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type HistoryCleaner interface {
	Clear(ctx context.Context)
}

// ClearHistoryAdmin は品名履歴を全消去する。候補リストが汚れたときの保守用。
func ClearHistoryAdmin(log *slog.Logger, history HistoryCleaner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.update.ClearHistoryAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		history.Clear(ctx)

		log.Info("品名履歴をクリア", slog.String("op", op))

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
		})
	}
}
