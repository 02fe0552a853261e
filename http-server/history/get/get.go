package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type History interface {
	All() []string
}

// GetHistory は品名履歴を新しい順で返す。コンボボックスの候補用。
func GetHistory(log *slog.Logger, history History) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := history.All()
		if names == nil {
			names = []string{}
		}
		render.JSON(w, r, names)
	}
}
