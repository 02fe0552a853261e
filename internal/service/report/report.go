package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"next-golang/internal/service/labor"
	"next-golang/internal/service/materials"
	"next-golang/internal/storage"
)

// Summary は報告書1件分の集計。作業報告と材料持出の両方をまとめて返す。
type Summary struct {
	WorkerStats map[string]storage.WorkerStats `json:"worker_stats"`
	GrandTotal  int64                          `json:"grand_total"`
	Materials   storage.MaterialsTotals        `json:"materials"`
}

type Service struct {
	labor *labor.Engine
}

func NewService(laborEngine *labor.Engine) *Service {
	return &Service{labor: laborEngine}
}

// Summarize は労務費と材料費の集計を並行して行う。
// エラーになるのは厳格モードの検証だけで、通常モードでは必ず成功する。
func (s *Service) Summarize(ctx context.Context, draft storage.ReportDraft) (Summary, error) {
	var sum Summary

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.labor.ValidateSheet(draft.SelectedWorkers, draft.WorkerTimes); err != nil {
			return err
		}
		stats, total := s.labor.Calculate(draft.SelectedWorkers, draft.WorkerTimes)
		sum.WorkerStats = stats
		sum.GrandTotal = total
		return nil
	})
	g.Go(func() error {
		sum.Materials = materials.Totals(draft.Materials)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return sum, nil
}
