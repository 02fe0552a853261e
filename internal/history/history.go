package history

import (
	"context"
	"log/slog"
	"sync"
)

// 履歴の上限。フロントのコンボボックスに出す分だけ持つ。
const maxEntries = 50

// Persister は履歴の外部保存先。nilの場合はメモリ内だけで動く。
type Persister interface {
	LoadHistory(ctx context.Context) ([]string, error)
	SaveHistory(ctx context.Context, names []string) error
}

// Store は品名の入力履歴。新しい順、重複なし、最大50件。
// ハンドラから並行に叩かれるのでロックで守る。
type Store struct {
	mu      sync.Mutex
	names   []string
	persist Persister
	log     *slog.Logger
}

func New(persist Persister, log *slog.Logger) *Store {
	s := &Store{persist: persist, log: log}

	if persist != nil {
		names, err := persist.LoadHistory(context.Background())
		if err != nil {
			log.Error("履歴の読み込みに失敗", slog.String("error", err.Error()))
		} else {
			if len(names) > maxEntries {
				names = names[:maxEntries]
			}
			s.names = names
		}
	}

	return s
}

// Record は未登録の品名だけを先頭に追加する。
// 登録済みの品名は順序を変えない（先頭への繰り上げはしない）。
func (s *Store) Record(ctx context.Context, name string) {
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.names {
		if n == name {
			return
		}
	}

	s.names = append([]string{name}, s.names...)
	if len(s.names) > maxEntries {
		s.names = s.names[:maxEntries]
	}

	s.save(ctx)
}

// All は新しい順のコピーを返す。
func (s *Store) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Clear は履歴を全消去する。
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = nil
	s.save(ctx)
}

// 呼び出し側でロックを取っていること。保存失敗はログだけ残して続行する。
func (s *Store) save(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveHistory(ctx, s.names); err != nil {
		s.log.Error("履歴の保存に失敗", slog.String("error", err.Error()))
	}
}
