package mysql

import (
	"context"
	"fmt"
)

// LoadHistory は品名履歴を新しい順（position昇順）で返す。
func (s *Storage) LoadHistory(ctx context.Context) ([]string, error) {
	const op = "storage.mysql.LoadHistory"

	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM product_history ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: 履歴の取得に失敗: %w", op, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: 履歴の読み取りに失敗: %w", op, err)
	}

	return names, nil
}

// SaveHistory はリスト全体を書き直す。件数が小さい（最大50件）ので全消し全入れで十分。
func (s *Storage) SaveHistory(ctx context.Context, names []string) error {
	const op = "storage.mysql.SaveHistory"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_history`); err != nil {
		return fmt.Errorf("%s: 履歴のクリアに失敗: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO product_history (position, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}

	for i, name := range names {
		if _, err := stmt.ExecContext(ctx, i, name); err != nil {
			return fmt.Errorf("%s: 履歴の保存に失敗 name='%s': %w", op, name, err)
		}
	}

	return tx.Commit()
}
