package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"next-golang/internal/storage"
)

// SaveReport は報告書ヘッダ・作業者・タイムスロット・材料行を1トランザクションで保存する。
func (s *Storage) SaveReport(ctx context.Context, draft storage.ReportDraft) (int64, error) {
	const op = "storage.mysql.SaveReport"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO ship_reports (customer, ship_name, category, model_name, completion_date)
		VALUES (?, ?, ?, ?, ?)`,
		draft.BasicInfo.Customer,
		draft.BasicInfo.ShipName,
		draft.BasicInfo.Category,
		draft.BasicInfo.ModelName,
		draft.BasicInfo.CompletionDate,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: 報告書ヘッダの保存に失敗: %w", op, err)
	}

	reportID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	selected := make(map[string]bool, len(draft.SelectedWorkers))
	for _, w := range draft.SelectedWorkers {
		selected[w] = true
	}

	workerStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_workers (report_id, worker, selected) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: prepare statement: %w", op, err)
	}

	slotStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_time_slots (report_id, worker, start_time, end_time, category, sort_slot)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: prepare statement: %w", op, err)
	}

	for worker, slots := range draft.WorkerTimes {
		_, err := workerStmt.ExecContext(ctx, reportID, worker, selected[worker])
		if err != nil {
			return 0, fmt.Errorf("%s: 作業者の保存に失敗 worker='%s': %w", op, worker, err)
		}

		for i, slot := range slots {
			_, err := slotStmt.ExecContext(ctx, reportID, worker, slot.StartTime, slot.EndTime, slot.Category, i)
			if err != nil {
				return 0, fmt.Errorf("%s: タイムスロットの保存に失敗 worker='%s': %w", op, worker, err)
			}
		}
	}

	matStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_materials
			(id, report_id, used_date, product_name, model_type, is_stock, supplier,
			 quantity, purchase_price, purchase_total, selling_price, selling_total,
			 shipping_fee, carrier, sort_line)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: prepare statement: %w", op, err)
	}

	for i, m := range draft.Materials {
		_, err := matStmt.ExecContext(ctx, m.ID, reportID, m.Date, m.ProductName, m.ModelType,
			m.IsStock, m.Supplier, m.Quantity, m.PurchasePrice, m.PurchaseTotal,
			m.SellingPrice, m.SellingTotal, m.ShippingFee, m.Carrier, i)
		if err != nil {
			return 0, fmt.Errorf("%s: 材料行の保存に失敗 id='%s': %w", op, m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return reportID, nil
}

// GetReport は保存済みの報告書を丸ごと復元する。
func (s *Storage) GetReport(ctx context.Context, id int64) (*storage.Report, error) {
	const op = "storage.mysql.GetReport"

	rep := &storage.Report{ID: id}
	rep.WorkerTimes = make(map[string][]storage.TimeSlot)

	err := s.db.QueryRowContext(ctx, `
		SELECT customer, ship_name, category, model_name, completion_date, created_at
		FROM ship_reports WHERE id = ?`, id).
		Scan(&rep.BasicInfo.Customer, &rep.BasicInfo.ShipName, &rep.BasicInfo.Category,
			&rep.BasicInfo.ModelName, &rep.BasicInfo.CompletionDate, &rep.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: report %d: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: 報告書ヘッダの取得に失敗: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT worker, selected FROM report_workers WHERE report_id = ? ORDER BY worker`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: 作業者の取得に失敗: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var worker string
		var sel bool
		if err := rows.Scan(&worker, &sel); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if sel {
			rep.SelectedWorkers = append(rep.SelectedWorkers, worker)
		}
		rep.WorkerTimes[worker] = nil
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: 作業者の読み取りに失敗: %w", op, err)
	}

	slotRows, err := s.db.QueryContext(ctx, `
		SELECT worker, start_time, end_time, category
		FROM report_time_slots WHERE report_id = ? ORDER BY worker, sort_slot`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: タイムスロットの取得に失敗: %w", op, err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var worker string
		var slot storage.TimeSlot
		if err := slotRows.Scan(&worker, &slot.StartTime, &slot.EndTime, &slot.Category); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rep.WorkerTimes[worker] = append(rep.WorkerTimes[worker], slot)
	}
	if err = slotRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: タイムスロットの読み取りに失敗: %w", op, err)
	}

	matRows, err := s.db.QueryContext(ctx, `
		SELECT id, used_date, product_name, model_type, is_stock, supplier,
		       quantity, purchase_price, purchase_total, selling_price, selling_total,
		       shipping_fee, carrier
		FROM report_materials WHERE report_id = ? ORDER BY sort_line`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: 材料行の取得に失敗: %w", op, err)
	}
	defer matRows.Close()

	for matRows.Next() {
		var m storage.MaterialLine
		err := matRows.Scan(&m.ID, &m.Date, &m.ProductName, &m.ModelType, &m.IsStock,
			&m.Supplier, &m.Quantity, &m.PurchasePrice, &m.PurchaseTotal,
			&m.SellingPrice, &m.SellingTotal, &m.ShippingFee, &m.Carrier)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rep.Materials = append(rep.Materials, m)
	}
	if err = matRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: 材料行の読み取りに失敗: %w", op, err)
	}

	return rep, nil
}
