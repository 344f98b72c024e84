package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/ps-vitor/setam-sys/backend/internal/domain"
)

// ErrNoRecords is returned by FindAll before anything has been saved.
var ErrNoRecords = errors.New("no records saved yet")

type RecordRepository interface {
	Save(ctx context.Context, records []domain.Record) error
	FindAll(ctx context.Context) ([][]string, error)
}

// XLSXRecordRepository keeps records in a single-sheet workbook: a bold
// header row followed by one row per record. Saves and reads of the file are
// serialized.
type XLSXRecordRepository struct {
	mu   sync.Mutex
	path string
}

var _ RecordRepository = (*XLSXRecordRepository)(nil)

func NewXLSXRecordRepository(path string) *XLSXRecordRepository {
	return &XLSXRecordRepository{path: path}
}

func (r *XLSXRecordRepository) Path() string { return r.path }

// Save replaces the workbook with records. Every record writes its labels
// over the header cells, so the header ends up holding the labels of the
// last record.
func (r *XLSXRecordRepository) Save(ctx context.Context, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for _, rec := range records {
		for col, label := range rec.Labels() {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, label); err != nil {
				return fmt.Errorf("write header %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
				return fmt.Errorf("style header %s: %w", cell, err)
			}
		}
	}

	for i, rec := range records {
		for col, value := range rec.Values() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", r.path, err)
	}
	return nil
}

// FindAll reads the workbook back, header row first.
func (r *XLSXRecordRepository) FindAll(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
