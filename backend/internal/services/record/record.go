package record

import (
	"context"

	"github.com/ps-vitor/setam-sys/backend/internal/repositories"
)

// Sheet is a stored export: the header row and the data rows.
type Sheet struct {
	Header []string
	Rows   [][]string
}

type RecordService struct {
	repo repositories.RecordRepository
}

func NewRecordService(repo repositories.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

func (s *RecordService) FindAll(ctx context.Context) (Sheet, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return Sheet{}, err
	}
	if len(rows) == 0 {
		return Sheet{Header: []string{}, Rows: [][]string{}}, nil
	}
	return Sheet{Header: rows[0], Rows: rows[1:]}, nil
}
