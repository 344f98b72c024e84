package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ps-vitor/setam-sys/backend/internal/domain"
)

type fakeScraper struct {
	result domain.RunResult
	err    error
}

func (f fakeScraper) Run(ctx context.Context) (domain.RunResult, error) {
	return f.result, f.err
}

type memoryRepo struct {
	saved   [][]domain.Record
	saveErr error
}

func (m *memoryRepo) Save(ctx context.Context, records []domain.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, records)
	return nil
}

func (m *memoryRepo) FindAll(ctx context.Context) ([][]string, error) {
	return nil, nil
}

func TestScrapeAndStore(t *testing.T) {
	repo := &memoryRepo{}
	result := domain.RunResult{Listings: 2, Records: []domain.Record{{}, {}}}
	svc := NewScraperService(fakeScraper{result: result}, repo, nil)

	got, err := svc.ScrapeAndStore(context.Background())
	require.NoError(t, err)
	require.Equal(t, result, got)
	require.Len(t, repo.saved, 1)
	require.Len(t, repo.saved[0], 2)
}

func TestScrapeAndStoreEmptyRunStillWrites(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewScraperService(fakeScraper{}, repo, nil)

	_, err := svc.ScrapeAndStore(context.Background())
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	require.Empty(t, repo.saved[0])
}

func TestScrapeAndStoreRunFailureWritesNothing(t *testing.T) {
	repo := &memoryRepo{}
	runErr := errors.New("site unreachable")
	svc := NewScraperService(fakeScraper{err: runErr}, repo, nil)

	_, err := svc.ScrapeAndStore(context.Background())
	require.ErrorIs(t, err, runErr)
	require.Empty(t, repo.saved)
}

func TestScrapeAndStoreSaveFailure(t *testing.T) {
	saveErr := errors.New("disk full")
	svc := NewScraperService(fakeScraper{}, &memoryRepo{saveErr: saveErr}, nil)

	_, err := svc.ScrapeAndStore(context.Background())
	require.ErrorIs(t, err, saveErr)
}
