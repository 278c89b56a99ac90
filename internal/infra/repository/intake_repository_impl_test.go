package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/testutil"
)

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func setupIntakeRepository(t *testing.T) domain.IntakeRepository {
	t.Helper()

	testDB := testutil.SetupSQLiteDB(t)

	return repository.NewIntakeRepository(testDB.DB)
}

func saveIntake(t *testing.T, repo domain.IntakeRepository, ts time.Time, amountMl int) *domain.IntakeRecord {
	t.Helper()

	record, err := domain.NewIntakeRecord(ts, amountMl)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), record))

	return record
}

func TestIntakeSaveSuccess(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	record := saveIntake(t, repo, day.Add(8*time.Hour+123*time.Millisecond), 250)

	found, err := repo.FindByID(ctx, record.ID())

	require.NoError(t, err)
	assert.True(t, found.ID().Equals(record.ID()))
	assert.Equal(t, record.Timestamp(), found.Timestamp())
	assert.Equal(t, 250, found.AmountMl())
}

func TestIntakeFindByIDError(t *testing.T) {
	repo := setupIntakeRepository(t)

	_, err := repo.FindByID(context.Background(), domain.NewIntakeID())

	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
}

func TestIntakeFindByTimeRangeSuccess(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	before := saveIntake(t, repo, day.Add(-time.Millisecond), 100)
	atStart := saveIntake(t, repo, day, 200)
	sameInstantA := saveIntake(t, repo, day.Add(6*time.Hour), 300)
	sameInstantB := saveIntake(t, repo, day.Add(6*time.Hour), 400)
	atEnd := saveIntake(t, repo, day.Add(24*time.Hour), 500)

	tr, err := domain.NewTimeRange(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name     string
		order    domain.SortOrder
		expected []*domain.IntakeRecord
	}{
		{
			name:     "ascending with id tie-break",
			order:    domain.SortAscending,
			expected: []*domain.IntakeRecord{atStart, sameInstantA, sameInstantB},
		},
		{
			name:     "descending with id tie-break",
			order:    domain.SortDescending,
			expected: []*domain.IntakeRecord{sameInstantB, sameInstantA, atStart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.FindByTimeRange(ctx, tr, tt.order)

			require.NoError(t, err)
			require.Len(t, records, len(tt.expected))

			for i, r := range records {
				assert.True(t, tt.expected[i].ID().Equals(r.ID()), "position %d", i)
				assert.False(t, r.ID().Equals(before.ID()))
				assert.False(t, r.ID().Equals(atEnd.ID()))
			}
		})
	}
}

func TestIntakeSumByTimeRange(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	saveIntake(t, repo, day.Add(time.Hour), 250)
	saveIntake(t, repo, day.Add(2*time.Hour), 500)
	saveIntake(t, repo, day.Add(25*time.Hour), 1000)

	tr, err := domain.NewTimeRange(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	total, err := repo.SumByTimeRange(ctx, tr)
	require.NoError(t, err)
	assert.Equal(t, 750, total)

	empty, err := domain.NewTimeRange(day.Add(-48*time.Hour), day.Add(-24*time.Hour))
	require.NoError(t, err)

	total, err = repo.SumByTimeRange(ctx, empty)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestIntakeUpdateAmountSuccess(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	record := saveIntake(t, repo, day.Add(time.Hour), 250)
	require.NoError(t, record.CorrectAmount(330))

	require.NoError(t, repo.UpdateAmount(ctx, record))

	found, err := repo.FindByID(ctx, record.ID())
	require.NoError(t, err)
	assert.Equal(t, 330, found.AmountMl())
	assert.Equal(t, record.Timestamp(), found.Timestamp())
}

func TestIntakeUpdateAmountError(t *testing.T) {
	repo := setupIntakeRepository(t)

	record, err := domain.NewIntakeRecord(day, 100)
	require.NoError(t, err)

	err = repo.UpdateAmount(context.Background(), record)

	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
}

func TestIntakeDelete(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	record := saveIntake(t, repo, day, 100)

	require.NoError(t, repo.Delete(ctx, record.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, record.ID()), domain.ErrIntakeNotFound)

	_, err := repo.FindByID(ctx, record.ID())
	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
}

func TestIntakeDeleteOlderThan(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	old := saveIntake(t, repo, day.Add(-401*24*time.Hour), 100)
	saveIntake(t, repo, day.Add(-400*24*time.Hour), 200)
	saveIntake(t, repo, day, 300)

	deleted, err := repo.DeleteOlderThan(ctx, day.Add(-400*24*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(ctx, old.ID())
	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
}

func TestIntakeWithTxRollsBack(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	record, err := domain.NewIntakeRecord(day, 100)
	require.NoError(t, err)

	errAbort := errors.New("abort")

	err = repo.WithTx(ctx, func(txRepo domain.IntakeRepository) error {
		if err := txRepo.Save(ctx, record); err != nil {
			return err
		}

		return errAbort
	})

	assert.ErrorIs(t, err, errAbort)

	_, err = repo.FindByID(ctx, record.ID())
	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
}

func TestIntakeWithTxCommits(t *testing.T) {
	repo := setupIntakeRepository(t)
	ctx := context.Background()

	record, err := domain.NewIntakeRecord(day, 100)
	require.NoError(t, err)

	require.NoError(t, repo.WithTx(ctx, func(txRepo domain.IntakeRepository) error {
		return txRepo.Save(ctx, record)
	}))

	_, err = repo.FindByID(ctx, record.ID())
	assert.NoError(t, err)
}

func TestIntakeRepositoryPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewIntakeRepository(testDB.DB)
	ctx := context.Background()

	first := saveIntake(t, repo, day.Add(time.Hour), 250)
	saveIntake(t, repo, day.Add(2*time.Hour), 500)

	tr, err := domain.NewTimeRange(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	records, err := repo.FindByTimeRange(ctx, tr, domain.SortDescending)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[1].ID().Equals(first.ID()))

	total, err := repo.SumByTimeRange(ctx, tr)
	require.NoError(t, err)
	assert.Equal(t, 750, total)

	deleted, err := repo.DeleteOlderThan(ctx, day.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	testDB.CleanTable(t)
}

type intakeMutation struct {
	offset time.Duration
	amount int
}

func TestIntakeDailySumsMatchStoredTotalsAfterEdits(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("minus-eleven", -11*60*60),
		time.FixedZone("plus-five-thirty", 5*60*60+30*60),
		time.FixedZone("plus-fourteen", 14*60*60),
	}

	tests := []struct {
		name        string
		inserts     []intakeMutation
		corrections map[int]int
		deletes     []int
	}{
		{
			name: "inserts only",
			inserts: []intakeMutation{
				{offset: 1 * time.Hour, amount: 250},
				{offset: 23*time.Hour + 30*time.Minute, amount: 100},
				{offset: 26 * time.Hour, amount: 500},
			},
		},
		{
			name: "corrections across a day boundary",
			inserts: []intakeMutation{
				{offset: 30 * time.Minute, amount: 250},
				{offset: 23*time.Hour + 59*time.Minute, amount: 300},
				{offset: 24 * time.Hour, amount: 150},
			},
			corrections: map[int]int{0: 400, 2: 50},
		},
		{
			name: "deletes leave remaining days intact",
			inserts: []intakeMutation{
				{offset: 2 * time.Hour, amount: 200},
				{offset: 14 * time.Hour, amount: 350},
				{offset: 38 * time.Hour, amount: 600},
				{offset: 50 * time.Hour, amount: 125},
			},
			deletes: []int{1, 3},
		},
		{
			name: "corrected then deleted",
			inserts: []intakeMutation{
				{offset: 5 * time.Hour, amount: 330},
				{offset: 29 * time.Hour, amount: 250},
				{offset: 61 * time.Hour, amount: 750},
			},
			corrections: map[int]int{0: 180, 1: 900},
			deletes:     []int{1},
		},
		{
			name: "every record deleted",
			inserts: []intakeMutation{
				{offset: 3 * time.Hour, amount: 250},
				{offset: 27 * time.Hour, amount: 250},
			},
			deletes: []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupIntakeRepository(t)
			ctx := context.Background()

			records := make([]*domain.IntakeRecord, 0, len(tt.inserts))
			for _, m := range tt.inserts {
				records = append(records, saveIntake(t, repo, day.Add(m.offset), m.amount))
			}

			for i, amount := range tt.corrections {
				require.NoError(t, records[i].CorrectAmount(amount))
				require.NoError(t, repo.UpdateAmount(ctx, records[i]))
			}

			deleted := make(map[int]bool, len(tt.deletes))
			for _, i := range tt.deletes {
				require.NoError(t, repo.Delete(ctx, records[i].ID()))
				deleted[i] = true
			}

			expectedTotal := 0
			for i, r := range records {
				if !deleted[i] {
					expectedTotal += r.AmountMl()
				}
			}

			window, err := domain.NewTimeRange(day.AddDate(0, 0, -2), day.AddDate(0, 0, 5))
			require.NoError(t, err)

			stored, err := repo.FindByTimeRange(ctx, window, domain.SortAscending)
			require.NoError(t, err)
			assert.Len(t, stored, len(records)-len(deleted))

			storedTotal, err := repo.SumByTimeRange(ctx, window)
			require.NoError(t, err)
			assert.Equal(t, expectedTotal, storedTotal)

			for _, loc := range zones {
				sums := domain.DailySums(stored, loc, window)

				assert.Equal(t, expectedTotal, domain.TotalOf(sums), "zone %s", loc)

				for _, s := range sums {
					dayRange, err := domain.DayWindow(s.Date, s.Date, loc)
					require.NoError(t, err)

					dayTotal, err := repo.SumByTimeRange(ctx, dayRange)
					require.NoError(t, err)
					assert.Equal(t, dayTotal, s.TotalMl, "zone %s day %s", loc, s.Date)
				}
			}
		})
	}
}
