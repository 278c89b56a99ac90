package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	sipv1 "github.com/KasumiMercury/primind-sip-scheduler/internal/gen/sip/v1"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/repository"
)

type intakeHarness struct {
	useCase   app.IntakeUseCase
	repo      domain.IntakeRepository
	settings  domain.SettingsRepository
	scheduler *stubScheduler
	clock     *fixedClock
}

func setupIntakeUseCase(t *testing.T, publisher pubsub.Publisher) *intakeHarness {
	t.Helper()

	testDB := setupDB(t)
	repo := repository.NewIntakeRepository(testDB.DB)
	settings := repository.NewSettingsRepository(testDB.DB)
	sched := &stubScheduler{}
	clock := newFixedClock(monday)

	return &intakeHarness{
		useCase:   app.NewIntakeUseCase(repo, settings, publisher, sched, clock),
		repo:      repo,
		settings:  settings,
		scheduler: sched,
		clock:     clock,
	}
}

func TestRecordIntakeSuccess(t *testing.T) {
	tests := []struct {
		name              string
		input             app.RecordIntakeInput
		expectedTimestamp time.Time
	}{
		{
			name:              "explicit timestamp",
			input:             app.RecordIntakeInput{AmountMl: 250, Timestamp: monday.Add(-time.Hour)},
			expectedTimestamp: monday.Add(-time.Hour),
		},
		{
			name:              "zero timestamp defaults to now",
			input:             app.RecordIntakeInput{AmountMl: 500},
			expectedTimestamp: monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := pubsub.NewMockPublisher(ctrl)

			var published *sipv1.IntakeRecorded

			publisher.EXPECT().
				PublishIntakeRecorded(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, event *sipv1.IntakeRecorded) error {
					published = event

					return nil
				})

			h := setupIntakeUseCase(t, publisher)

			output, err := h.useCase.RecordIntake(context.Background(), tt.input)

			require.NoError(t, err)
			assert.NotEmpty(t, output.ID)
			assert.Equal(t, tt.input.AmountMl, output.AmountMl)
			assert.True(t, tt.expectedTimestamp.Equal(output.Timestamp))

			require.NotNil(t, published)
			assert.Equal(t, output.ID, published.GetIntakeId())
			assert.Equal(t, int32(tt.input.AmountMl), published.GetAmountMl())
			assert.True(t, tt.expectedTimestamp.Equal(published.GetTimestamp().AsTime()))
			assert.Equal(t, 1, h.scheduler.recordsInserted)

			id, err := domain.IntakeIDFromString(output.ID)
			require.NoError(t, err)

			stored, err := h.repo.FindByID(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.input.AmountMl, stored.AmountMl())
		})
	}
}

func TestRecordIntakePublishFailureSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := pubsub.NewMockPublisher(ctrl)
	publisher.EXPECT().
		PublishIntakeRecorded(gomock.Any(), gomock.Any()).
		Return(errors.New("bus unavailable"))

	h := setupIntakeUseCase(t, publisher)

	output, err := h.useCase.RecordIntake(context.Background(), app.RecordIntakeInput{AmountMl: 100})

	require.NoError(t, err)
	assert.Equal(t, 100, output.AmountMl)
	assert.Equal(t, 1, h.scheduler.recordsInserted)
}

func TestRecordIntakeError(t *testing.T) {
	tests := []struct {
		name          string
		input         app.RecordIntakeInput
		expectedField string
	}{
		{
			name:          "zero amount",
			input:         app.RecordIntakeInput{AmountMl: 0},
			expectedField: "amount_ml",
		},
		{
			name:          "negative amount",
			input:         app.RecordIntakeInput{AmountMl: -50},
			expectedField: "amount_ml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupIntakeUseCase(t, nil)

			_, err := h.useCase.RecordIntake(context.Background(), tt.input)

			var validationErr *app.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
			assert.Zero(t, h.scheduler.recordsInserted)
		})
	}
}

func TestListIntakesSuccess(t *testing.T) {
	tests := []struct {
		name            string
		order           string
		expectedAmounts []int
	}{
		{
			name:            "ascending by default",
			order:           "",
			expectedAmounts: []int{100, 200, 300},
		},
		{
			name:            "descending",
			order:           "desc",
			expectedAmounts: []int{300, 200, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupIntakeUseCase(t, nil)
			ctx := context.Background()

			for i, amount := range []int{100, 200, 300} {
				_, err := h.useCase.RecordIntake(ctx, app.RecordIntakeInput{
					AmountMl:  amount,
					Timestamp: monday.Add(-time.Duration(3-i) * time.Hour),
				})
				require.NoError(t, err)
			}

			output, err := h.useCase.ListIntakes(ctx, app.ListIntakesInput{
				Start: monday.Add(-24 * time.Hour),
				End:   monday,
				Order: tt.order,
			})

			require.NoError(t, err)
			assert.Equal(t, 3, output.Count)
			assert.Equal(t, 600, output.TotalMl)

			amounts := make([]int, 0, len(output.Intakes))
			for _, intake := range output.Intakes {
				amounts = append(amounts, intake.AmountMl)
			}

			assert.Equal(t, tt.expectedAmounts, amounts)
		})
	}
}

func TestListIntakesError(t *testing.T) {
	tests := []struct {
		name          string
		input         app.ListIntakesInput
		expectedField string
	}{
		{
			name:          "end before start",
			input:         app.ListIntakesInput{Start: monday, End: monday.Add(-time.Hour)},
			expectedField: "time_range",
		},
		{
			name:          "unknown order",
			input:         app.ListIntakesInput{Start: monday.Add(-time.Hour), End: monday, Order: "sideways"},
			expectedField: "order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupIntakeUseCase(t, nil)

			_, err := h.useCase.ListIntakes(context.Background(), tt.input)

			var validationErr *app.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestTodayIntakesSuccess(t *testing.T) {
	h := setupIntakeUseCase(t, nil)
	ctx := context.Background()

	// yesterday's late entry stays out of today's list
	timestamps := []time.Time{
		time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC),
	}
	for _, ts := range timestamps {
		_, err := h.useCase.RecordIntake(ctx, app.RecordIntakeInput{AmountMl: 300, Timestamp: ts})
		require.NoError(t, err)
	}

	output, err := h.useCase.TodayIntakes(ctx)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", output.Date)
	assert.Equal(t, 600, output.TotalMl)
	assert.Equal(t, domain.DefaultDailyTargetMl, output.DailyTargetMl)
	require.Len(t, output.Intakes, 2)
	assert.True(t, output.Intakes[0].Timestamp.After(output.Intakes[1].Timestamp))
}

func TestCorrectIntakeSuccess(t *testing.T) {
	h := setupIntakeUseCase(t, nil)
	ctx := context.Background()

	created, err := h.useCase.RecordIntake(ctx, app.RecordIntakeInput{AmountMl: 250, Timestamp: monday.Add(-time.Hour)})
	require.NoError(t, err)

	corrected, err := h.useCase.CorrectIntake(ctx, app.CorrectIntakeInput{ID: created.ID, AmountMl: 330})

	require.NoError(t, err)
	assert.Equal(t, created.ID, corrected.ID)
	assert.Equal(t, 330, corrected.AmountMl)
	assert.True(t, created.Timestamp.Equal(corrected.Timestamp))
}

func TestCorrectIntakeError(t *testing.T) {
	tests := []struct {
		name        string
		id          func(created app.IntakeOutput) string
		amountMl    int
		expectedErr error
		validation  bool
	}{
		{
			name:       "malformed id",
			id:         func(app.IntakeOutput) string { return "not-a-uuid" },
			amountMl:   100,
			validation: true,
		},
		{
			name:        "unknown id",
			id:          func(app.IntakeOutput) string { return domain.NewIntakeID().String() },
			amountMl:    100,
			expectedErr: app.ErrNotFound,
		},
		{
			name:       "non-positive amount",
			id:         func(created app.IntakeOutput) string { return created.ID },
			amountMl:   0,
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupIntakeUseCase(t, nil)
			ctx := context.Background()

			created, err := h.useCase.RecordIntake(ctx, app.RecordIntakeInput{AmountMl: 250})
			require.NoError(t, err)

			_, err = h.useCase.CorrectIntake(ctx, app.CorrectIntakeInput{ID: tt.id(created), AmountMl: tt.amountMl})

			require.Error(t, err)

			if tt.validation {
				assert.True(t, app.IsValidationError(err))
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestDeleteIntakeSuccess(t *testing.T) {
	h := setupIntakeUseCase(t, nil)
	ctx := context.Background()

	created, err := h.useCase.RecordIntake(ctx, app.RecordIntakeInput{AmountMl: 250})
	require.NoError(t, err)

	require.NoError(t, h.useCase.DeleteIntake(ctx, app.DeleteIntakeInput{ID: created.ID}))

	err = h.useCase.DeleteIntake(ctx, app.DeleteIntakeInput{ID: created.ID})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDeleteIntakeError(t *testing.T) {
	h := setupIntakeUseCase(t, nil)

	err := h.useCase.DeleteIntake(context.Background(), app.DeleteIntakeInput{ID: "garbage"})

	assert.True(t, app.IsValidationError(err))
}

func TestTodayProgressSuccess(t *testing.T) {
	h := setupIntakeUseCase(t, nil)
	ctx := context.Background()

	for _, ts := range []time.Time{
		time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC),
	} {
		_, err := h.useCase.RecordIntake(ctx, app.RecordIntakeInput{AmountMl: 400, Timestamp: ts})
		require.NoError(t, err)
	}

	progress := app.NewTodayProgress(h.repo, h.clock)

	total, err := progress.TodayTotal(ctx)

	require.NoError(t, err)
	assert.Equal(t, 800, total)
}
