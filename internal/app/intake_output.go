package app

import (
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

type IntakeOutput struct {
	ID        string
	Timestamp time.Time
	AmountMl  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type IntakesOutput struct {
	Intakes []IntakeOutput
	Count   int
	TotalMl int
}

type TodayIntakesOutput struct {
	Date          string
	Intakes       []IntakeOutput
	TotalMl       int
	DailyTargetMl int
}

func FromIntakeEntity(record *domain.IntakeRecord) IntakeOutput {
	return IntakeOutput{
		ID:        record.ID().String(),
		Timestamp: record.Timestamp(),
		AmountMl:  record.AmountMl(),
		CreatedAt: record.CreatedAt(),
		UpdatedAt: record.UpdatedAt(),
	}
}

func FromIntakeEntities(records []*domain.IntakeRecord) IntakesOutput {
	outputs := make([]IntakeOutput, 0, len(records))
	total := 0

	for _, r := range records {
		outputs = append(outputs, FromIntakeEntity(r))
		total += r.AmountMl()
	}

	return IntakesOutput{
		Intakes: outputs,
		Count:   len(outputs),
		TotalMl: total,
	}
}
