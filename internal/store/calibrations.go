package store

import (
	"context"
	"fmt"

	"github.com/ssanyal/recruitdojo/ent"
	entcalibration "github.com/ssanyal/recruitdojo/ent/calibration"
	"github.com/ssanyal/recruitdojo/internal/calibration"
)

// calibrationRepo implements CalibrationRepo using the ent client.
type calibrationRepo struct {
	client *ent.Client
}

func (r *calibrationRepo) Calibration(ctx context.Context, challengeID string) (*calibration.Record, error) {
	row, err := r.client.Calibration.Query().
		Where(entcalibration.ChallengeID(challengeID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query calibration: %w", err)
	}
	return calibrationFromRow(row), nil
}

func (r *calibrationRepo) SaveCalibration(ctx context.Context, rec *calibration.Record) error {
	row, err := r.client.Calibration.Query().
		Where(entcalibration.ChallengeID(rec.ChallengeID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Calibration.Create().
			SetChallengeID(rec.ChallengeID).
			SetOffset(rec.Offset).
			SetSampleCount(rec.SampleCount).
			SetMean(rec.Mean).
			SetMedian(rec.Median).
			SetStddev(rec.StdDev).
			SetP25(rec.P25).
			SetP75(rec.P75).
			SetConfidence(rec.Confidence).
			SetNeedsReview(rec.NeedsReview).
			SetComputedAt(rec.ComputedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create calibration: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query calibration: %w", err)
	}

	_, err = row.Update().
		SetOffset(rec.Offset).
		SetSampleCount(rec.SampleCount).
		SetMean(rec.Mean).
		SetMedian(rec.Median).
		SetStddev(rec.StdDev).
		SetP25(rec.P25).
		SetP75(rec.P75).
		SetConfidence(rec.Confidence).
		SetNeedsReview(rec.NeedsReview).
		SetComputedAt(rec.ComputedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update calibration: %w", err)
	}
	return nil
}

func (r *calibrationRepo) All(ctx context.Context) ([]*calibration.Record, error) {
	rows, err := r.client.Calibration.Query().
		Order(ent.Asc(entcalibration.FieldChallengeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query calibrations: %w", err)
	}
	out := make([]*calibration.Record, len(rows))
	for i, row := range rows {
		out[i] = calibrationFromRow(row)
	}
	return out, nil
}

// calibrationFromRow is the single row→domain mapping for calibrations.
func calibrationFromRow(row *ent.Calibration) *calibration.Record {
	return &calibration.Record{
		ChallengeID: row.ChallengeID,
		Offset:      row.Offset,
		SampleCount: row.SampleCount,
		Mean:        row.Mean,
		Median:      row.Median,
		StdDev:      row.Stddev,
		P25:         row.P25,
		P75:         row.P75,
		Confidence:  row.Confidence,
		NeedsReview: row.NeedsReview,
		ComputedAt:  row.ComputedAt,
	}
}
