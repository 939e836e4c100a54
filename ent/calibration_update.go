// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/calibration"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// CalibrationUpdate is the builder for updating Calibration entities.
type CalibrationUpdate struct {
	config
	hooks    []Hook
	mutation *CalibrationMutation
}

// Where appends a list predicates to the CalibrationUpdate builder.
func (_u *CalibrationUpdate) Where(ps ...predicate.Calibration) *CalibrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *CalibrationUpdate) SetChallengeID(v string) *CalibrationUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableChallengeID(v *string) *CalibrationUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetOffset sets the "offset" field.
func (_u *CalibrationUpdate) SetOffset(v float64) *CalibrationUpdate {
	_u.mutation.ResetOffset()
	_u.mutation.SetOffset(v)
	return _u
}

// SetNillableOffset sets the "offset" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableOffset(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetOffset(*v)
	}
	return _u
}

// AddOffset adds value to the "offset" field.
func (_u *CalibrationUpdate) AddOffset(v float64) *CalibrationUpdate {
	_u.mutation.AddOffset(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *CalibrationUpdate) SetSampleCount(v int) *CalibrationUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableSampleCount(v *int) *CalibrationUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *CalibrationUpdate) AddSampleCount(v int) *CalibrationUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetMean sets the "mean" field.
func (_u *CalibrationUpdate) SetMean(v float64) *CalibrationUpdate {
	_u.mutation.ResetMean()
	_u.mutation.SetMean(v)
	return _u
}

// SetNillableMean sets the "mean" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableMean(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetMean(*v)
	}
	return _u
}

// AddMean adds value to the "mean" field.
func (_u *CalibrationUpdate) AddMean(v float64) *CalibrationUpdate {
	_u.mutation.AddMean(v)
	return _u
}

// SetMedian sets the "median" field.
func (_u *CalibrationUpdate) SetMedian(v float64) *CalibrationUpdate {
	_u.mutation.ResetMedian()
	_u.mutation.SetMedian(v)
	return _u
}

// SetNillableMedian sets the "median" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableMedian(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetMedian(*v)
	}
	return _u
}

// AddMedian adds value to the "median" field.
func (_u *CalibrationUpdate) AddMedian(v float64) *CalibrationUpdate {
	_u.mutation.AddMedian(v)
	return _u
}

// SetStddev sets the "stddev" field.
func (_u *CalibrationUpdate) SetStddev(v float64) *CalibrationUpdate {
	_u.mutation.ResetStddev()
	_u.mutation.SetStddev(v)
	return _u
}

// SetNillableStddev sets the "stddev" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableStddev(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetStddev(*v)
	}
	return _u
}

// AddStddev adds value to the "stddev" field.
func (_u *CalibrationUpdate) AddStddev(v float64) *CalibrationUpdate {
	_u.mutation.AddStddev(v)
	return _u
}

// SetP25 sets the "p25" field.
func (_u *CalibrationUpdate) SetP25(v float64) *CalibrationUpdate {
	_u.mutation.ResetP25()
	_u.mutation.SetP25(v)
	return _u
}

// SetNillableP25 sets the "p25" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableP25(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetP25(*v)
	}
	return _u
}

// AddP25 adds value to the "p25" field.
func (_u *CalibrationUpdate) AddP25(v float64) *CalibrationUpdate {
	_u.mutation.AddP25(v)
	return _u
}

// SetP75 sets the "p75" field.
func (_u *CalibrationUpdate) SetP75(v float64) *CalibrationUpdate {
	_u.mutation.ResetP75()
	_u.mutation.SetP75(v)
	return _u
}

// SetNillableP75 sets the "p75" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableP75(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetP75(*v)
	}
	return _u
}

// AddP75 adds value to the "p75" field.
func (_u *CalibrationUpdate) AddP75(v float64) *CalibrationUpdate {
	_u.mutation.AddP75(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CalibrationUpdate) SetConfidence(v float64) *CalibrationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableConfidence(v *float64) *CalibrationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CalibrationUpdate) AddConfidence(v float64) *CalibrationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CalibrationUpdate) SetNeedsReview(v bool) *CalibrationUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableNeedsReview(v *bool) *CalibrationUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *CalibrationUpdate) SetComputedAt(v time.Time) *CalibrationUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *CalibrationUpdate) SetNillableComputedAt(v *time.Time) *CalibrationUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// Mutation returns the CalibrationMutation object of the builder.
func (_u *CalibrationUpdate) Mutation() *CalibrationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalibrationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalibrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalibrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calibration.Table, calibration.Columns, sqlgraph.NewFieldSpec(calibration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(calibration.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Offset(); ok {
		_spec.SetField(calibration.FieldOffset, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOffset(); ok {
		_spec.AddField(calibration.FieldOffset, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(calibration.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(calibration.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mean(); ok {
		_spec.SetField(calibration.FieldMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMean(); ok {
		_spec.AddField(calibration.FieldMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Median(); ok {
		_spec.SetField(calibration.FieldMedian, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMedian(); ok {
		_spec.AddField(calibration.FieldMedian, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stddev(); ok {
		_spec.SetField(calibration.FieldStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStddev(); ok {
		_spec.AddField(calibration.FieldStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.P25(); ok {
		_spec.SetField(calibration.FieldP25, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP25(); ok {
		_spec.AddField(calibration.FieldP25, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.P75(); ok {
		_spec.SetField(calibration.FieldP75, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP75(); ok {
		_spec.AddField(calibration.FieldP75, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(calibration.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(calibration.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(calibration.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(calibration.FieldComputedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalibrationUpdateOne is the builder for updating a single Calibration entity.
type CalibrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalibrationMutation
}

// SetChallengeID sets the "challenge_id" field.
func (_u *CalibrationUpdateOne) SetChallengeID(v string) *CalibrationUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableChallengeID(v *string) *CalibrationUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetOffset sets the "offset" field.
func (_u *CalibrationUpdateOne) SetOffset(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetOffset()
	_u.mutation.SetOffset(v)
	return _u
}

// SetNillableOffset sets the "offset" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableOffset(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetOffset(*v)
	}
	return _u
}

// AddOffset adds value to the "offset" field.
func (_u *CalibrationUpdateOne) AddOffset(v float64) *CalibrationUpdateOne {
	_u.mutation.AddOffset(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *CalibrationUpdateOne) SetSampleCount(v int) *CalibrationUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableSampleCount(v *int) *CalibrationUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *CalibrationUpdateOne) AddSampleCount(v int) *CalibrationUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetMean sets the "mean" field.
func (_u *CalibrationUpdateOne) SetMean(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetMean()
	_u.mutation.SetMean(v)
	return _u
}

// SetNillableMean sets the "mean" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableMean(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetMean(*v)
	}
	return _u
}

// AddMean adds value to the "mean" field.
func (_u *CalibrationUpdateOne) AddMean(v float64) *CalibrationUpdateOne {
	_u.mutation.AddMean(v)
	return _u
}

// SetMedian sets the "median" field.
func (_u *CalibrationUpdateOne) SetMedian(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetMedian()
	_u.mutation.SetMedian(v)
	return _u
}

// SetNillableMedian sets the "median" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableMedian(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetMedian(*v)
	}
	return _u
}

// AddMedian adds value to the "median" field.
func (_u *CalibrationUpdateOne) AddMedian(v float64) *CalibrationUpdateOne {
	_u.mutation.AddMedian(v)
	return _u
}

// SetStddev sets the "stddev" field.
func (_u *CalibrationUpdateOne) SetStddev(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetStddev()
	_u.mutation.SetStddev(v)
	return _u
}

// SetNillableStddev sets the "stddev" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableStddev(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetStddev(*v)
	}
	return _u
}

// AddStddev adds value to the "stddev" field.
func (_u *CalibrationUpdateOne) AddStddev(v float64) *CalibrationUpdateOne {
	_u.mutation.AddStddev(v)
	return _u
}

// SetP25 sets the "p25" field.
func (_u *CalibrationUpdateOne) SetP25(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetP25()
	_u.mutation.SetP25(v)
	return _u
}

// SetNillableP25 sets the "p25" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableP25(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetP25(*v)
	}
	return _u
}

// AddP25 adds value to the "p25" field.
func (_u *CalibrationUpdateOne) AddP25(v float64) *CalibrationUpdateOne {
	_u.mutation.AddP25(v)
	return _u
}

// SetP75 sets the "p75" field.
func (_u *CalibrationUpdateOne) SetP75(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetP75()
	_u.mutation.SetP75(v)
	return _u
}

// SetNillableP75 sets the "p75" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableP75(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetP75(*v)
	}
	return _u
}

// AddP75 adds value to the "p75" field.
func (_u *CalibrationUpdateOne) AddP75(v float64) *CalibrationUpdateOne {
	_u.mutation.AddP75(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CalibrationUpdateOne) SetConfidence(v float64) *CalibrationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableConfidence(v *float64) *CalibrationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CalibrationUpdateOne) AddConfidence(v float64) *CalibrationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CalibrationUpdateOne) SetNeedsReview(v bool) *CalibrationUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableNeedsReview(v *bool) *CalibrationUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *CalibrationUpdateOne) SetComputedAt(v time.Time) *CalibrationUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *CalibrationUpdateOne) SetNillableComputedAt(v *time.Time) *CalibrationUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// Mutation returns the CalibrationMutation object of the builder.
func (_u *CalibrationUpdateOne) Mutation() *CalibrationMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalibrationUpdate builder.
func (_u *CalibrationUpdateOne) Where(ps ...predicate.Calibration) *CalibrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalibrationUpdateOne) Select(field string, fields ...string) *CalibrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Calibration entity.
func (_u *CalibrationUpdateOne) Save(ctx context.Context) (*Calibration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationUpdateOne) SaveX(ctx context.Context) *Calibration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalibrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalibrationUpdateOne) sqlSave(ctx context.Context) (_node *Calibration, err error) {
	_spec := sqlgraph.NewUpdateSpec(calibration.Table, calibration.Columns, sqlgraph.NewFieldSpec(calibration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Calibration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calibration.FieldID)
		for _, f := range fields {
			if !calibration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calibration.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(calibration.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Offset(); ok {
		_spec.SetField(calibration.FieldOffset, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOffset(); ok {
		_spec.AddField(calibration.FieldOffset, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(calibration.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(calibration.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mean(); ok {
		_spec.SetField(calibration.FieldMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMean(); ok {
		_spec.AddField(calibration.FieldMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Median(); ok {
		_spec.SetField(calibration.FieldMedian, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMedian(); ok {
		_spec.AddField(calibration.FieldMedian, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stddev(); ok {
		_spec.SetField(calibration.FieldStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStddev(); ok {
		_spec.AddField(calibration.FieldStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.P25(); ok {
		_spec.SetField(calibration.FieldP25, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP25(); ok {
		_spec.AddField(calibration.FieldP25, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.P75(); ok {
		_spec.SetField(calibration.FieldP75, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP75(); ok {
		_spec.AddField(calibration.FieldP75, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(calibration.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(calibration.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(calibration.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(calibration.FieldComputedAt, field.TypeTime, value)
	}
	_node = &Calibration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
