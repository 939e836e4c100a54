// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/calibration"
)

// CalibrationCreate is the builder for creating a Calibration entity.
type CalibrationCreate struct {
	config
	mutation *CalibrationMutation
	hooks    []Hook
}

// SetChallengeID sets the "challenge_id" field.
func (_c *CalibrationCreate) SetChallengeID(v string) *CalibrationCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetOffset sets the "offset" field.
func (_c *CalibrationCreate) SetOffset(v float64) *CalibrationCreate {
	_c.mutation.SetOffset(v)
	return _c
}

// SetNillableOffset sets the "offset" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableOffset(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetOffset(*v)
	}
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *CalibrationCreate) SetSampleCount(v int) *CalibrationCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableSampleCount(v *int) *CalibrationCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetMean sets the "mean" field.
func (_c *CalibrationCreate) SetMean(v float64) *CalibrationCreate {
	_c.mutation.SetMean(v)
	return _c
}

// SetNillableMean sets the "mean" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableMean(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetMean(*v)
	}
	return _c
}

// SetMedian sets the "median" field.
func (_c *CalibrationCreate) SetMedian(v float64) *CalibrationCreate {
	_c.mutation.SetMedian(v)
	return _c
}

// SetNillableMedian sets the "median" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableMedian(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetMedian(*v)
	}
	return _c
}

// SetStddev sets the "stddev" field.
func (_c *CalibrationCreate) SetStddev(v float64) *CalibrationCreate {
	_c.mutation.SetStddev(v)
	return _c
}

// SetNillableStddev sets the "stddev" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableStddev(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetStddev(*v)
	}
	return _c
}

// SetP25 sets the "p25" field.
func (_c *CalibrationCreate) SetP25(v float64) *CalibrationCreate {
	_c.mutation.SetP25(v)
	return _c
}

// SetNillableP25 sets the "p25" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableP25(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetP25(*v)
	}
	return _c
}

// SetP75 sets the "p75" field.
func (_c *CalibrationCreate) SetP75(v float64) *CalibrationCreate {
	_c.mutation.SetP75(v)
	return _c
}

// SetNillableP75 sets the "p75" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableP75(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetP75(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CalibrationCreate) SetConfidence(v float64) *CalibrationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableConfidence(v *float64) *CalibrationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *CalibrationCreate) SetNeedsReview(v bool) *CalibrationCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableNeedsReview(v *bool) *CalibrationCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *CalibrationCreate) SetComputedAt(v time.Time) *CalibrationCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *CalibrationCreate) SetNillableComputedAt(v *time.Time) *CalibrationCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// Mutation returns the CalibrationMutation object of the builder.
func (_c *CalibrationCreate) Mutation() *CalibrationMutation {
	return _c.mutation
}

// Save creates the Calibration in the database.
func (_c *CalibrationCreate) Save(ctx context.Context) (*Calibration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalibrationCreate) SaveX(ctx context.Context) *Calibration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalibrationCreate) defaults() {
	if _, ok := _c.mutation.Offset(); !ok {
		v := calibration.DefaultOffset
		_c.mutation.SetOffset(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := calibration.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.Mean(); !ok {
		v := calibration.DefaultMean
		_c.mutation.SetMean(v)
	}
	if _, ok := _c.mutation.Median(); !ok {
		v := calibration.DefaultMedian
		_c.mutation.SetMedian(v)
	}
	if _, ok := _c.mutation.Stddev(); !ok {
		v := calibration.DefaultStddev
		_c.mutation.SetStddev(v)
	}
	if _, ok := _c.mutation.P25(); !ok {
		v := calibration.DefaultP25
		_c.mutation.SetP25(v)
	}
	if _, ok := _c.mutation.P75(); !ok {
		v := calibration.DefaultP75
		_c.mutation.SetP75(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := calibration.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := calibration.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := calibration.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalibrationCreate) check() error {
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "Calibration.challenge_id"`)}
	}
	if _, ok := _c.mutation.Offset(); !ok {
		return &ValidationError{Name: "offset", err: errors.New(`ent: missing required field "Calibration.offset"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "Calibration.sample_count"`)}
	}
	if _, ok := _c.mutation.Mean(); !ok {
		return &ValidationError{Name: "mean", err: errors.New(`ent: missing required field "Calibration.mean"`)}
	}
	if _, ok := _c.mutation.Median(); !ok {
		return &ValidationError{Name: "median", err: errors.New(`ent: missing required field "Calibration.median"`)}
	}
	if _, ok := _c.mutation.Stddev(); !ok {
		return &ValidationError{Name: "stddev", err: errors.New(`ent: missing required field "Calibration.stddev"`)}
	}
	if _, ok := _c.mutation.P25(); !ok {
		return &ValidationError{Name: "p25", err: errors.New(`ent: missing required field "Calibration.p25"`)}
	}
	if _, ok := _c.mutation.P75(); !ok {
		return &ValidationError{Name: "p75", err: errors.New(`ent: missing required field "Calibration.p75"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Calibration.confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Calibration.needs_review"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "Calibration.computed_at"`)}
	}
	return nil
}

func (_c *CalibrationCreate) sqlSave(ctx context.Context) (*Calibration, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalibrationCreate) createSpec() (*Calibration, *sqlgraph.CreateSpec) {
	var (
		_node = &Calibration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calibration.Table, sqlgraph.NewFieldSpec(calibration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(calibration.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Offset(); ok {
		_spec.SetField(calibration.FieldOffset, field.TypeFloat64, value)
		_node.Offset = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(calibration.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.Mean(); ok {
		_spec.SetField(calibration.FieldMean, field.TypeFloat64, value)
		_node.Mean = value
	}
	if value, ok := _c.mutation.Median(); ok {
		_spec.SetField(calibration.FieldMedian, field.TypeFloat64, value)
		_node.Median = value
	}
	if value, ok := _c.mutation.Stddev(); ok {
		_spec.SetField(calibration.FieldStddev, field.TypeFloat64, value)
		_node.Stddev = value
	}
	if value, ok := _c.mutation.P25(); ok {
		_spec.SetField(calibration.FieldP25, field.TypeFloat64, value)
		_node.P25 = value
	}
	if value, ok := _c.mutation.P75(); ok {
		_spec.SetField(calibration.FieldP75, field.TypeFloat64, value)
		_node.P75 = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(calibration.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(calibration.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(calibration.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	return _node, _spec
}

// CalibrationCreateBulk is the builder for creating many Calibration entities in bulk.
type CalibrationCreateBulk struct {
	config
	err      error
	builders []*CalibrationCreate
}

// Save creates the Calibration entities in the database.
func (_c *CalibrationCreateBulk) Save(ctx context.Context) ([]*Calibration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Calibration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalibrationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CalibrationCreateBulk) SaveX(ctx context.Context) []*Calibration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
