// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
)

// ReferenceAnswerCreate is the builder for creating a ReferenceAnswer entity.
type ReferenceAnswerCreate struct {
	config
	mutation *ReferenceAnswerMutation
	hooks    []Hook
}

// SetUUID sets the "uuid" field.
func (_c *ReferenceAnswerCreate) SetUUID(v uuid.UUID) *ReferenceAnswerCreate {
	_c.mutation.SetUUID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ReferenceAnswerCreate) SetChallengeID(v string) *ReferenceAnswerCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ReferenceAnswerCreate) SetText(v string) *ReferenceAnswerCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ReferenceAnswerCreate) SetEmbedding(v []float64) *ReferenceAnswerCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ReferenceAnswerCreate) SetScore(v int) *ReferenceAnswerCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ReferenceAnswerCreate) SetSource(v string) *ReferenceAnswerCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ReferenceAnswerCreate) SetNillableSource(v *string) *ReferenceAnswerCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ReferenceAnswerCreate) SetVerified(v bool) *ReferenceAnswerCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ReferenceAnswerCreate) SetNillableVerified(v *bool) *ReferenceAnswerCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ReferenceAnswerCreate) SetActive(v bool) *ReferenceAnswerCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ReferenceAnswerCreate) SetNillableActive(v *bool) *ReferenceAnswerCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferenceAnswerCreate) SetCreatedAt(v time.Time) *ReferenceAnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferenceAnswerCreate) SetNillableCreatedAt(v *time.Time) *ReferenceAnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReferenceAnswerMutation object of the builder.
func (_c *ReferenceAnswerCreate) Mutation() *ReferenceAnswerMutation {
	return _c.mutation
}

// Save creates the ReferenceAnswer in the database.
func (_c *ReferenceAnswerCreate) Save(ctx context.Context) (*ReferenceAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferenceAnswerCreate) SaveX(ctx context.Context) *ReferenceAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferenceAnswerCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := referenceanswer.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := referenceanswer.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := referenceanswer.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referenceanswer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferenceAnswerCreate) check() error {
	if _, ok := _c.mutation.UUID(); !ok {
		return &ValidationError{Name: "uuid", err: errors.New(`ent: missing required field "ReferenceAnswer.uuid"`)}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ReferenceAnswer.challenge_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ReferenceAnswer.text"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "ReferenceAnswer.embedding"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ReferenceAnswer.score"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ReferenceAnswer.source"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "ReferenceAnswer.verified"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ReferenceAnswer.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReferenceAnswer.created_at"`)}
	}
	return nil
}

func (_c *ReferenceAnswerCreate) sqlSave(ctx context.Context) (*ReferenceAnswer, error) {
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

func (_c *ReferenceAnswerCreate) createSpec() (*ReferenceAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &ReferenceAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referenceanswer.Table, sqlgraph.NewFieldSpec(referenceanswer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UUID(); ok {
		_spec.SetField(referenceanswer.FieldUUID, field.TypeUUID, value)
		_node.UUID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(referenceanswer.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(referenceanswer.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(referenceanswer.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(referenceanswer.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(referenceanswer.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(referenceanswer.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(referenceanswer.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referenceanswer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReferenceAnswerCreateBulk is the builder for creating many ReferenceAnswer entities in bulk.
type ReferenceAnswerCreateBulk struct {
	config
	err      error
	builders []*ReferenceAnswerCreate
}

// Save creates the ReferenceAnswer entities in the database.
func (_c *ReferenceAnswerCreateBulk) Save(ctx context.Context) ([]*ReferenceAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReferenceAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferenceAnswerMutation)
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
func (_c *ReferenceAnswerCreateBulk) SaveX(ctx context.Context) []*ReferenceAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
