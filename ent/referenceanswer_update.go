// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/predicate"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
)

// ReferenceAnswerUpdate is the builder for updating ReferenceAnswer entities.
type ReferenceAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *ReferenceAnswerMutation
}

// Where appends a list predicates to the ReferenceAnswerUpdate builder.
func (_u *ReferenceAnswerUpdate) Where(ps ...predicate.ReferenceAnswer) *ReferenceAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ReferenceAnswerUpdate) SetChallengeID(v string) *ReferenceAnswerUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ReferenceAnswerUpdate) SetNillableChallengeID(v *string) *ReferenceAnswerUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ReferenceAnswerUpdate) SetText(v string) *ReferenceAnswerUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ReferenceAnswerUpdate) SetNillableText(v *string) *ReferenceAnswerUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ReferenceAnswerUpdate) SetEmbedding(v []float64) *ReferenceAnswerUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ReferenceAnswerUpdate) AppendEmbedding(v []float64) *ReferenceAnswerUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ReferenceAnswerUpdate) SetScore(v int) *ReferenceAnswerUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ReferenceAnswerUpdate) SetNillableScore(v *int) *ReferenceAnswerUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ReferenceAnswerUpdate) AddScore(v int) *ReferenceAnswerUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferenceAnswerUpdate) SetSource(v string) *ReferenceAnswerUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferenceAnswerUpdate) SetNillableSource(v *string) *ReferenceAnswerUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ReferenceAnswerUpdate) SetVerified(v bool) *ReferenceAnswerUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ReferenceAnswerUpdate) SetNillableVerified(v *bool) *ReferenceAnswerUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ReferenceAnswerUpdate) SetActive(v bool) *ReferenceAnswerUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReferenceAnswerUpdate) SetNillableActive(v *bool) *ReferenceAnswerUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ReferenceAnswerMutation object of the builder.
func (_u *ReferenceAnswerUpdate) Mutation() *ReferenceAnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferenceAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferenceAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReferenceAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(referenceanswer.Table, referenceanswer.Columns, sqlgraph.NewFieldSpec(referenceanswer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(referenceanswer.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(referenceanswer.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(referenceanswer.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referenceanswer.FieldEmbedding, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(referenceanswer.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(referenceanswer.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referenceanswer.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(referenceanswer.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(referenceanswer.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referenceanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferenceAnswerUpdateOne is the builder for updating a single ReferenceAnswer entity.
type ReferenceAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferenceAnswerMutation
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ReferenceAnswerUpdateOne) SetChallengeID(v string) *ReferenceAnswerUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ReferenceAnswerUpdateOne) SetNillableChallengeID(v *string) *ReferenceAnswerUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ReferenceAnswerUpdateOne) SetText(v string) *ReferenceAnswerUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ReferenceAnswerUpdateOne) SetNillableText(v *string) *ReferenceAnswerUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ReferenceAnswerUpdateOne) SetEmbedding(v []float64) *ReferenceAnswerUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ReferenceAnswerUpdateOne) AppendEmbedding(v []float64) *ReferenceAnswerUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ReferenceAnswerUpdateOne) SetScore(v int) *ReferenceAnswerUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ReferenceAnswerUpdateOne) SetNillableScore(v *int) *ReferenceAnswerUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ReferenceAnswerUpdateOne) AddScore(v int) *ReferenceAnswerUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferenceAnswerUpdateOne) SetSource(v string) *ReferenceAnswerUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferenceAnswerUpdateOne) SetNillableSource(v *string) *ReferenceAnswerUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ReferenceAnswerUpdateOne) SetVerified(v bool) *ReferenceAnswerUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ReferenceAnswerUpdateOne) SetNillableVerified(v *bool) *ReferenceAnswerUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ReferenceAnswerUpdateOne) SetActive(v bool) *ReferenceAnswerUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReferenceAnswerUpdateOne) SetNillableActive(v *bool) *ReferenceAnswerUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ReferenceAnswerMutation object of the builder.
func (_u *ReferenceAnswerUpdateOne) Mutation() *ReferenceAnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReferenceAnswerUpdate builder.
func (_u *ReferenceAnswerUpdateOne) Where(ps ...predicate.ReferenceAnswer) *ReferenceAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferenceAnswerUpdateOne) Select(field string, fields ...string) *ReferenceAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReferenceAnswer entity.
func (_u *ReferenceAnswerUpdateOne) Save(ctx context.Context) (*ReferenceAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceAnswerUpdateOne) SaveX(ctx context.Context) *ReferenceAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferenceAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReferenceAnswerUpdateOne) sqlSave(ctx context.Context) (_node *ReferenceAnswer, err error) {
	_spec := sqlgraph.NewUpdateSpec(referenceanswer.Table, referenceanswer.Columns, sqlgraph.NewFieldSpec(referenceanswer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReferenceAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referenceanswer.FieldID)
		for _, f := range fields {
			if !referenceanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referenceanswer.FieldID {
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
		_spec.SetField(referenceanswer.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(referenceanswer.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(referenceanswer.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referenceanswer.FieldEmbedding, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(referenceanswer.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(referenceanswer.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referenceanswer.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(referenceanswer.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(referenceanswer.FieldActive, field.TypeBool, value)
	}
	_node = &ReferenceAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referenceanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
