// Package form implements the add-restaurant form: a controlled draft that is
// edited one field at a time and handed off whole on submit.
package form

import (
	"context"
	"sync"

	"restaurantform/internal/model"
	"restaurantform/internal/state"
)

// Status is the editing state of a form.
type Status string

const (
	// StatusClean means every field of the draft is empty.
	StatusClean Status = "clean"
	// StatusEditing means at least one field holds a value.
	StatusEditing Status = "editing"
)

// AppendFunc receives a submitted draft. It is called exactly once per submit.
type AppendFunc func(ctx context.Context, d model.RestaurantDraft)

// UpdateField returns d with field replaced by value. All other fields are left untouched.
func UpdateField(d model.RestaurantDraft, field model.Field, value string) model.RestaurantDraft {
	return d.With(field, value)
}

// AddRestaurant owns one draft and emits it upward on submit.
// It is safe for concurrent use; change and submit events are applied one at a time.
type AddRestaurant struct {
	mu       sync.Mutex
	draft    *state.State[model.RestaurantDraft]
	onAppend AppendFunc
}

// NewAddRestaurant creates a form with an empty draft that submits into onAppend.
func NewAddRestaurant(onAppend AppendFunc) *AddRestaurant {
	return &AddRestaurant{
		draft:    state.New(model.RestaurantDraft{}),
		onAppend: onAppend,
	}
}

// Draft returns a copy of the current draft.
func (a *AddRestaurant) Draft() model.RestaurantDraft {
	return a.draft.Get()
}

// Status reports whether the draft is clean or being edited.
func (a *AddRestaurant) Status() Status {
	return StatusOf(a.draft.Get())
}

// StatusOf derives the editing state of d.
func StatusOf(d model.RestaurantDraft) Status {
	if d.IsEmpty() {
		return StatusClean
	}
	return StatusEditing
}

// OnFieldChange replaces a single field of the draft.
func (a *AddRestaurant) OnFieldChange(field model.Field, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.change(field, value)
}

// Submit hands a copy of the current draft to the append callback and resets the draft.
// Constraint checks belong to the caller; Submit never rejects a draft.
func (a *AddRestaurant) Submit(ctx context.Context) {
	_, _ = a.SubmitChecked(ctx, nil)
}

// SubmitChecked runs check on the current draft and submits it only when check returns nil.
// Check and submit happen under one lock, so no change event can slip in between.
// It returns the submitted draft.
func (a *AddRestaurant) SubmitChecked(ctx context.Context, check func(model.RestaurantDraft) error) (model.RestaurantDraft, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.submit(ctx, check)
}

// SubmitPosted applies every field of posted that differs from the draft as a
// change event, then checks and submits like SubmitChecked. The whole sequence
// holds the form lock, so a concurrent post on the same form cannot mix its
// fields into this one.
//
// changed lists the applied fields in field order. The returned draft is the
// submitted one, or on a failed check the draft left in the form.
func (a *AddRestaurant) SubmitPosted(ctx context.Context, posted model.RestaurantDraft, check func(model.RestaurantDraft) error) (d model.RestaurantDraft, changed []model.Field, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	current := a.draft.Get()
	for _, field := range model.Fields {
		if v := posted.Get(field); v != current.Get(field) {
			a.change(field, v)
			changed = append(changed, field)
		}
	}

	d, err = a.submit(ctx, check)
	if err != nil {
		return a.draft.Get(), changed, err
	}
	return d, changed, nil
}

// change and submit expect a.mu to be held.
func (a *AddRestaurant) change(field model.Field, value string) {
	a.draft.Update(func(d model.RestaurantDraft) model.RestaurantDraft {
		return UpdateField(d, field, value)
	})
}

func (a *AddRestaurant) submit(ctx context.Context, check func(model.RestaurantDraft) error) (model.RestaurantDraft, error) {
	d := a.draft.Get()
	if check != nil {
		if err := check(d); err != nil {
			return model.RestaurantDraft{}, err
		}
	}
	if a.onAppend != nil {
		a.onAppend(ctx, d)
	}
	a.draft.Set(model.RestaurantDraft{})
	return d, nil
}

// Subscribe registers fn to be called with the draft after every change.
func (a *AddRestaurant) Subscribe(fn func(model.RestaurantDraft)) state.Unsubscribe {
	return a.draft.Subscribe(fn)
}
