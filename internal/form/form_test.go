package form

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurantform/internal/model"
)

func fill(a *AddRestaurant, d model.RestaurantDraft) {
	for _, f := range model.Fields {
		a.OnFieldChange(f, d.Get(f))
	}
}

func TestUpdateField(t *testing.T) {
	d := model.RestaurantDraft{Cuisine: "Italian", Rating: "3"}

	got := UpdateField(d, model.FieldName, "Pizza Place")

	assert.Equal(t, model.RestaurantDraft{Name: "Pizza Place", Cuisine: "Italian", Rating: "3"}, got)
	assert.Empty(t, d.Name)
}

func TestAddRestaurant_OnFieldChange(t *testing.T) {
	a := NewAddRestaurant(nil)
	a.OnFieldChange(model.FieldAddress, "1 Main St")
	a.OnFieldChange(model.FieldName, "Pizza Place")

	d := a.Draft()
	assert.Equal(t, "Pizza Place", d.Name)
	assert.Equal(t, "1 Main St", d.Address)
	assert.Empty(t, d.Image)
	assert.Empty(t, d.Phone)
	assert.Empty(t, d.Cuisine)
	assert.Empty(t, d.Rating)
}

func TestAddRestaurant_Status(t *testing.T) {
	a := NewAddRestaurant(func(context.Context, model.RestaurantDraft) {})
	assert.Equal(t, StatusClean, a.Status())

	a.OnFieldChange(model.FieldName, "P")
	assert.Equal(t, StatusEditing, a.Status())

	a.Submit(context.Background())
	assert.Equal(t, StatusClean, a.Status())
}

func TestAddRestaurant_Submit(t *testing.T) {
	var got []model.RestaurantDraft
	a := NewAddRestaurant(func(_ context.Context, d model.RestaurantDraft) {
		got = append(got, d)
	})

	want := model.RestaurantDraft{
		Name: "Pizza Place", Image: "https://img.example/p.png", Address: "1 Main St",
		Phone: "555-0100", Cuisine: "Italian", Rating: "5",
	}
	fill(a, want)
	a.Submit(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
	assert.Equal(t, model.RestaurantDraft{}, a.Draft())

	// the handed-off value does not follow later edits
	a.OnFieldChange(model.FieldName, "Other")
	assert.Equal(t, "Pizza Place", got[0].Name)
}

func TestAddRestaurant_SubmitOncePerCall(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	a := NewAddRestaurant(func(context.Context, model.RestaurantDraft) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Submit(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, calls)
}

func TestAddRestaurant_Subscribe(t *testing.T) {
	a := NewAddRestaurant(func(context.Context, model.RestaurantDraft) {})
	var seen []model.RestaurantDraft
	unsub := a.Subscribe(func(d model.RestaurantDraft) { seen = append(seen, d) })

	a.OnFieldChange(model.FieldName, "A")
	a.Submit(context.Background())
	unsub()
	a.OnFieldChange(model.FieldName, "B")

	require.Len(t, seen, 2)
	assert.Equal(t, "A", seen[0].Name)
	assert.True(t, seen[1].IsEmpty())
}

func TestAddRestaurant_SubmitChecked(t *testing.T) {
	var got []model.RestaurantDraft
	a := NewAddRestaurant(func(_ context.Context, d model.RestaurantDraft) {
		got = append(got, d)
	})
	c := NewConstraints()

	t.Run("rejected draft is kept", func(t *testing.T) {
		a.OnFieldChange(model.FieldName, "Pizza Place")
		a.OnFieldChange(model.FieldRating, "7")

		_, err := a.SubmitChecked(context.Background(), c.Check)

		assert.ErrorIs(t, err, ErrConstraintViolation)
		assert.Empty(t, got)
		assert.Equal(t, "Pizza Place", a.Draft().Name)
		assert.Equal(t, StatusEditing, a.Status())
	})

	t.Run("accepted draft is submitted and reset", func(t *testing.T) {
		fill(a, validDraft())

		d, err := a.SubmitChecked(context.Background(), c.Check)

		require.NoError(t, err)
		assert.Equal(t, validDraft(), d)
		require.Len(t, got, 1)
		assert.Equal(t, validDraft(), got[0])
		assert.Equal(t, StatusClean, a.Status())
	})
}

func TestAddRestaurant_SubmitPosted(t *testing.T) {
	var got []model.RestaurantDraft
	a := NewAddRestaurant(func(_ context.Context, d model.RestaurantDraft) {
		got = append(got, d)
	})
	c := NewConstraints()

	t.Run("rejected post keeps typed values", func(t *testing.T) {
		a.OnFieldChange(model.FieldName, "Pizza Place")
		posted := model.RestaurantDraft{Name: "Pizza Place", Rating: "9"}

		d, changed, err := a.SubmitPosted(context.Background(), posted, c.Check)

		assert.ErrorIs(t, err, ErrConstraintViolation)
		assert.Equal(t, []model.Field{model.FieldRating}, changed)
		assert.Equal(t, posted, d)
		assert.Equal(t, posted, a.Draft())
		assert.Empty(t, got)
	})

	t.Run("accepted post is submitted and reset", func(t *testing.T) {
		d, changed, err := a.SubmitPosted(context.Background(), validDraft(), c.Check)

		require.NoError(t, err)
		assert.Equal(t, validDraft(), d)
		assert.Equal(t, []model.Field{
			model.FieldImage, model.FieldAddress, model.FieldPhone, model.FieldCuisine, model.FieldRating,
		}, changed)
		require.Len(t, got, 1)
		assert.Equal(t, validDraft(), got[0])
		assert.Equal(t, StatusClean, a.Status())
	})
}

func TestAddRestaurant_SubmitPostedConcurrent(t *testing.T) {
	var (
		mu  sync.Mutex
		got []model.RestaurantDraft
	)
	a := NewAddRestaurant(func(_ context.Context, d model.RestaurantDraft) {
		mu.Lock()
		got = append(got, d)
		mu.Unlock()
	})

	posted := make(map[model.RestaurantDraft]bool)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		d := validDraft()
		for _, f := range model.Fields {
			if f != model.FieldRating {
				d = d.With(f, fmt.Sprintf("%s-%d", f, i))
			}
		}
		posted[d] = true

		wg.Add(1)
		go func(d model.RestaurantDraft) {
			defer wg.Done()
			_, _, err := a.SubmitPosted(context.Background(), d, nil)
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	require.Len(t, got, 100)
	for _, d := range got {
		assert.True(t, posted[d], "submitted draft mixes posts: %+v", d)
	}
}
