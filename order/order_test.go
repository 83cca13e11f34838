package order_test

import (
	"testing"

	"golden-wok/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestMerge_AppendsDeltaItems(t *testing.T) {
	t.Parallel()
	current := &order.Order{Items: []order.Item{{Name: "Spring Rolls", Quantity: 1, Price: "6"}}}
	delta := &order.Delta{Items: []order.Item{{Name: "Kung Pao Chicken", Quantity: 2, Price: "14"}}}

	merged := order.Merge(current, delta)

	require.NotNil(t, merged)
	require.Len(t, merged.Items, 2)
	assert.Equal(t, "Spring Rolls", merged.Items[0].Name)
	assert.Equal(t, "Kung Pao Chicken", merged.Items[1].Name)
}

func TestMerge_NilDeltaReturnsCurrentUnchanged(t *testing.T) {
	t.Parallel()
	current := &order.Order{Items: []order.Item{{Name: "Fried Rice", Quantity: 1}}, Confirmed: true}

	merged := order.Merge(current, nil)

	assert.Same(t, current, merged)
}

func TestMerge_IntoAbsentOrder(t *testing.T) {
	t.Parallel()
	delta := &order.Delta{Items: []order.Item{{Name: "Mapo Tofu", Quantity: 1, Price: "12"}}}

	merged := order.Merge(nil, delta)

	require.NotNil(t, merged)
	require.Len(t, merged.Items, 1)
	assert.Equal(t, "Mapo Tofu", merged.Items[0].Name)
	assert.False(t, merged.Confirmed)
}

func TestMerge_ConfirmedTakesDeltaValue(t *testing.T) {
	t.Parallel()
	current := &order.Order{Items: []order.Item{{Name: "Fried Rice", Quantity: 1}}}

	merged := order.Merge(current, &order.Delta{Confirmed: boolPtr(true)})

	require.NotNil(t, merged)
	assert.True(t, merged.Confirmed)
	assert.Len(t, merged.Items, 1, "summary-only delta must not change items")
}

func TestMerge_ConfirmedDefaultsFalseWhenDeltaSilent(t *testing.T) {
	t.Parallel()
	current := &order.Order{Items: []order.Item{{Name: "Fried Rice", Quantity: 1}}, Confirmed: true}

	merged := order.Merge(current, &order.Delta{Items: []order.Item{{Name: "Spring Rolls", Quantity: 1}}})

	require.NotNil(t, merged)
	assert.False(t, merged.Confirmed)
}

func TestMerge_EmptyResultIsAbsent(t *testing.T) {
	t.Parallel()
	merged := order.Merge(nil, &order.Delta{Confirmed: boolPtr(true)})
	assert.Nil(t, merged, "zero items persists as absent, not an empty order")
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()
	current := &order.Order{Items: []order.Item{{Name: "Spring Rolls", Quantity: 1}}}
	delta := &order.Delta{Items: []order.Item{{Name: "Fried Rice", Quantity: 1}}, Confirmed: boolPtr(true)}

	merged := order.Merge(current, delta)
	merged.Items[0].Name = "changed"

	assert.Equal(t, "Spring Rolls", current.Items[0].Name)
	assert.Len(t, current.Items, 1)
	assert.Len(t, delta.Items, 1)
}

func TestMerge_RepeatedDishNamesStayRepeated(t *testing.T) {
	t.Parallel()
	current := &order.Order{Items: []order.Item{{Name: "Fried Rice", Quantity: 1, Price: "8"}}}
	delta := &order.Delta{Items: []order.Item{{Name: "Fried Rice", Quantity: 1, Price: "8"}}}

	merged := order.Merge(current, delta)

	require.NotNil(t, merged)
	assert.Len(t, merged.Items, 2, "merge never deduplicates")
}
