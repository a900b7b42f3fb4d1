package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
}

func TestMapSliceWithError(t *testing.T) {
	got, err := MapSliceWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = MapSliceWithError([]string{"1", "x"}, strconv.Atoi)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestMapSliceWithID(t *testing.T) {
	type row struct {
		ID    string
		Value string
	}
	boom := errors.New("boom")

	_, err := MapSliceWithID(
		[]row{{ID: "a", Value: "1"}, {ID: "b", Value: "bad"}},
		func(r row) (int, error) {
			if r.Value == "bad" {
				return 0, boom
			}
			return strconv.Atoi(r.Value)
		},
		func(r row) string { return r.ID },
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "item ID b")
}
