package ordering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var siblings = []string{"a", "b", "c"}

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		moves   []Move
		want    []Move
		wantErr error
	}{
		{
			name:  "reverse order",
			moves: []Move{{ID: "a", Position: 2}, {ID: "b", Position: 1}, {ID: "c", Position: 0}},
			want:  []Move{{ID: "c", Position: 0}, {ID: "b", Position: 1}, {ID: "a", Position: 2}},
		},
		{
			name:  "identity",
			moves: []Move{{ID: "a", Position: 0}, {ID: "b", Position: 1}, {ID: "c", Position: 2}},
			want:  []Move{{ID: "a", Position: 0}, {ID: "b", Position: 1}, {ID: "c", Position: 2}},
		},
		{
			name:    "empty",
			wantErr: ErrEmpty,
		},
		{
			name:    "unknown id",
			moves:   []Move{{ID: "a", Position: 0}, {ID: "zz", Position: 1}, {ID: "c", Position: 2}},
			wantErr: ErrUnknownSibling,
		},
		{
			name:    "duplicate id",
			moves:   []Move{{ID: "a", Position: 0}, {ID: "a", Position: 1}, {ID: "c", Position: 2}},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "missing sibling",
			moves:   []Move{{ID: "a", Position: 0}, {ID: "b", Position: 1}},
			wantErr: ErrIncomplete,
		},
		{
			name:    "gap in positions",
			moves:   []Move{{ID: "a", Position: 0}, {ID: "b", Position: 1}, {ID: "c", Position: 3}},
			wantErr: ErrInvalidPosition,
		},
		{
			name:    "duplicate position",
			moves:   []Move{{ID: "a", Position: 0}, {ID: "b", Position: 0}, {ID: "c", Position: 1}},
			wantErr: ErrInvalidPosition,
		},
		{
			name:    "negative position",
			moves:   []Move{{ID: "a", Position: -1}, {ID: "b", Position: 0}, {ID: "c", Position: 1}},
			wantErr: ErrInvalidPosition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Plan(siblings, tc.moves)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlan_UnknownSiblingCarriesID(t *testing.T) {
	_, err := Plan(siblings, []Move{{ID: "ghost", Position: 0}})

	var unknown *UnknownSiblingError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ghost", unknown.ID)
}

func TestPlan_DoesNotMutateInput(t *testing.T) {
	moves := []Move{{ID: "c", Position: 2}, {ID: "a", Position: 0}, {ID: "b", Position: 1}}
	_, err := Plan(siblings, moves)
	require.NoError(t, err)
	assert.Equal(t, "c", moves[0].ID)
}

func TestDense(t *testing.T) {
	assert.True(t, Dense(nil))
	assert.True(t, Dense([]int{0}))
	assert.True(t, Dense([]int{2, 0, 1}))
	assert.False(t, Dense([]int{0, 1, 3}))
	assert.False(t, Dense([]int{0, 0, 1}))
	assert.False(t, Dense([]int{-1, 0}))
}
