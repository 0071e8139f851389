package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleRecords() []Measurement {
	return []Measurement{
		{ID: "1", IsSafe: LabelPotable},
		{ID: "2", IsSafe: LabelNotPotable},
	}
}

func ids(ms []Measurement) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestStore_All(t *testing.T) {
	s := NewStore(exampleRecords())

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(all))
	assert.Equal(t, 2, s.Len())
}

func TestStore_All_Empty(t *testing.T) {
	_, err := NewStore(nil).All()
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestStore_All_ReturnsCopy(t *testing.T) {
	s := NewStore(exampleRecords())

	all, err := s.All()
	require.NoError(t, err)
	all[0].ID = "mutated"

	m, ok := s.ByID("1")
	assert.True(t, ok)
	assert.Equal(t, "1", m.ID)
}

func TestStore_ByID(t *testing.T) {
	s := NewStore(exampleRecords())

	m, ok := s.ByID("1")
	require.True(t, ok)
	assert.Equal(t, LabelPotable, m.IsSafe)

	for _, id := range []string{"99", "", "01", "1 "} {
		_, ok := s.ByID(id)
		assert.False(t, ok, "id %q", id)
	}
}

func TestStore_ByID_FirstMatchWins(t *testing.T) {
	s := NewStore([]Measurement{
		{ID: "a", IsSafe: LabelPotable},
		{ID: "a", IsSafe: LabelNotPotable},
	})
	m, ok := s.ByID("a")
	require.True(t, ok)
	assert.Equal(t, LabelPotable, m.IsSafe)
}

func TestStore_ByLabel(t *testing.T) {
	s := NewStore(exampleRecords())

	cases := []struct {
		label string
		want  []string
	}{
		{"potable", []string{"1", "2"}},
		{"POTABLE", []string{"1", "2"}},
		{"Potable", []string{"1", "2"}},
		{"no", []string{"2"}},
		{"no potable", []string{"2"}},
		{"", []string{"1", "2"}},
		{"safe", []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ids(s.ByLabel(tc.label)), "label %q", tc.label)
	}
}

func TestStore_ByLabel_NeverNil(t *testing.T) {
	got := NewStore(exampleRecords()).ByLabel("unsafe")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
