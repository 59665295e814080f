package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_ScanNilBecomesEmpty(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(nil))
	assert.Equal(t, StringArray{}, a)
}

func TestStringArray_RoundTrip(t *testing.T) {
	a := StringArray{"go", "postgres"}
	v, err := a.Value()
	require.NoError(t, err)

	var out StringArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, a, out)
}

func TestStringArray_NilValueIsEmptyJSON(t *testing.T) {
	var a StringArray
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestActionSet_ScanNilBecomesEmpty(t *testing.T) {
	var s ActionSet
	require.NoError(t, s.Scan(nil))
	assert.Equal(t, ActionSet{}, s)
}

func TestActionSet_RoundTrip(t *testing.T) {
	s := ActionSet{"take_career_quiz": true, "verify_job": false}
	v, err := s.Value()
	require.NoError(t, err)

	var out ActionSet
	require.NoError(t, out.Scan(v.([]byte)))
	assert.Equal(t, s, out)
}

func TestActionSet_RejectsNonBytes(t *testing.T) {
	var s ActionSet
	assert.Error(t, s.Scan(42))
}
