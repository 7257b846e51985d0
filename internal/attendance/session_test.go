package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/attendance/internal/model"
)

func TestSessionStateMachine(t *testing.T) {
	sess := NewSession([]model.Member{dawood, ahmed})
	assert.Equal(t, 2, sess.Len())

	m, i, ok := sess.Current()
	require.True(t, ok)
	assert.Equal(t, dawood, m)
	assert.Equal(t, 0, i)

	state, err := sess.Answer("maybe")
	assert.ErrorIs(t, err, model.ErrInvalidResponse)
	assert.Equal(t, Awaiting, state)
	m, _, _ = sess.Current()
	assert.Equal(t, dawood, m, "invalid answer must not advance")

	state, err = sess.Answer(" Y ")
	require.NoError(t, err)
	assert.Equal(t, Recorded, state)

	m, i, ok = sess.Current()
	require.True(t, ok)
	assert.Equal(t, ahmed, m)
	assert.Equal(t, 1, i)

	_, err = sess.Answer("N")
	require.NoError(t, err)

	assert.True(t, sess.Done())
	_, _, ok = sess.Current()
	assert.False(t, ok)

	present, absent := sess.Counts()
	assert.Equal(t, 1, present)
	assert.Equal(t, 1, absent)
	assert.Equal(t, []model.AttendanceRecord{
		{Member: dawood, Attended: true},
		{Member: ahmed, Attended: false},
	}, sess.Records())
}

func TestSessionRejectsAnswerWhenDone(t *testing.T) {
	sess := NewSession([]model.Member{dawood})
	_, err := sess.Answer("y")
	require.NoError(t, err)

	_, err = sess.Answer("y")
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
	assert.Len(t, sess.Records(), 1)
}

func TestSessionRejectedAnswers(t *testing.T) {
	for _, resp := range []string{"", "yes", "no", "1", "yn", "maybe"} {
		sess := NewSession([]model.Member{dawood})
		state, err := sess.Answer(resp)
		assert.ErrorIs(t, err, model.ErrInvalidResponse, resp)
		assert.Equal(t, Awaiting, state)
		assert.False(t, sess.Done())
	}
}

func TestEmptySessionIsDone(t *testing.T) {
	assert.True(t, NewSession(nil).Done())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting", Awaiting.String())
	assert.Equal(t, "recorded", Recorded.String())
}
