package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoticeDefaultsToThreeSeconds(t *testing.T) {
	assert.Equal(t, 3*time.Second, NewNotice(0).Duration)
	assert.Equal(t, 5*time.Second, NewNotice(5*time.Second).Duration)
}

func TestNoticeExpire(t *testing.T) {
	notice := NewNotice(0)

	seq := notice.Show("Task description cannot be empty!")
	assert.True(t, notice.Visible())
	assert.Equal(t, "Task description cannot be empty!", notice.Text())

	assert.True(t, notice.Expire(seq))
	assert.False(t, notice.Visible())
	assert.False(t, notice.Expire(seq))
}

func TestNoticeNewMessageResetsPendingClear(t *testing.T) {
	notice := NewNotice(0)

	first := notice.Show("first")
	second := notice.Show("second")

	assert.False(t, notice.Expire(first))
	assert.Equal(t, "second", notice.Text())
	assert.True(t, notice.Expire(second))
}

func TestNoticeClearInvalidatesPending(t *testing.T) {
	notice := NewNotice(0)

	seq := notice.Show("oops")
	notice.Clear()
	assert.False(t, notice.Visible())

	notice.Show("again")
	assert.False(t, notice.Expire(seq))
	assert.Equal(t, "again", notice.Text())
}
