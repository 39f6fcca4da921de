package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureTranscriptAccumulatesAcrossPause(t *testing.T) {
	c := NewCaptureController()
	assert.Equal(t, CaptureIdle, c.State())

	require.NoError(t, c.Start())
	assert.Equal(t, CaptureRecording, c.State())
	require.NoError(t, c.Append("I am"))
	require.NoError(t, c.Append("a developer"))

	require.NoError(t, c.Pause())
	assert.Equal(t, CapturePaused, c.State())
	assert.Equal(t, "I am a developer", c.Transcript())

	require.NoError(t, c.Resume())
	assert.Equal(t, CaptureRecording, c.State())
	require.NoError(t, c.Append("with five years of experience"))

	// Never reset on resume: post-resume speech appends to pre-pause speech.
	assert.Equal(t, "I am a developer with five years of experience", c.Transcript())
}

func TestCaptureInvalidTransitions(t *testing.T) {
	t.Run("append while idle", func(t *testing.T) {
		c := NewCaptureController()
		assert.ErrorIs(t, c.Append("hello"), ErrInvalidTransition)
	})

	t.Run("append while paused", func(t *testing.T) {
		c := NewCaptureController()
		require.NoError(t, c.Start())
		require.NoError(t, c.Pause())
		assert.ErrorIs(t, c.Append("hello"), ErrInvalidTransition)
	})

	t.Run("pause while idle", func(t *testing.T) {
		c := NewCaptureController()
		assert.ErrorIs(t, c.Pause(), ErrInvalidTransition)
	})

	t.Run("resume while recording", func(t *testing.T) {
		c := NewCaptureController()
		require.NoError(t, c.Start())
		assert.ErrorIs(t, c.Resume(), ErrInvalidTransition)
	})

	t.Run("start twice", func(t *testing.T) {
		c := NewCaptureController()
		require.NoError(t, c.Start())
		assert.ErrorIs(t, c.Start(), ErrInvalidTransition)
	})
}

func TestCaptureFinalize(t *testing.T) {
	t.Run("from recording stops capture first", func(t *testing.T) {
		c := NewCaptureController()
		require.NoError(t, c.Start())
		require.NoError(t, c.Append("hello"))

		transcript, err := c.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "hello", transcript)
		assert.Equal(t, CaptureFinalized, c.State())
	})

	t.Run("from idle yields a skipped answer", func(t *testing.T) {
		c := NewCaptureController()
		transcript, err := c.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "", transcript)
	})

	t.Run("finalized is terminal", func(t *testing.T) {
		c := NewCaptureController()
		_, err := c.Finalize()
		require.NoError(t, err)

		_, err = c.Finalize()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.ErrorIs(t, c.Start(), ErrInvalidTransition)
		assert.ErrorIs(t, c.Append("late"), ErrInvalidTransition)
	})
}

func TestCaptureDeviceAvailability(t *testing.T) {
	c := NewCaptureController()

	c.ReportDeviceDenied()
	assert.ErrorIs(t, c.Start(), ErrDeviceUnavailable)

	c.ReportDeviceGranted()
	require.NoError(t, c.Start())

	// Losing the device mid-recording pauses the capture and keeps the text.
	require.NoError(t, c.Append("so far"))
	c.ReportDeviceDenied()
	assert.Equal(t, CapturePaused, c.State())
	assert.Equal(t, "so far", c.Transcript())
}
