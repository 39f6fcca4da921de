package service

import "strings"

type CaptureState string

const (
	CaptureIdle      CaptureState = "Idle"
	CaptureRecording CaptureState = "Recording"
	CapturePaused    CaptureState = "Paused"
	CaptureFinalized CaptureState = "Finalized"
)

// CaptureController manages the recording lifecycle for one question:
// Idle -> Recording -> Paused -> Recording -> ... -> Finalized. The transcript
// is append-only; pausing keeps it as-is and resuming appends to it, never
// resets it. A new question gets a fresh controller (one-shot capture).
//
// The controller is not safe for concurrent use on its own; the session
// walker serializes access to it.
type CaptureController struct {
	state        CaptureState
	transcript   strings.Builder
	deviceDenied bool
}

func NewCaptureController() *CaptureController {
	return &CaptureController{state: CaptureIdle}
}

func (c *CaptureController) State() CaptureState {
	return c.state
}

func (c *CaptureController) Transcript() string {
	return c.transcript.String()
}

// Start begins speech capture. It fails with ErrDeviceUnavailable while the
// client has reported the capture device as denied.
func (c *CaptureController) Start() error {
	if c.deviceDenied {
		return ErrDeviceUnavailable
	}
	if c.state != CaptureIdle {
		return ErrInvalidTransition
	}
	c.state = CaptureRecording
	return nil
}

// Append adds a transcribed fragment. Fragments are only accepted while
// recording; the accumulated transcript is never rewritten.
func (c *CaptureController) Append(fragment string) error {
	if c.state != CaptureRecording {
		return ErrInvalidTransition
	}
	if fragment == "" {
		return nil
	}
	if c.transcript.Len() > 0 {
		c.transcript.WriteByte(' ')
	}
	c.transcript.WriteString(fragment)
	return nil
}

func (c *CaptureController) Pause() error {
	if c.state != CaptureRecording {
		return ErrInvalidTransition
	}
	c.state = CapturePaused
	return nil
}

func (c *CaptureController) Resume() error {
	if c.state != CapturePaused {
		return ErrInvalidTransition
	}
	c.state = CaptureRecording
	return nil
}

// Finalize stops capture and returns the accumulated transcript. Finalizing
// mid-recording stops the recording implicitly; finalizing from Idle yields
// the empty transcript, which is a valid "skipped" answer. A finalized
// controller accepts no further mutation.
func (c *CaptureController) Finalize() (string, error) {
	if c.state == CaptureFinalized {
		return "", ErrInvalidTransition
	}
	c.state = CaptureFinalized
	return c.transcript.String(), nil
}

// ReportDeviceDenied records that the client lost access to the speech
// device. An in-progress recording is paused; starting again is refused
// until the client reports the device available.
func (c *CaptureController) ReportDeviceDenied() {
	c.deviceDenied = true
	if c.state == CaptureRecording {
		c.state = CapturePaused
	}
}

func (c *CaptureController) ReportDeviceGranted() {
	c.deviceDenied = false
}
