package alto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withRecorder(t *testing.T, min Level) *recordingHandler {
	t.Helper()
	resetInstalled()
	h := newRecordingHandler(min)
	assert.NoError(t, Init(h))
	t.Cleanup(resetInstalled)
	return h
}

func Test_Client_LevelHelpers(t *testing.T) {
	h := withRecorder(t, LVL_TRACE)
	client := NewClient("svc::core")

	client.LogTrace("t")
	client.LogDebug("d")
	client.LogInfo("i")
	client.LogWarn("w")
	client.LogError("e")
	client.LogErr(errors.New("ev"))

	recs := h.records()
	if assert.Len(t, recs, 6) {
		wants := []struct {
			level Level
			msg   string
		}{
			{LVL_TRACE, "t"},
			{LVL_DEBUG, "d"},
			{LVL_INFO, "i"},
			{LVL_WARN, "w"},
			{LVL_ERROR, "e"},
			{LVL_ERROR, "ev"},
		}
		for i, want := range wants {
			assert.Equal(t, want.level, recs[i].Level)
			assert.Equal(t, want.msg, recs[i].Message)
			assert.Equal(t, "svc::core", recs[i].Target)
			assert.Empty(t, recs[i].File, "no caller capture unless requested")
		}
	}
}

func Test_Client_Logf(t *testing.T) {
	h := withRecorder(t, LVL_TRACE)
	NewClient("fmt").Logf(LVL_WARN, "disk low: %d%%", 93)
	recs := h.records()
	if assert.Len(t, recs, 1) {
		assert.Equal(t, "disk low: 93%", recs[0].Message)
		assert.Equal(t, LVL_WARN, recs[0].Level)
	}
}

func Test_Client_FilteredByHandlerGate(t *testing.T) {
	h := withRecorder(t, LVL_WARN)
	client := NewClient("svc")
	client.LogInfo("dropped")
	client.LogWarn("kept")
	recs := h.records()
	if assert.Len(t, recs, 1) {
		assert.Equal(t, "kept", recs[0].Message)
	}
}

func Test_Client_WithCaller(t *testing.T) {
	h := withRecorder(t, LVL_TRACE)
	client := NewClient("svc").WithCaller()
	client.LogInfo("where am I")
	recs := h.records()
	if assert.Len(t, recs, 1) {
		assert.Equal(t, "clients_test.go", recs[0].File, "file is the base name of the logging call site")
		assert.Greater(t, recs[0].Line, 0)
	}
}

func Test_Client_NormalizesLevel(t *testing.T) {
	h := withRecorder(t, LVL_TRACE)
	NewClient("svc").Log(Level(250), "odd")
	recs := h.records()
	if assert.Len(t, recs, 1) {
		assert.Equal(t, LVL_ERROR, recs[0].Level)
	}
}

func Test_Client_Target(t *testing.T) {
	assert.Equal(t, "a::b", NewClient("a::b").Target())
}

func Test_Client_Writer_NilPayload(t *testing.T) {
	h := withRecorder(t, LVL_TRACE)
	n, err := NewClient("w").Write(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, h.records())
}
