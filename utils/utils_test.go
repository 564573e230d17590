package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://unpkg.com/lucide-static/icons"))
	assert.False(t, IsValidUrl("unpkg.com/lucide-static"))
	assert.False(t, IsValidUrl("not a url"))
}

func TestUtils_Clamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-3, 1, 20))
	assert.Equal(t, 20, Clamp(64, 1, 20))
	assert.Equal(t, 8, Clamp(8, 1, 20))
	assert.Equal(t, 0.5, Clamp(0.1, 0.5, 5.0))
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, 3, Max(2, 3))
}

func TestUtils_InRange(t *testing.T) {
	assert.True(t, InRange(16, 16, 1024))
	assert.True(t, InRange(1024, 16, 1024))
	assert.False(t, InRange(15, 16, 1024))
	assert.False(t, InRange(5.01, 0.5, 5))
}

func TestUtils_DecorateText(t *testing.T) {
	defer SetColor(colorize)

	SetColor(true)
	s := DecorateText("ok", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))

	SetColor(false)
	assert.Equal(t, "ok", DecorateText("ok", ErrorMessage))
}

func TestUtils_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal(t, "1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_SpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", time.Millisecond)
	s.Start()
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.SetMessage("still working")
	s.Stop()
	s.Stop()

	assert.Contains(t, buf.String(), "working")
}
