package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	saved := GetLogLevel()
	t.Cleanup(func() {
		restoreLevel(saved)
		SetOutput(os.Stderr)
	})
	return &buf
}

func restoreLevel(l LogLevel) {
	for name, v := range levelNames {
		if v == l {
			SetLogLevel(name)
			return
		}
	}
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLogLevel("info")

	msg := "rendered query_time.png (100.0% of 3 figures) size=1000x600"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of 3 figures)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") || strings.Contains(out, "%!f(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Fatalf("missing level tag: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLogLevel("warn")
	Infof("hidden %d", 1)
	Debugf("hidden too")
	Warnf("shown %d", 2)
	Errorf("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug lines leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "shown 3") {
		t.Fatalf("warn/error lines missing: %s", out)
	}
	if GetLogLevel() != LevelWarn {
		t.Fatalf("level = %v want %v", GetLogLevel(), LevelWarn)
	}
}

func TestSetLogLevel_UnknownKeepsLevel(t *testing.T) {
	capture(t)
	SetLogLevel("DEBUG")
	SetLogLevel("loud")
	if GetLogLevel() != LevelDebug {
		t.Fatalf("unknown level changed state: %v", GetLogLevel())
	}
	if ValidLevel("loud") || !ValidLevel(" Warning ") {
		t.Fatalf("ValidLevel mismatch")
	}
}

func TestTimeTrack_Debug(t *testing.T) {
	buf := capture(t)
	SetLogLevel("debug")
	TimeTrack(time.Now(), "render")
	if !strings.Contains(buf.String(), "render took") {
		t.Fatalf("TimeTrack output missing: %s", buf.String())
	}
}
