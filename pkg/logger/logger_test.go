package logger

import "testing"

func TestNew_DefaultsToInfo(t *testing.T) {
	l := New(INFO)
	if l.Core() == nil {
		t.Fatal("expected a non-nil zap core logger")
	}
}

func TestLogger_Named(t *testing.T) {
	l := New(INFO).Named("engine")
	if l.Core() == nil {
		t.Fatal("expected a non-nil zap core logger after Named")
	}
}

func TestLogger_SetLevel(t *testing.T) {
	l := New(INFO)
	l.SetLevel(DEBUG)
	if l.level.Level() != DEBUG.zapLevel() {
		t.Fatalf("expected level DEBUG, got %v", l.level.Level())
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	Info("test info")
	Infof("test %s", "infof")
	Warning("test warning")
	Warningf("test %s", "warningf")
	Error("test error")
	Errorf("test %s", "errorf")
	Debug("test debug")
	Debugf("test %s", "debugf")
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	defer SetDefault(original)

	SetDefault(New(DEBUG))
	Debug("this should not panic")
}
