package clipboard

import (
	"os"
	"testing"
)

func TestDaemonPayloadUnsetEnv(t *testing.T) {
	os.Unsetenv(daemonEnv)
	if _, ok := DaemonPayload(); ok {
		t.Error("DaemonPayload should be false without the marker variable")
	}
}

func TestDaemonPayloadWithEnv(t *testing.T) {
	t.Setenv(daemonEnv, "1")

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"issuebox", "Foo"}

	text, ok := DaemonPayload()
	if !ok {
		t.Fatal("DaemonPayload should be true with the marker variable set")
	}
	if text != "Foo" {
		t.Errorf("Expected payload %q, got %q", "Foo", text)
	}
}

func TestDaemonPayloadMissingArgument(t *testing.T) {
	t.Setenv(daemonEnv, "1")

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"issuebox"}

	if _, ok := DaemonPayload(); ok {
		t.Error("DaemonPayload should be false without a payload argument")
	}
}
