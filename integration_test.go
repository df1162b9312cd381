//go:build integration
// +build integration

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestPingAgainstFakeServer builds the binary and runs a full
// handshake + ping cycle against a fake Ampache server.
func TestPingAgainstFakeServer(t *testing.T) {
	buildCmd := exec.Command("go", "build", "-o", "ampview_test", ".")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	defer os.Remove("ampview_test")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "handshake":
			fmt.Fprint(w, `<root><auth>integration-token</auth></root>`)
		case "ping":
			fmt.Fprint(w, `<root><session_expire>2026-08-26T12:00:00+00:00</session_expire><version>350001</version></root>`)
		default:
			t.Errorf("unexpected action %q", r.URL.Query().Get("action"))
		}
	}))
	defer server.Close()

	cmd := exec.Command("./ampview_test", "ping", "--no-cache")
	cmd.Env = append(os.Environ(),
		"AMPVIEW_SERVER="+server.URL,
		"AMPVIEW_USERNAME=test_user",
		"AMPVIEW_PASSWORD=test_password",
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("ping failed: %v\noutput: %s", err, out)
	}
	if !strings.Contains(string(out), "session_expire: 2026-08-26T12:00:00+00:00") {
		t.Errorf("output missing session fields: %s", out)
	}
}

// TestAuthFailureSurfacesProtocolError verifies a rejected handshake
// reaches the user as the server's error code and message.
func TestAuthFailureSurfacesProtocolError(t *testing.T) {
	buildCmd := exec.Command("go", "build", "-o", "ampview_test", ".")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	defer os.Remove("ampview_test")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<root><error code="4710">Invalid Handshake</error></root>`)
	}))
	defer server.Close()

	cmd := exec.Command("./ampview_test", "ping", "--no-cache")
	cmd.Env = append(os.Environ(),
		"AMPVIEW_SERVER="+server.URL,
		"AMPVIEW_USERNAME=test_user",
		"AMPVIEW_PASSWORD=wrong",
	)

	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected failure, got success: %s", out)
	}
	if !strings.Contains(string(out), "error 4710") || !strings.Contains(string(out), "Invalid Handshake") {
		t.Errorf("output missing server error details: %s", out)
	}
}
