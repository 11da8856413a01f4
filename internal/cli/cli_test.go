package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	lib "github.com/peteraglen/slack-simple-message"
	"github.com/peteraglen/slack-simple-message/internal/config"
	"github.com/peteraglen/slack-simple-message/internal/slacktest"
)

const (
	testToken   = "xoxb-cli-token"
	testChannel = "C0000000001"
)

func setupEnv(t *testing.T, server *slacktest.Server) {
	t.Helper()

	t.Setenv(config.EnvToken, testToken)
	t.Setenv(config.EnvAPIURL, server.URL)
	t.Setenv(config.EnvDestination, "")
	t.Setenv(config.EnvLogFile, "")

	// Keep a stray .env in the package directory out of the picture.
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestSendCommand_Success(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)

	code, stdout, stderr := run(t, "send", "--channel", testChannel, "--show-responses", "hello from the cli")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}

	var responses []lib.Response
	if err := yaml.Unmarshal([]byte(stdout), &responses); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout)
	}

	if len(responses) != 1 || !responses[0].OK || responses[0].Channel != testChannel {
		t.Errorf("unexpected responses: %+v", responses)
	}

	requests := server.Requests()
	if len(requests) != 1 || requests[0].Text != "hello from the cli" {
		t.Errorf("unexpected requests: %+v", requests)
	}
}

func TestSendCommand_MultipleMessages(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)
	t.Setenv(config.EnvDestination, testChannel)

	code, _, stderr := run(t, "send", "--rate", "100", "one", "two", "three")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}

	requests := server.Requests()
	if len(requests) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(requests))
	}

	for i, want := range []string{"one", "two", "three"} {
		if requests[i].Text != want || requests[i].Channel != testChannel {
			t.Errorf("request %d: unexpected %+v", i, requests[i])
		}
	}
}

func TestSendCommand_SlackGoTransport(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)

	code, _, stderr := run(t, "send", "--transport", "slack-go", "--channel", testChannel, "via slack-go")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}

	if got := len(server.Requests()); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
}

func TestSendCommand_FailureWritesLogFile(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)

	logFile := filepath.Join(t.TempDir(), "cli.log")
	code, _, stderr := run(t, "send", "--log-file", logFile, "nowhere to go")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	if !strings.Contains(stderr, "1 of 1 messages failed") {
		t.Errorf("expected failure summary, got: %s", stderr)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("could not read the logfile: %v", err)
	}

	if !strings.Contains(string(data), "nowhere to go") {
		t.Errorf("expected logfile to contain the message, got: %s", data)
	}
}

func TestSendCommand_BadChannel(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)

	code, _, stderr := run(t, "send", "--channel", "xyz", "lost")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	if !strings.Contains(stderr, lib.ErrorCodeChannelNotFound) {
		t.Errorf("expected %s in output, got: %s", lib.ErrorCodeChannelNotFound, stderr)
	}
}

func TestSendCommand_MissingToken(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)
	os.Unsetenv(config.EnvToken)

	code, _, stderr := run(t, "send", "--channel", testChannel, "no token")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	if !strings.Contains(stderr, config.EnvToken) {
		t.Errorf("expected hint about %s, got: %s", config.EnvToken, stderr)
	}

	if got := len(server.Requests()); got != 0 {
		t.Errorf("expected no requests, got %d", got)
	}
}

func TestSendCommand_EnvFile(t *testing.T) {
	server := slacktest.NewServer(testToken, testChannel)
	defer server.Close()
	setupEnv(t, server)
	os.Unsetenv(config.EnvToken)

	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte(config.EnvToken+"="+testToken+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(config.EnvToken) })

	code, _, stderr := run(t, "send", "--env-file", envFile, "--channel", testChannel, "from env file")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}
}

func TestSendCommand_RequiresText(t *testing.T) {
	code, _, _ := run(t, "send")

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}
