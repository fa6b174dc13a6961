package commands

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"osctest/internal/cli"
	"osctest/internal/config"
	"osctest/internal/domain"
	"osctest/internal/sequence"
	"osctest/internal/storage"
	"osctest/internal/transport"
	"osctest/internal/ui"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type sentMessage struct {
	Address string
	Args    []any
}

type fakeSender struct {
	target string
	sent   []sentMessage
	failOn map[string]bool
	onSend func(address string)
}

func (f *fakeSender) Send(address string, args []any) error {
	f.sent = append(f.sent, sentMessage{Address: address, Args: args})
	if f.onSend != nil {
		f.onSend(address)
	}
	if f.failOn[address] {
		return errors.New("host unreachable")
	}
	return nil
}

func (f *fakeSender) Target() string {
	return f.target
}

// senderRecorder is a transport.SenderFactory that remembers how it was called
type senderRecorder struct {
	calls  []string
	sender *fakeSender
}

func (r *senderRecorder) New(host string, port int, logger *zap.Logger) transport.Sender {
	target := net.JoinHostPort(host, strconv.Itoa(port))
	r.calls = append(r.calls, target)
	r.sender.target = target
	return r.sender
}

type harness struct {
	root    *cobra.Command
	out     *bytes.Buffer
	factory *senderRecorder
	sleeps  []time.Duration
	cfg     *config.Config
	tempDir string
	storage *storage.FileStorage
}

func newHarness(t *testing.T, sender *fakeSender) *harness {
	t.Helper()
	t.Setenv(config.EnvHost, "")
	t.Setenv(config.EnvSequence, "")

	h := &harness{
		out:     &bytes.Buffer{},
		factory: &senderRecorder{sender: sender},
		cfg:     config.New(),
		tempDir: t.TempDir(),
		storage: storage.NewFileStorage(sequence.NewParser()),
	}

	formatter := ui.NewFormatterTo(h.out)
	cmds := NewCommands(h.cfg)
	cmds.Run = NewRunCommand(h.cfg, h.storage, h.factory.New, formatter)
	cmds.Run.sleep = func(ctx context.Context, d time.Duration) error {
		h.sleeps = append(h.sleeps, d)
		return ctx.Err()
	}
	cmds.List = NewListCommand(h.cfg, h.storage, sequence.NewFilter(), formatter)

	h.root = &cobra.Command{Use: "osctest", SilenceUsage: true, SilenceErrors: true}
	var flags cli.Flags
	cmds.Register(h.root, &flags, h.cfg)
	return h
}

func (h *harness) execute(ctx context.Context, args ...string) error {
	args = append(args, "--env", filepath.Join(h.tempDir, "none.env"))
	h.root.SetArgs(args)
	return h.root.ExecuteContext(ctx)
}

func TestRun_DefaultHost(t *testing.T) {
	sender := &fakeSender{}
	h := newHarness(t, sender)

	if err := h.execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"localhost:57121"}, h.factory.calls); diff != "" {
		t.Errorf("expected exactly one client for localhost:57121 (-want +got):\n%s", diff)
	}
	if len(sender.sent) != 8 {
		t.Fatalf("expected 8 messages, got %d", len(sender.sent))
	}
	if diff := cmp.Diff(sentMessage{Address: "/bpm", Args: []any{int32(128)}}, sender.sent[0]); diff != "" {
		t.Errorf("first message mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sentMessage{Address: "/songStart", Args: []any{}}, sender.sent[7]); diff != "" {
		t.Errorf("last message mismatch (-want +got):\n%s", diff)
	}

	if len(h.sleeps) != 9 {
		t.Errorf("expected settle delay plus 8 delays, got %v", h.sleeps)
	}
	for _, d := range h.sleeps {
		if d < time.Second {
			t.Errorf("expected every delay to be at least 1s, got %s", d)
		}
	}

	output := h.out.String()
	for _, want := range []string{"Target: localhost:57121", "[8/8] Trigger song start", "Check your browser:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRun_HostArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"root command", []string{"relay.example.com"}},
		{"run subcommand", []string{"run", "relay.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			h := newHarness(t, sender)

			if err := h.execute(context.Background(), tt.args...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff([]string{"relay.example.com:57121"}, h.factory.calls); diff != "" {
				t.Errorf("client target mismatch (-want +got):\n%s", diff)
			}
			if len(sender.sent) != 8 {
				t.Errorf("expected 8 messages, got %d", len(sender.sent))
			}
		})
	}
}

func TestRun_TooManyArguments(t *testing.T) {
	h := newHarness(t, &fakeSender{})

	if err := h.execute(context.Background(), "a", "b"); err == nil {
		t.Error("expected error for two hosts")
	}
	if len(h.factory.calls) != 0 {
		t.Error("no client should be created")
	}
}

func TestRun_FailuresDoNotStopSequence(t *testing.T) {
	sender := &fakeSender{failOn: map[string]bool{"/speed": true}}
	h := newHarness(t, sender)

	if err := h.execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.sent) != 8 {
		t.Errorf("expected 8 send attempts, got %d", len(sender.sent))
	}
	output := h.out.String()
	if !strings.Contains(output, "[2/8] Set speed to 2.5\n  → Sending: /speed [2.5]\n  ✗ Error: host unreachable\n") {
		t.Errorf("expected inline error for /speed, got:\n%s", output)
	}
	if strings.Count(output, "✓ Sent") != 7 {
		t.Errorf("expected 7 successful sends, got:\n%s", output)
	}
}

func TestRun_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{onSend: func(address string) {
		if address == "/depth" {
			cancel()
		}
	}}
	h := newHarness(t, sender)

	if err := h.execute(ctx); err != nil {
		t.Fatalf("interruption must not be an error, got %v", err)
	}
	if len(sender.sent) != 5 {
		t.Errorf("expected 5 messages before interruption, got %d", len(sender.sent))
	}
	output := h.out.String()
	if !strings.HasSuffix(output, "\n\nTest interrupted\n") {
		t.Errorf("expected interruption notice, got:\n%s", output)
	}
	if strings.Contains(output, "Check your browser") {
		t.Error("checklist must not be printed after interruption")
	}
}

func TestRun_SequenceFile(t *testing.T) {
	sender := &fakeSender{}
	h := newHarness(t, sender)

	path := filepath.Join(h.tempDir, "short.yaml")
	content := "- name: tempo\n  address: /bpm\n  args: [90]\n  delay: 0.25\n- address: /songStart\n  args: []\n  delay: 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write sequence: %v", err)
	}

	if err := h.execute(context.Background(), "--sequence", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []sentMessage{
		{Address: "/bpm", Args: []any{int32(90)}},
		{Address: "/songStart", Args: []any{}},
	}
	if diff := cmp.Diff(expected, sender.sent); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]time.Duration{time.Second, 250 * time.Millisecond, 0}, h.sleeps); diff != "" {
		t.Errorf("delays mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MissingSequenceFile(t *testing.T) {
	h := newHarness(t, &fakeSender{})

	err := h.execute(context.Background(), "--sequence", filepath.Join(h.tempDir, "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing sequence file")
	}
	if len(h.factory.calls) != 0 {
		t.Error("no client should be created when the sequence cannot be loaded")
	}
}

func TestList_FilterAndExport(t *testing.T) {
	sender := &fakeSender{}
	h := newHarness(t, sender)
	exportPath := filepath.Join(h.tempDir, "param.json")

	if err := h.execute(context.Background(), "list", "--filter", "/param/*", "--export", exportPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.sent) != 0 {
		t.Errorf("list must not send, got %d messages", len(sender.sent))
	}
	output := h.out.String()
	if !strings.Contains(output, "Sequence of 2 message(s):") {
		t.Errorf("unexpected list output:\n%s", output)
	}
	if !strings.Contains(output, "✓ Exported 2 message(s) to "+exportPath) {
		t.Errorf("missing export confirmation in:\n%s", output)
	}

	cases, err := h.storage.Load(exportPath)
	if err != nil {
		t.Fatalf("failed to load export: %v", err)
	}
	var addresses []string
	for _, tc := range cases {
		addresses = append(addresses, tc.Address)
	}
	if diff := cmp.Diff([]string{"/param/bpm", "/param/speed"}, addresses); diff != "" {
		t.Errorf("exported addresses mismatch (-want +got):\n%s", diff)
	}
}

func TestList_NoMatches(t *testing.T) {
	h := newHarness(t, &fakeSender{})

	if err := h.execute(context.Background(), "list", "--filter", "*volume*"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := h.out.String()
	if !strings.Contains(output, `No messages match "*volume*"`) {
		t.Errorf("missing no-match notice in:\n%s", output)
	}
	if strings.Contains(output, "Sequence of") {
		t.Errorf("nothing should be listed:\n%s", output)
	}
}

// fakeViewer takes the first received message and closes
type fakeViewer struct {
	got chan domain.ReceivedMessage
}

func (v *fakeViewer) View(ctx context.Context, title string, messages <-chan domain.ReceivedMessage) error {
	select {
	case msg := <-messages:
		v.got <- msg
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Second):
		return errors.New("no message received")
	}
}

func TestListen_ViewStopsListener(t *testing.T) {
	cfg := config.New()
	viewer := &fakeViewer{got: make(chan domain.ReceivedMessage, 1)}
	lc := NewListenCommand(cfg, ui.NewFormatterTo(&bytes.Buffer{}), viewer)

	listener := transport.NewListener("127.0.0.1:0", nil)
	if err := listener.Listen(); err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- lc.view(context.Background(), listener)
	}()

	client := transport.NewOSCClient("127.0.0.1", listener.Addr().(*net.UDPAddr).Port, nil)
	if err := client.Send("/bpm", []any{int32(128)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listen view did not stop")
	}

	msg := <-viewer.got
	if msg.Address != "/bpm" {
		t.Errorf("expected /bpm, got %s", msg.Address)
	}
}
