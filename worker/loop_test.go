package worker

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/corvid-labs/havoc/search"
)

func newTestEngine() *search.Engine {
	return search.NewEngine(1 << 10)
}

func discardLogger() zerolog.Logger {
	return zerolog.New(ioutil.Discard)
}

func runLoop(t *testing.T, requests string) string {
	t.Helper()
	var out bytes.Buffer
	err := Loop(strings.NewReader(requests), &out, newTestEngine(), discardLogger())
	if err != nil {
		t.Fatalf("Loop returned error: %v", err)
	}
	return out.String()
}

func TestEvalStartPosition(t *testing.T) {
	out := runLoop(t, `{"command":"eval","moves":[],"color":"w","depth":1}`+"\n")
	if strings.TrimSpace(out) != "Score: 0" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "Score: 0")
	}
}

func TestRepetitionDrawsAtDepthOne(t *testing.T) {
	req := `{"command":"eval","moves":["g1f3","g8f6","f3g1","f6g8","g1f3","g8f6","f3g1","f6g8"],"color":"w","depth":1}` + "\n"
	out := runLoop(t, req)
	if strings.TrimSpace(out) != "Score: 0" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "Score: 0")
	}
}

func TestQuitTerminatesWithoutError(t *testing.T) {
	var out bytes.Buffer
	err := Loop(strings.NewReader("quit\n"), &out, newTestEngine(), discardLogger())
	if err != nil {
		t.Errorf("Loop(quit) returned %v, want nil", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output before quit, got %q", out.String())
	}
}

func TestMalformedRequestIsAnError(t *testing.T) {
	var out bytes.Buffer
	err := Loop(strings.NewReader("not json\n"), &out, newTestEngine(), discardLogger())
	if err == nil {
		t.Errorf("expected a malformed request to return an error")
	}
}

func TestFoolsMateEvalMove(t *testing.T) {
	req := `{"command":"eval_move","moves":["f2f3","e7e5","g2g4"],"color":"b","depth":3}` + "\n"
	out := runLoop(t, req)
	fields := strings.Fields(out)
	if len(fields) < 2 || fields[0] != "Qh4#" {
		t.Fatalf("got %q, want first token Qh4#", out)
	}
}
