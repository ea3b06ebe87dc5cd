// ABOUTME: Tests for word chunking and the paced channel.
// ABOUTME: Chunks must concatenate back to the original text byte for byte.

package stream

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestChunks_Rejoin(t *testing.T) {
	t.Parallel()

	texts := []string{
		"Great! I've analyzed your goal: lose 5kg in 2 months",
		"one",
		"  leading and trailing  ",
		"tabs\tand\nnewlines survive intact",
		"múlti-byte wörds, ok?",
		"",
	}

	for _, text := range texts {
		for _, n := range []int{1, 2, 3, 10} {
			if got := strings.Join(chunks(text, n), ""); got != text {
				t.Errorf("chunks(%q, %d) rejoined to %q", text, n, got)
			}
		}
	}
}

func TestChunks_WordCounts(t *testing.T) {
	t.Parallel()

	got := chunks("alpha beta gamma delta epsilon", 2)
	want := []string{"alpha beta ", "gamma delta ", "epsilon"}
	if len(got) != len(want) {
		t.Fatalf("chunks = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunks_EmptyText(t *testing.T) {
	t.Parallel()

	if got := chunks("", 3); got != nil {
		t.Errorf("chunks(\"\") = %q, want nil", got)
	}
}

func TestStream_DeliversAllChunks(t *testing.T) {
	t.Parallel()

	p := Pacer{WordsPerChunk: 2, Delay: time.Millisecond}
	text := "the quick brown fox jumps over the lazy dog"

	var b strings.Builder
	for chunk := range p.Stream(context.Background(), text) {
		b.WriteString(chunk)
	}
	if b.String() != text {
		t.Errorf("streamed %q, want %q", b.String(), text)
	}
}

func TestStream_CancelStopsEarly(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	p := Pacer{WordsPerChunk: 1, Delay: time.Hour}

	ch := p.Stream(ctx, "alpha beta gamma")
	<-ch // first chunk arrives without delay
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Error("stream did not stop after cancel")
	}
}

func TestStream_ZeroValueUsesDefaults(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for chunk := range (Pacer{}).Stream(context.Background(), "a b c d") {
		b.WriteString(chunk)
	}
	if b.String() != "a b c d" {
		t.Errorf("streamed %q", b.String())
	}
}
