// ABOUTME: Word-paced streaming of reply text: splits on Unicode word boundaries
// ABOUTME: and emits fixed-size word chunks with a delay, simulating typing.

package stream

import (
	"context"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

const (
	// DefaultWordsPerChunk keeps chunks short enough to read as they arrive.
	DefaultWordsPerChunk = 3
	// DefaultDelay is the pause between chunks.
	DefaultDelay = 50 * time.Millisecond
)

// Pacer streams text in word chunks. The zero value uses the defaults.
type Pacer struct {
	WordsPerChunk int
	Delay         time.Duration
}

// Stream emits text in word chunks on the returned channel. Concatenating
// every chunk reproduces the input exactly; whitespace travels with the word
// preceding it. The channel closes when the text is exhausted or ctx is done.
func (p Pacer) Stream(ctx context.Context, text string) <-chan string {
	words := p.WordsPerChunk
	if words <= 0 {
		words = DefaultWordsPerChunk
	}
	delay := p.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	out := make(chan string)
	go func() {
		defer close(out)
		first := true
		for _, chunk := range chunks(text, words) {
			if !first {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}
			first = false
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// chunks groups the text into runs of n words. Word boundaries follow
// UAX #29, so punctuation and multi-byte scripts segment correctly.
func chunks(text string, n int) []string {
	if text == "" {
		return nil
	}

	var (
		out     []string
		current strings.Builder
		words   int
	)
	state := -1
	rest := text
	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		current.WriteString(segment)
		if strings.TrimSpace(segment) != "" {
			words++
		}
		// Flush on the whitespace run after the nth word so the chunk
		// carries its trailing separator.
		if words >= n && (len(rest) == 0 || strings.TrimSpace(segment) == "") {
			out = append(out, current.String())
			current.Reset()
			words = 0
		}
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}
