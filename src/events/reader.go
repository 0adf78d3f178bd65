// Package events reads stimulus files into the control system queue.
package events

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"elevsim/src/types"
)

// Sink receives parsed stimuli. *dispatcher.ControlSystem satisfies it.
type Sink interface {
	Enqueue(stimulus types.Stimulus)
}

// LineFunc observes each raw line before it is parsed. Lines are 1-based.
type LineFunc func(number int, text string)

// Read parses r line by line into sink and returns the number of stimuli
// enqueued. The first malformed line stops reading with an error naming it.
func Read(r io.Reader, sink Sink, onLine LineFunc) (int, error) {
	scanner := bufio.NewScanner(r)
	lineNo, enqueued := 0, 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if onLine != nil {
			onLine(lineNo, line)
		}
		stimulus, err := types.ParseStimulus(line)
		if err != nil {
			return enqueued, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sink.Enqueue(stimulus)
		enqueued++
	}
	return enqueued, scanner.Err()
}

// ReadFile opens path and reads it with Read. A missing file yields an error
// matching os.ErrNotExist.
func ReadFile(path string, sink Sink, onLine LineFunc) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return Read(file, sink, onLine)
}
