package discovery

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jobsift/jobsift/internal/model"
)

// batchSize mirrors the page size of the upstream job board: one metrics
// signal per 25 postings.
const batchSize = 25

// FileSource replays postings from a JSONL file, one Posting object per
// line. It stands in for the live crawler: the same events, the same
// one-at-a-time ordering, driven from an exported crawl dump.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from the JSONL file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Run streams every posting in file order. Undecodable lines are surfaced
// via OnError and skipped. A non-nil error from OnData aborts the stream;
// everything downstream of the listener is then in an unknown state and the
// run must not continue. OnEnd fires only on normal completion.
func (s *FileSource) Run(ctx context.Context, l Listener) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening posting input: %w", err)
	}
	defer f.Close()

	var m Metrics
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var p model.Posting
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			m.Failed++
			l.OnError(fmt.Errorf("line %d: %w", line, err))
			continue
		}

		if err := l.OnData(ctx, p); err != nil {
			return fmt.Errorf("posting on line %d: %w", line, err)
		}
		m.Processed++

		if m.Processed%batchSize == 0 {
			l.OnMetrics(m)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading posting input: %w", err)
	}

	// The loop already reported a full final batch; don't repeat it.
	if m.Processed%batchSize != 0 || m.Processed == 0 {
		l.OnMetrics(m)
	}
	l.OnEnd()
	return nil
}
