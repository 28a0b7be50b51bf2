// Package token implements the lazy token source the driver feeds into the
// word table: a sequence of (bytes) tokens delimited by any byte in a
// separator set. Grounded on the teacher's
// internal/adapters/stream/wordprocessor byte classification (an ASCII
// lookup table is faster than per-byte branching), repurposed here from
// "is this a word character" to "is this a separator" since spec.md's
// tokens are maximal separator-free runs, not restricted to letters/digits.
//
// No repository in the retrieved pack imports a memory-mapping library, so
// this reads through a buffered *os.File rather than an mmap window;
// spec.md §4.B only requires a lazy sequence of tokens, which bufio.Reader
// satisfies without pulling in an unfounded dependency.
package token

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
	"github.com/baditaflorin/go_cluster_words/internal/pool"
)

// DefaultSeparators is the default separator set from spec.md §4.B.
const DefaultSeparators = " \r\n\t"

const asciiTableSize = 256

// separatorTable is an ASCII/byte lookup table built from a separator set,
// so classification during the hot scan loop is a single slice index
// instead of a loop over the separator string.
type separatorTable [asciiTableSize]bool

func newSeparatorTable(separators string) separatorTable {
	var t separatorTable
	for i := 0; i < len(separators); i++ {
		t[separators[i]] = true
	}
	return t
}

// Scanner is a ports.TokenSource over a file, splitting on a separator set.
type Scanner struct {
	f       *os.File
	r       *bufio.Reader
	seps    separatorTable
	bufPool *pool.BufferPool
	done    bool
}

// Open opens path and returns a Scanner using the given separator set (pass
// DefaultSeparators for spec.md's default {' ', '\r', '\n', '\t'}).
func Open(path string, separators string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return &Scanner{
		f:       f,
		r:       bufio.NewReaderSize(f, 64*1024),
		seps:    newSeparatorTable(separators),
		bufPool: pool.NewBufferPool(64),
	}, nil
}

// Next returns the next token, or ok=false at end of stream. Empty runs
// between adjacent separators are never yielded: a separator that arrives
// while no token bytes are buffered is skipped.
func (s *Scanner) Next() ([]byte, bool, error) {
	if s.done {
		return nil, false, nil
	}

	buf := s.bufPool.Get()
	defer s.bufPool.Put(buf)

	for {
		b, err := s.r.ReadByte()
		if err != nil {
			s.done = true
			if err == io.EOF {
				if len(*buf) > 0 {
					tok := append([]byte(nil), *buf...)
					return tok, true, nil
				}
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("%w: %v", domain.ErrIO, err)
		}

		if s.seps[b] {
			if len(*buf) > 0 {
				tok := append([]byte(nil), *buf...)
				return tok, true, nil
			}
			continue
		}

		*buf = append(*buf, b)
	}
}

// Close releases the underlying file handle.
func (s *Scanner) Close() error {
	return s.f.Close()
}
