package numrand

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// loadTrace reads a reference trace from testdata: one hexadecimal word per line, lines
// starting with '#' are comments.
func loadTrace(t *testing.T, name string) []uint64 {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	var words []uint64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := strconv.ParseUint(line, 16, 64)
		require.NoError(t, err, "line %q", line)
		words = append(words, w)
	}
	require.NoError(t, sc.Err())
	require.NotEmpty(t, words)
	return words
}

// sliceSource32 replays fixed words and counts the draws.
type sliceSource32 struct {
	words []uint32
	draws int
}

func (s *sliceSource32) NextRaw32() uint32 {
	v := s.words[s.draws%len(s.words)]
	s.draws++
	return v
}

type sliceSource64 struct {
	words []uint64
	draws int
}

func (s *sliceSource64) NextRaw64() uint64 {
	v := s.words[s.draws%len(s.words)]
	s.draws++
	return v
}
