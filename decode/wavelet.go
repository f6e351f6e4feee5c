package decode

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/mferrera/seismic-forward"
)

// wordTokenizer pulls whitespace-separated tokens out of a stream that
// mixes a free-form header line with numeric data, one call at a time.
type wordTokenizer struct {
	lines *bufio.Scanner
	words *bufio.Scanner
}

func newWordTokenizer(r *bufio.Reader) *wordTokenizer {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &wordTokenizer{lines: lines}
}

func (t *wordTokenizer) nextLine() (string, bool) {
	if !t.lines.Scan() {
		return "", false
	}
	return t.lines.Text(), true
}

func (t *wordTokenizer) next() (string, error) {
	for t.words == nil || !t.words.Scan() {
		if !t.lines.Scan() {
			if err := t.lines.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("unexpected end of file")
		}
		t.words = bufio.NewScanner(strings.NewReader(t.lines.Text()))
		t.words.Split(bufio.ScanWords)
	}
	return t.words.Text(), nil
}

// ReadLandmarkWavelet parses the LANDMARK ASCII wavelet format (§6):
// a free-form header line, a line of "N i0 dtW" (i0 is 1-based), then
// N+1 amplitude samples, whitespace-separated. Grounded on the
// original Wavelet constructor's ifstream-based parse.
func ReadLandmarkWavelet(uri, configURI string) (*seismic.Wavelet, error) {
	r, closer, err := openVFSReader(uri, configURI)
	if err != nil {
		return nil, err
	}
	defer closer()

	tok := newWordTokenizer(r)

	if _, ok := tok.nextLine(); !ok {
		return nil, fmt.Errorf("decode: empty wavelet file %q", uri)
	}
	// header line is free-form descriptive text and carries no
	// numeric content the generator needs.

	nTok, err := tok.next()
	if err != nil {
		return nil, fmt.Errorf("decode: wavelet %q: %w", uri, err)
	}
	i0Tok, err := tok.next()
	if err != nil {
		return nil, fmt.Errorf("decode: wavelet %q: %w", uri, err)
	}
	dtTok, err := tok.next()
	if err != nil {
		return nil, fmt.Errorf("decode: wavelet %q: %w", uri, err)
	}

	n, err := strconv.Atoi(nTok)
	if err != nil {
		return nil, fmt.Errorf("decode: wavelet %q: bad sample count %q", uri, nTok)
	}
	i0OneBased, err := strconv.Atoi(i0Tok)
	if err != nil {
		return nil, fmt.Errorf("decode: wavelet %q: bad zero-time index %q", uri, i0Tok)
	}
	dtW, err := strconv.ParseFloat(dtTok, 64)
	if err != nil {
		return nil, fmt.Errorf("decode: wavelet %q: bad sample interval %q", uri, dtTok)
	}

	samples := make([]float64, 0, n+1)
	for len(samples) < n+1 {
		t, err := tok.next()
		if err != nil {
			return nil, fmt.Errorf("decode: wavelet %q: %w", uri, err)
		}
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, fmt.Errorf("decode: wavelet %q: bad sample value %q", uri, t)
		}
		samples = append(samples, v)
	}

	return seismic.NewSampledWavelet(samples, i0OneBased-1, dtW), nil
}
