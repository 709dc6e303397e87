package solution

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"mvrppd/internal/instance"
	"mvrppd/pkg/apperr"
)

// Read parses the plain-text solution format from r against inst: a
// whitespace-separated stream of integers, first one path length per
// vehicle, then the concatenated vertex ids of every vehicle's path in
// order. Newlines carry no meaning; they are treated the same as any
// other whitespace, matching the original token-stream reader.
func Read(inst *instance.Instance, r io.Reader) (*Solution, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(sc.Text())
	}

	nk := inst.NumVehicles()
	paths := make([][]int, nk)

	for k := 0; k < nk; k++ {
		size, err := next()
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeSolutionParse, "malformed path size")
		}
		paths[k] = make([]int, size)
		for i := range paths[k] {
			paths[k][i] = inst.NumVertices()
		}
	}

	for k := 0; k < nk; k++ {
		for i := range paths[k] {
			v, err := next()
			if err != nil {
				return nil, apperr.Wrap(err, apperr.CodeSolutionParse, "malformed path vertex")
			}
			paths[k][i] = v
		}
	}

	return New(inst, paths), nil
}

// ReadFile opens path and parses it as a solution file against inst.
func ReadFile(inst *instance.Instance, path string) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.ErrSolutionFileNotFound
		}
		return nil, apperr.Wrap(err, apperr.CodeIO, "failed to open solution file")
	}
	defer f.Close()
	return Read(inst, f)
}
