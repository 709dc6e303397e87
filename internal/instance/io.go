package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"mvrppd/pkg/apperr"
)

// Read parses the plain-text instance format from r: a sequence of
// whitespace-separated records, one per line, each beginning with a tag
// byte. A "k" record describes one vehicle:
//
//	k tStart tLimit speed capacity  x y tVisit  x y tVisit
//
// (the vehicle's own source depot coordinates/service time, then its
// target depot coordinates/service time). An "r" record describes one
// request in the same shape:
//
//	r profit tCreate demand  x y tVisit  x y tVisit
//
// Parsing stops at the first line whose leading token is neither "k" nor
// "r". Vertex ids are assigned in the order records are read — all
// request source/target pairs get their ids exactly when that "r" record
// is read, likewise for "k" records — matching the construction order
// mandated by the data model.
func Read(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	inst := &Instance{}

	var x, y, tVisits []float64

	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}

		var tag string
		var rest string
		if idx := indexOfSpace(line); idx >= 0 {
			tag, rest = line[:idx], line[idx+1:]
		} else {
			tag, rest = line, ""
		}

		switch tag {
		case "k":
			var tStart, tLimit, speed, capacity float64
			var x1, y1, tv1, x2, y2, tv2 float64
			n, err := fmt.Sscan(rest, &tStart, &tLimit, &speed, &capacity,
				&x1, &y1, &tv1, &x2, &y2, &tv2)
			if err != nil || n != 10 {
				return nil, apperr.Wrap(err, apperr.CodeInstanceParse, "malformed vehicle record")
			}
			inst.tStarts = append(inst.tStarts, tStart)
			inst.tLimits = append(inst.tLimits, tLimit)
			inst.speeds = append(inst.speeds, speed)
			inst.capacities = append(inst.capacities, capacity)

			inst.sourcesK = append(inst.sourcesK, len(x))
			x = append(x, x1)
			y = append(y, y1)
			tVisits = append(tVisits, tv1)

			inst.targetsK = append(inst.targetsK, len(x))
			x = append(x, x2)
			y = append(y, y2)
			tVisits = append(tVisits, tv2)

			inst.numVehicles++
		case "r":
			var profit, tCreate, demand float64
			var x1, y1, tv1, x2, y2, tv2 float64
			n, err := fmt.Sscan(rest, &profit, &tCreate, &demand,
				&x1, &y1, &tv1, &x2, &y2, &tv2)
			if err != nil || n != 9 {
				return nil, apperr.Wrap(err, apperr.CodeInstanceParse, "malformed request record")
			}
			inst.profits = append(inst.profits, profit)
			inst.tCreates = append(inst.tCreates, tCreate)
			inst.demandsR = append(inst.demandsR, demand)
			inst.sumProfit += profit

			inst.sourcesR = append(inst.sourcesR, len(x))
			x = append(x, x1)
			y = append(y, y1)
			tVisits = append(tVisits, tv1)

			inst.targetsR = append(inst.targetsR, len(x))
			x = append(x, x2)
			y = append(y, y2)
			tVisits = append(tVisits, tv2)

			inst.numRequests++
		default:
			// Any other leading tag terminates parsing, per the format's
			// contract: the rest of the stream (if any) belongs to the
			// caller, not to the instance.
			goto done
		}
	}
done:
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeIO, "failed to read instance stream")
	}

	inst.x, inst.y, inst.tVisits = x, y, tVisits
	inst.numVertices = len(x)

	inst.init()
	return inst, nil
}

// ReadFile opens path and parses it as an instance file.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.ErrInstanceFileNotFound
		}
		return nil, apperr.Wrap(err, apperr.CodeIO, "failed to open instance file")
	}
	defer f.Close()
	return Read(f)
}

// Write serializes the instance to w in the plain-text format described
// by Read: one "k" line per vehicle followed by one "r" line per request.
func (inst *Instance) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for k := 0; k < inst.numVehicles; k++ {
		src, tgt := inst.sourcesK[k], inst.targetsK[k]
		if _, err := fmt.Fprintf(bw, "k %g %g %g %g %g %g %g %g %g %g\n",
			inst.tStarts[k], inst.tLimits[k], inst.speeds[k], inst.capacities[k],
			inst.x[src], inst.y[src], inst.tVisits[src],
			inst.x[tgt], inst.y[tgt], inst.tVisits[tgt]); err != nil {
			return apperr.Wrap(err, apperr.CodeIO, "failed to write vehicle record")
		}
	}

	for r := 0; r < inst.numRequests; r++ {
		src, tgt := inst.sourcesR[r], inst.targetsR[r]
		if _, err := fmt.Fprintf(bw, "r %g %g %g %g %g %g %g %g %g\n",
			inst.profits[r], inst.tCreates[r], inst.demandsR[r],
			inst.x[src], inst.y[src], inst.tVisits[src],
			inst.x[tgt], inst.y[tgt], inst.tVisits[tgt]); err != nil {
			return apperr.Wrap(err, apperr.CodeIO, "failed to write request record")
		}
	}

	return bw.Flush()
}

// WriteFile writes the instance to path in the plain-text format.
func (inst *Instance) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.ErrInstanceFileNotWritten
	}
	defer f.Close()
	return inst.Write(f)
}

// indexOfSpace returns the index of the first space or tab in s, or -1.
func indexOfSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	return -1
}
