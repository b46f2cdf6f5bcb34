package csrgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMETISFormat indicates the input stream does not conform to the
// METIS graph file grammar described in spec §6.
var ErrMETISFormat = fmt.Errorf("csrgraph: malformed METIS graph file")

// ReadMETIS parses the METIS graph file format (spec §6): comment
// lines start with '%'; the first non-comment line is "n m [fmt]"
// where fmt, if present, is a 3-char flag whose second character
// signals per-vertex weights and whose third signals per-edge
// weights; each of the following n lines lists, for one vertex in
// order, an optional leading vertex weight followed by 1-based
// neighbor ids (each followed by an edge weight when fmt indicates
// edge weights are present).
//
// ReadMETIS builds the graph via Builder, so the result already
// carries Build's symmetry-by-construction and structural checks.
func ReadMETIS(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if header == nil {
		return nil, fmt.Errorf("%w: missing header", ErrMETISFormat)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header needs at least n and m", ErrMETISFormat)
	}
	n, err := strconv.ParseUint(header[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: n: %v", ErrMETISFormat, err)
	}
	// header[1] (m) is redundant with what Builder will compute; it is
	// not re-validated here, matching the reference reader which trusts
	// the declared count only for preallocation sizing.
	hasVWeight, hasEWeight := false, false
	if len(header) >= 3 {
		fmtFlag := header[2]
		if len(fmtFlag) != 3 {
			return nil, fmt.Errorf("%w: fmt flag must be 3 chars, got %q", ErrMETISFormat, fmtFlag)
		}
		hasVWeight = fmtFlag[1] == '1'
		hasEWeight = fmtFlag[2] == '1'
	}

	b := NewBuilder(n)
	var v uint64
	for v = 0; v < n && sc.Scan(); {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "%") {
			continue
		}
		toks := strings.Fields(line)
		idx := 0
		if hasVWeight {
			if idx >= len(toks) {
				return nil, fmt.Errorf("%w: vertex %d missing weight", ErrMETISFormat, v)
			}
			w, err := strconv.ParseUint(toks[idx], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: vertex %d weight: %v", ErrMETISFormat, v, err)
			}
			b.SetVertexWeight(v, w)
			idx++
		}
		for idx < len(toks) {
			nid, err := strconv.ParseUint(toks[idx], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: vertex %d neighbor: %v", ErrMETISFormat, v, err)
			}
			if nid == 0 {
				return nil, fmt.Errorf("%w: vertex %d neighbor id must be 1-based", ErrMETISFormat, v)
			}
			idx++
			ew := uint64(1)
			if hasEWeight {
				if idx >= len(toks) {
					return nil, fmt.Errorf("%w: vertex %d missing edge weight", ErrMETISFormat, v)
				}
				ew, err = strconv.ParseUint(toks[idx], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: vertex %d edge weight: %v", ErrMETISFormat, v, err)
				}
				idx++
			}
			to := nid - 1
			if to == v {
				return nil, fmt.Errorf("%w: vertex %d lists itself as neighbor (self-loop)", ErrMETISFormat, v)
			}
			// Each undirected edge is listed from both endpoints in a
			// well-formed file; only add it once (from the lower id)
			// to avoid doubling it, matching write_metis_graph's output.
			if to > v {
				b.AddEdge(v, to, ew)
			}
		}
		v++
	}
	if v != n {
		return nil, fmt.Errorf("%w: expected %d vertex lines, got %d", ErrMETISFormat, n, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMETISFormat, err)
	}

	return b.Build()
}

// WriteMETIS serializes g in the METIS graph file format (spec §6),
// always emitting the "011" fmt flag (vertex and edge weights both
// present) since Graph always carries both.
func WriteMETIS(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d 011\n", g.N(), g.M()/2); err != nil {
		return err
	}
	for v := uint64(0); v < g.N(); v++ {
		ids, weights := g.Neighbors(v)
		var sb strings.Builder
		sb.WriteString(strconv.FormatUint(g.VertexWeight(v), 10))
		for i, id := range ids {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(id+1, 10))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(weights[i], 10))
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
