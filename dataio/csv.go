package dataio

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/routespan/core"
)

// columns per record: id, x, y.
const fieldCount = 3

// ReadNodesFile parses and validates a node CSV from disk.
func ReadNodesFile(path string) ([]core.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: open %s", path)
	}
	defer f.Close()

	nodes, err := ReadNodes(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: parse %s", path)
	}

	return nodes, nil
}

// ReadNodes parses `id,x,y` records from r (first row is a header) and
// validates the resulting node set. The returned slice is ordered by ID so
// downstream position-parity conventions are stable regardless of file
// order.
func ReadNodes(r io.Reader) ([]core.Node, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldCount
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	if len(records) < 1 {
		return nil, errors.New("empty input")
	}

	// Drop the header; its content is not interpreted.
	records = records[1:]

	nodes := make([]core.Node, 0, len(records))
	for i, rec := range records {
		n, err := parseRow(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2) // 1-based, after header
		}
		nodes = append(nodes, n)
	}

	if err := ValidateNodes(nodes); err != nil {
		return nil, err
	}

	log.WithField("nodes", len(nodes)).Debug("parsed node CSV")

	return sortByID(nodes), nil
}

// ValidateNodes enforces the dataset preconditions the solver relies on:
// at least two nodes, unique contiguous IDs from 0, finite coordinates.
func ValidateNodes(nodes []core.Node) error {
	if err := core.ValidateNodeSet(nodes); err != nil {
		return errors.Wrap(err, "node set")
	}
	for _, n := range nodes {
		if math.IsNaN(n.X) || math.IsInf(n.X, 0) || math.IsNaN(n.Y) || math.IsInf(n.Y, 0) {
			return errors.Errorf("node %d: non-finite coordinate", n.ID)
		}
	}

	return nil
}

func parseRow(rec []string) (core.Node, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return core.Node{}, errors.Wrap(err, "id")
	}
	if id < 0 {
		return core.Node{}, errors.Errorf("negative id %d", id)
	}
	x, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return core.Node{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return core.Node{}, errors.Wrap(err, "y")
	}

	return core.Node{ID: id, X: x, Y: y}, nil
}

// sortByID orders nodes by ID without assuming the input was sorted.
// IDs are contiguous at this point, so a direct placement pass suffices.
func sortByID(nodes []core.Node) []core.Node {
	out := make([]core.Node, len(nodes))
	for _, n := range nodes {
		out[n.ID] = n
	}

	return out
}
