// Package demo is the sparsedemo scenario: fill both diagonals of an n×n area,
// print a dense fragment, the occupied count and the list of occupied cells.
package demo

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/nik2704/sparse-matrix/internal/cfg"
	"github.com/nik2704/sparse-matrix/sparse"
)

// Default is the value of every empty cell in the demo matrix.
const Default = 0

const (
	_fmtCell   = "%3d "
	_fmtSize   = "\nOccupied cells: %d\n"
	_titleFrag = "Fragment [%d,%d]..[%d,%d]:\n"
	_titleList = "\nOccupied cells (position and value):\n"
)

// Fill writes the main diagonal (i,i)=i and then the anti-diagonal
// (i,n-1-i)=n-1-i for i in [0,n). On the crossing cell of odd n the later
// write wins.
func Fill(m *sparse.Matrix[int], n int) error {
	for i := 0; i < n; i++ {
		if err := m.Row(i).At(i).Set(i).Err(); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if err := m.Row(i).At(n - 1 - i).Set(n - 1 - i).Err(); err != nil {
			return err
		}
	}

	return nil
}

// Render prints the [from..to]×[from..to] fragment with width-3 columns, the
// occupied count and a table of every occupied cell.
func Render(w io.Writer, m *sparse.Matrix[int], from, to int) error {
	frag, err := m.Fragment(from, from, to, to)
	if err != nil {
		return errors.Wrap(err, "fragment")
	}

	if _, err = fmt.Fprintf(w, _titleFrag, from, from, to, to); err != nil {
		return err
	}
	for _, row := range frag {
		for _, v := range row {
			if _, err = fmt.Fprintf(w, _fmtCell, v); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintf(w, _fmtSize, m.Size()); err != nil {
		return err
	}
	if _, err = io.WriteString(w, _titleList); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Row", "Col", "Value"})
	for c := range m.All() {
		table.Append([]string{strconv.Itoa(c.Row), strconv.Itoa(c.Col), strconv.Itoa(c.Value)})
	}
	table.Render()

	return nil
}

// Run executes the scenario described by c. Output goes to stdout, or to
// c.Output created on fs.
func Run(c cfg.Config, fs afero.Fs, stdout io.Writer, log *zap.Logger) (err error) {
	m := sparse.New[int](Default, sparse.WithLogger(log))
	if err = Fill(m, c.Dimension); err != nil {
		return errors.Wrap(err, "fill diagonals")
	}
	log.Info("matrix filled", zap.Int("dimension", c.Dimension), zap.Int("size", m.Size()))

	w := stdout
	if c.Output != "" {
		f, createErr := fs.Create(c.Output)
		if createErr != nil {
			return errors.Wrapf(createErr, "create %q", c.Output)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = errors.Wrapf(closeErr, "close %q", c.Output)
			}
		}()
		w = f
	}

	if err = Render(w, m, c.FragmentFrom, c.FragmentTo); err != nil {
		return errors.Wrap(err, "render")
	}
	log.Info("report written", zap.String("output", outputName(c.Output)))

	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}

	return path
}
