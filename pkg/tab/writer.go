package tab

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// valuesPerLine is how many numeric tokens a serialized stream line carries.
const valuesPerLine = 5

// WriteTo serializes the table back to the tab grammar. Numeric values are
// written with the shortest representation that re-parses to the same
// float64, so a write/re-read cycle reproduces the axes and grids
// bit-for-bit. Flag keywords are placed before the EOS= token, which must
// come last on the header line because its value runs to end of line.
func (ft *FluidTable) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}

	var flags []string
	if ft.WaterOption {
		flags = append(flags, "WATER-OPTION")
	}
	if ft.Entropy {
		flags = append(flags, "ENTROPY")
	}
	if ft.NonEquilibrium {
		flags = append(flags, "NONEQ")
	}
	header := "'" + ft.FluidName + "'"
	if len(flags) > 0 {
		header += " " + strings.Join(flags, " ")
	}
	header += " EOS=" + ft.EOS

	if _, err := fmt.Fprintf(cw, "%s\n %d %d %s\n", header, ft.NTABP, ft.NTABT, ftoa(ft.TotalWaterFraction)); err != nil {
		return cw.n, err
	}

	stream := make([]float64, 0, ft.NTABP+3*ft.NTABT)
	stream = append(stream, ft.PressureAxis...)
	stream = append(stream, ft.TemperatureAxis...)
	stream = append(stream, ft.BubblePointPress...)
	stream = append(stream, ft.DewPointPress...)
	if err := writeStream(cw, stream); err != nil {
		return cw.n, err
	}

	for _, prop := range ft.Properties() {
		t := ft.tables[prop]
		if _, err := fmt.Fprintf(cw, "%s %s\n", prop.Phrase(), t.Unit); err != nil {
			return cw.n, err
		}
		// column-major: temperature varies fastest
		flat := make([]float64, 0, ft.NTABT*ft.NTABP)
		for i := 0; i < ft.NTABP; i++ {
			for j := 0; j < ft.NTABT; j++ {
				flat = append(flat, t.Data[j][i])
			}
		}
		if err := writeStream(cw, flat); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

func writeStream(w io.Writer, vals []float64) error {
	for i := 0; i < len(vals); i += valuesPerLine {
		end := i + valuesPerLine
		if end > len(vals) {
			end = len(vals)
		}
		toks := make([]string, 0, valuesPerLine)
		for _, v := range vals[i:end] {
			toks = append(toks, ftoa(v))
		}
		if _, err := fmt.Fprintf(w, " %s\n", strings.Join(toks, " ")); err != nil {
			return err
		}
	}
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'E', -1, 64)
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
