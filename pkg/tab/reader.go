package tab

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/flowlab-apps/olgatab-golang/pkg/parser"
)

// readState names the reader's position in the file grammar.
type readState int

const (
	seekingSection readState = iota
	parsingFluidHeader
	parsingPropertySection
)

// fluid header flag keywords, in the order they are consumed from the line
var headerFlags = []struct {
	keyword string
	set     func(*FluidTable)
}{
	{"WATER-OPTION", func(ft *FluidTable) { ft.WaterOption = true }},
	{"ENTROPY", func(ft *FluidTable) { ft.Entropy = true }},
	{"NONEQ", func(ft *FluidTable) { ft.NonEquilibrium = true }},
}

// Reader decodes a tab file in one strictly sequential pass. It starts in
// seekingSection and inspects one line at a time: a line carrying a quoted
// fluid name opens the fluid header, a line carrying a catalog phrase opens
// that property's section, and any other line is inert. Each section parse
// consumes the following lines until its numeric stream is complete, then
// the reader returns to seekingSection. Input exhaustion in seekingSection
// ends the parse; exhaustion inside a section is ErrTruncated.
type Reader struct {
	scanner *bufio.Scanner
	state   readState
	ft      *FluidTable
}

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		state:   seekingSection,
		ft:      NewFluidTable(),
	}
}

// Read runs the parse to end of input and returns the populated FluidTable.
// The table must not be queried if Read fails: a format error means token
// alignment is lost and nothing after it can be trusted.
func (r *Reader) Read() (*FluidTable, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()

		if hasQuotedName(line) {
			r.state = parsingFluidHeader
			if err := r.readFluidHeader(line); err != nil {
				return nil, err
			}
			r.state = seekingSection
			continue
		}

		if prop, ok := MatchSection(line); ok {
			r.state = parsingPropertySection
			if err := r.readPropertySection(prop, line); err != nil {
				return nil, err
			}
			r.state = seekingSection
			continue
		}

		// unrecognized line: normal traversal of sections this reader
		// does not model
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tab source: %w", err)
	}
	return r.ft, nil
}

// hasQuotedName reports whether the line contains an apostrophe-delimited
// fluid identifier.
func hasQuotedName(line string) bool {
	first := strings.IndexByte(line, '\'')
	return first >= 0 && strings.LastIndexByte(line, '\'') > first
}

// readFluidHeader decodes the fluid-metadata section. The header line yields
// the flags, the EOS name and the fluid name; the next line declares
// NTABP, NTABT and RSWTOTB; the lines after that stream the pressure axis,
// temperature axis, bubble point and dew point arrays, in that order.
func (r *Reader) readFluidHeader(line string) error {
	ft := r.ft

	s := strings.ReplaceAll(line, "'", "")
	s = strings.ReplaceAll(s, ",", " ")

	for _, f := range headerFlags {
		if strings.Contains(s, f.keyword) {
			f.set(ft)
			s = strings.ReplaceAll(s, f.keyword, "")
		}
	}

	// EOS= takes the rest of the line as its value
	if i := strings.Index(s, "EOS="); i >= 0 {
		if v := strings.TrimSpace(s[i+len("EOS="):]); v != "" {
			ft.EOS = v
		} else {
			ft.EOS = EOSUnknown
		}
		s = s[:i]
	} else {
		ft.EOS = EOSUnknown
	}

	ft.FluidName = strings.TrimSpace(s)

	if !r.scanner.Scan() {
		return r.truncated("fluid header dimension line")
	}
	dims := parser.Floats(r.scanner.Text())
	if len(dims) < 3 {
		return fmt.Errorf("%w: need NTABP NTABT RSWTOTB, got %d token(s)", ErrDimensionLine, len(dims))
	}
	ft.NTABP = int(dims[0])
	ft.NTABT = int(dims[1])
	ft.TotalWaterFraction = dims[2]
	if ft.NTABP < 1 || ft.NTABT < 1 {
		return fmt.Errorf("%w: NTABP=%d NTABT=%d", ErrDimensionLine, ft.NTABP, ft.NTABT)
	}

	data, err := r.readFloats(ft.NTABP+3*ft.NTABT, "fluid header")
	if err != nil {
		return err
	}
	np, nt := ft.NTABP, ft.NTABT
	ft.PressureAxis = data[:np:np]
	ft.TemperatureAxis = data[np : np+nt : np+nt]
	ft.BubblePointPress = data[np+nt : np+2*nt : np+2*nt]
	ft.DewPointPress = data[np+2*nt : np+3*nt]
	return nil
}

// readPropertySection decodes one property block. The header line minus the
// catalog phrase is the unit; the following lines stream NTABT*NTABP values
// in column-major order (temperature varies fastest).
func (r *Reader) readPropertySection(prop Property, line string) error {
	ft := r.ft
	if ft.NTABP == 0 || ft.NTABT == 0 {
		return fmt.Errorf("%w: %s section at undefined grid size", ErrNoFluidHeader, prop)
	}

	unit := strings.TrimSpace(strings.ReplaceAll(line, prop.Phrase(), ""))

	flat, err := r.readFloats(ft.NTABT*ft.NTABP, prop.String()+" section")
	if err != nil {
		return err
	}

	grid := make([][]float64, ft.NTABT)
	for j := range grid {
		grid[j] = make([]float64, ft.NTABP)
	}
	for i := 0; i < ft.NTABP; i++ {
		col := flat[i*ft.NTABT : (i+1)*ft.NTABT]
		for j, v := range col {
			grid[j][i] = v
		}
	}

	ft.setTable(prop, &PhysicalPropertyTable{
		Data:        grid,
		Unit:        unit,
		Description: prop.Description(),
	})
	return nil
}

// readFloats accumulates numeric tokens from the following lines until
// exactly need values have been collected. A line may contribute zero or
// many tokens; tokens beyond the required count on the final line are
// discarded. End of input before the count is met is ErrTruncated.
func (r *Reader) readFloats(need int, section string) ([]float64, error) {
	out := make([]float64, 0, need)
	for len(out) < need {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", section, err)
			}
			return nil, r.truncated(section)
		}
		ff := parser.Floats(r.scanner.Text())
		if rem := need - len(out); len(ff) > rem {
			ff = ff[:rem]
		}
		out = append(out, ff...)
	}
	return out, nil
}

func (r *Reader) truncated(section string) error {
	return fmt.Errorf("%w (%s)", ErrTruncated, section)
}
