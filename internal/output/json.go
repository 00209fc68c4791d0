package output

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/engine"
)

// JSONPosition is a cell coordinate in JSON form.
type JSONPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONJump represents a jump in JSON format.
type JSONJump struct {
	From JSONPosition `json:"from"`
	Over JSONPosition `json:"over"`
	To   JSONPosition `json:"to"`
}

// JSONStep is one board of a solution path.
type JSONStep struct {
	Index     int       `json:"index"`
	Board     string    `json:"board"`
	Jump      *JSONJump `json:"jump,omitempty"` // nil for the starting board
	Remaining int       `json:"remaining"`
}

// JSONStats mirrors solver.Stats.
type JSONStats struct {
	Nodes      int   `json:"nodes"`
	Attempts   int   `json:"attempts"`
	Jumps      int   `json:"jumps"`
	DeadEnds   int   `json:"deadEnds"`
	MaxDepth   int   `json:"maxDepth"`
	DurationNS int64 `json:"durationNs"`
	Remaining  int   `json:"remaining"`
}

// Report is the JSON form of one solution.
type Report struct {
	RunID  string     `json:"runId"`
	Label  string     `json:"label,omitempty"`
	Size   int        `json:"size"`
	Start  string     `json:"start"`
	Target string     `json:"target,omitempty"`
	Solved bool       `json:"solved"`
	Steps  []JSONStep `json:"steps,omitempty"`
	Stats  JSONStats  `json:"stats"`
}

// BatchReport holds multiple reports for array output.
type BatchReport struct {
	Reports []*Report `json:"reports"`
}

func toJSONPosition(p board.Position) JSONPosition {
	return JSONPosition{Row: p.Row, Col: p.Col}
}

// NewReport converts a solution to its JSON form under a fresh run id.
func NewReport(s Solution) (*Report, error) {
	st := s.Result.Stats
	r := &Report{
		RunID:  uuid.NewString(),
		Label:  s.Label,
		Solved: s.Result.Solved(),
		Stats: JSONStats{
			Nodes:      st.Nodes,
			Attempts:   st.Attempts,
			Jumps:      st.Jumps,
			DeadEnds:   st.DeadEnds,
			MaxDepth:   st.MaxDepth,
			DurationNS: st.Duration.Nanoseconds(),
			Remaining:  st.Remaining,
		},
	}
	if s.Start != nil {
		r.Size = s.Start.Size()
		r.Start = board.Format(s.Start)
	}
	if s.Target != nil {
		r.Target = board.Format(s.Target)
	}
	if !r.Solved {
		return r, nil
	}

	jumps, err := engine.PathJumps(s.Result.Path)
	if err != nil {
		return nil, err
	}
	r.Steps = make([]JSONStep, len(s.Result.Path))
	for i, b := range s.Result.Path {
		step := JSONStep{Index: i, Board: board.Format(b), Remaining: b.PieceCount()}
		if i > 0 {
			j := jumps[i-1]
			step.Jump = &JSONJump{
				From: toJSONPosition(j.From),
				Over: toJSONPosition(j.Over),
				To:   toJSONPosition(j.To),
			}
		}
		r.Steps[i] = step
	}
	if r.Size == 0 {
		r.Size = s.Result.Path[0].Size()
		r.Start = r.Steps[0].Board
	}
	return r, nil
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONWriter writes solutions in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports into one array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteSolution buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteSolution(s Solution) error {
	r, err := NewReport(s)
	if err != nil {
		return err
	}
	if jw.single {
		return encode(jw.w, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := encode(jw.w, &BatchReport{Reports: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
