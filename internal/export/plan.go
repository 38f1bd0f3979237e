package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/hanoi/internal/hanoi"
)

// Source is a sequence of moves for an n-disk tower. Every disk starts on
// home, rod A unless built by Solution.
type Source struct {
	N     int
	Count uint64
	home  hanoi.Rod
	each  func(fn func(i int, m hanoi.Move) bool)
}

// Optimal streams the A→C solution for n disks without building the plan.
func Optimal(n int) Source {
	s, _ := Solution(n, hanoi.A, hanoi.C)
	return s
}

// Solution streams the optimal plan moving n disks from source to target
// through the remaining rod.
func Solution(n int, source, target hanoi.Rod) (Source, error) {
	if !source.Valid() || !target.Valid() || source == target {
		return Source{}, fmt.Errorf("need two distinct rods, got %s and %s", source, target)
	}
	aux := hanoi.Rod(3 - int(source) - int(target))
	return Source{
		N:     n,
		Count: hanoi.MoveCount(n),
		home:  source,
		each: func(fn func(int, hanoi.Move) bool) {
			hanoi.Walk(n, source, target, aux, fn)
		},
	}, nil
}

// FromPlan exports an already materialized plan.
func FromPlan(n int, plan hanoi.Plan) Source {
	return Source{
		N:     n,
		Count: uint64(len(plan)),
		each: func(fn func(int, hanoi.Move) bool) {
			for i, m := range plan {
				if !fn(i, m) {
					return
				}
			}
		},
	}
}

// Limit keeps at most k moves. k <= 0 keeps everything.
func (s Source) Limit(k int) Source {
	if k <= 0 || uint64(k) >= s.Count {
		return s
	}
	each := s.each
	s.Count = uint64(k)
	s.each = func(fn func(int, hanoi.Move) bool) {
		each(func(i int, m hanoi.Move) bool {
			return i < k && fn(i, m)
		})
	}
	return s
}

// Row is one exported move. Step is 1-based.
type Row struct {
	Step   int    `json:"step"`
	Disk   int    `json:"disk"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// rows replays the source on a strict tower so each row knows which disk
// moved. The first illegal move stops the walk and is returned.
func (s Source) rows(fn func(Row) error) error {
	if s.N < 0 {
		return fmt.Errorf("%w: %d", hanoi.ErrInvalidDiskCount, s.N)
	}
	t := hanoi.NewTower(s.N, s.home)
	t.Strict = true

	var err error
	s.each(func(i int, m hanoi.Move) bool {
		var d hanoi.Disk
		if d, err = t.ApplyAt(i, m); err != nil {
			return false
		}
		err = fn(Row{Step: i + 1, Disk: int(d), Source: m.Source.String(), Target: m.Target.String()})
		return err == nil
	})
	return err
}

// WriteCSV writes a header and one step,disk,source,target line per move.
func WriteCSV(w io.Writer, s Source) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "disk", "source", "target"}); err != nil {
		return err
	}
	err := s.rows(func(r Row) error {
		return cw.Write([]string{strconv.Itoa(r.Step), strconv.Itoa(r.Disk), r.Source, r.Target})
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes {"disks":n,"moves":count,"plan":[...]}. Rows are encoded
// one at a time so large plans are never held as a document.
func WriteJSON(w io.Writer, s Source) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "{\n  \"disks\": %d,\n  \"moves\": %d,\n  \"plan\": [", s.N, s.Count)

	first := true
	err := s.rows(func(r Row) error {
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if !first {
			bw.WriteByte(',')
		}
		first = false
		bw.WriteString("\n    ")
		_, err = bw.Write(b)
		return err
	})
	if err != nil {
		return err
	}
	if !first {
		bw.WriteString("\n  ")
	}
	bw.WriteString("]\n}\n")
	return bw.Flush()
}

// WriteText writes one "step: disk d A→C" line per move.
func WriteText(w io.Writer, s Source) error {
	bw := bufio.NewWriter(w)
	err := s.rows(func(r Row) error {
		_, err := fmt.Fprintf(bw, "%d: disk %d %s→%s\n", r.Step, r.Disk, r.Source, r.Target)
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Write dispatches on format: text, csv or json.
func Write(w io.Writer, format string, s Source) error {
	switch format {
	case "", "text":
		return WriteText(w, s)
	case "csv":
		return WriteCSV(w, s)
	case "json":
		return WriteJSON(w, s)
	default:
		return fmt.Errorf("unknown format %q (text, csv, json)", format)
	}
}
