package act_log

import (
	"fmt"
	"io"

	"github.com/jtomasevic/graphedit/pkg/act"
)

// Print writes one line per record: sequence number, short record id and the
// act rendered in the vocabulary's log text form.
func Print(w io.Writer, records []Record, vocab act.Vocabulary) error {
	for i, rec := range records {
		prefix := "├──"
		if i == len(records)-1 {
			prefix = "└──"
		}
		_, err := fmt.Fprintf(w,
			"%s %4d %s %s\n",
			prefix,
			rec.Seq,
			rec.ID.String()[:8],
			vocab.Format(rec.Act),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes only the rendered acts, one per line, so the output can be
// read back with act.Vocabulary.Parse.
func WriteText(w io.Writer, records []Record, vocab act.Vocabulary) error {
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, vocab.Format(rec.Act)); err != nil {
			return err
		}
	}
	return nil
}
