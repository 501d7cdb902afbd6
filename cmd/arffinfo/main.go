// Command arffinfo prints the relation, the attributes and the statistics of every column of the
// given ARFF files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpuck/neural-network/dataset"
	log "github.com/sirupsen/logrus"
)

func describe(w io.Writer, m *dataset.Matrix) {
	fmt.Fprintf(w, "relation %s: %d rows, %d columns\n", m.Relation(), m.Rows(), m.Cols())

	for c, s := range m.Summarize() {
		if s.Values == 0 {
			fmt.Fprintf(w, "  %3d %-20s real     missing=%d mean=%g min=%g max=%g\n",
				c, s.Name, s.Missing, s.Mean, s.Min, s.Max)
			continue
		}

		labels := make([]string, s.Values)
		for v := range labels {
			labels[v], _ = m.AttrValue(c, v)
		}

		mode, _ := m.AttrValue(c, int(s.Mode))
		fmt.Fprintf(w, "  %3d %-20s nominal  missing=%d mode=%s values={%s}\n",
			c, s.Name, s.Missing, mode, strings.Join(labels, ","))
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s file.arff...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	for _, path := range flag.Args() {
		m := dataset.New()
		if err := m.LoadARFF(path); err != nil {
			log.WithField("file", path).Fatal(err)
		}

		describe(os.Stdout, m)
	}
}
