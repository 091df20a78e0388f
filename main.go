package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/fysac/lcgcrack/batch"
	"github.com/fysac/lcgcrack/lcg"
)

func main() {
	l := log.New(os.Stderr, "", 0)

	crackValues := flag.String("crack", "", "comma-separated outputs to recover parameters from")
	crackFile := flag.String("crack-file", "", "file of outputs to recover parameters from")
	batchFile := flag.String("batch", "", "json document of named sequences to crack")
	jsonOut := flag.Bool("json", false, "print recovered parameters as json")
	stateArg := flag.String("state", "", "generator state (requires: -a, -c, -m)")
	aArg := flag.String("a", "", "generator multiplier")
	cArg := flag.String("c", "", "generator increment")
	mArg := flag.String("m", "", "generator modulus")
	next := flag.Int("next", 0, "step the generator forward N times")
	prev := flag.Int("prev", 0, "step the generator backward N times")
	outputFile := flag.String("out", "", "write the batch report to a file instead of stdout")
	flag.Parse()

	if *batchFile != "" {
		doc, err := os.ReadFile(*batchFile)
		if err != nil {
			l.Fatal(err)
		}

		report, err := batch.Run(doc)
		if err != nil {
			l.Fatalf("%v: %v", *batchFile, err)
		}

		if *outputFile == "" {
			os.Stdout.Write(report)
			return
		}
		if err := writeFileNoTrunc(*outputFile, report); err != nil {
			l.Fatal(err)
		}
	} else if *crackValues != "" || *crackFile != "" {
		text := *crackValues
		if *crackFile != "" {
			b, err := os.ReadFile(*crackFile)
			if err != nil {
				l.Fatal(err)
			}
			text = string(b)
		}

		values, err := parseValues(text)
		if err != nil {
			l.Fatal(err)
		}

		g, err := lcg.Crack(values)
		if err != nil {
			l.Fatal("crack error: ", err)
		}

		if *jsonOut {
			b, err := json.MarshalIndent(batch.NewResult(g), "", "\t")
			if err != nil {
				l.Fatal(err)
			}
			fmt.Println(string(b))
		} else {
			fmt.Println(g)
			if f, ok := g.Identify(); ok {
				fmt.Println("Parameters match", f.Name)
			}
		}
		step(l, g, *next, *prev)
	} else if *stateArg != "" {
		if *aArg == "" || *cArg == "" || *mArg == "" {
			l.Println("-state needs -a, -c and -m")
			flag.Usage()
			os.Exit(1)
		}
		if *next == 0 && *prev == 0 {
			l.Println("nothing to do: pass -next or -prev")
			flag.Usage()
			os.Exit(1)
		}

		g, err := lcg.New(parseInt(l, *stateArg), parseInt(l, *aArg), parseInt(l, *cArg), parseInt(l, *mArg))
		if err != nil {
			l.Fatal(err)
		}
		step(l, g, *next, *prev)
	} else {
		flag.Usage()
		os.Exit(1)
	}
}

// step prints n forward then p backward states, one per line.
func step(l *log.Logger, g *lcg.LCG, n, p int) {
	for i := 0; i < n; i++ {
		fmt.Println(g.Next())
	}
	for i := 0; i < p; i++ {
		v, err := g.Prev()
		if err != nil {
			l.Fatal("prev error: ", err)
		}
		fmt.Println(v)
	}
}

func parseValues(text string) ([]*big.Int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make([]*big.Int, len(fields))
	for i, f := range fields {
		n, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("not an integer: %q", f)
		}
		values[i] = n
	}
	return values, nil
}

func parseInt(l *log.Logger, s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		l.Fatalf("not an integer: %q", s)
	}
	return n
}

func writeFileNoTrunc(name string, b []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err = f.Write(b); err != nil {
		return err
	}
	return f.Close()
}
