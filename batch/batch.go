// Package batch recovers generator parameters for many observed sequences in
// one pass and renders an ordered JSON report.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/fysac/lcgcrack/lcg"
)

// Result is the outcome of one recovery attempt. On success the parameter
// fields are set, plus Family when they match a known generator; on failure
// only Error is set.
type Result struct {
	Modulus    json.Number `json:"modulus,omitempty"`
	Multiplier json.Number `json:"multiplier,omitempty"`
	Increment  json.Number `json:"increment,omitempty"`
	State      json.Number `json:"state,omitempty"`
	Family     string      `json:"family,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// NewResult reports g's parameters, tagging any known family match.
func NewResult(g *lcg.LCG) Result {
	r := Result{
		Modulus:    json.Number(g.M.String()),
		Multiplier: json.Number(g.A.String()),
		Increment:  json.Number(g.C.String()),
		State:      json.Number(g.State.String()),
	}
	if f, ok := g.Identify(); ok {
		r.Family = f.Name
	}
	return r
}

// Run cracks every sequence in doc, a JSON object mapping sequence names to
// arrays of observed integer outputs, and returns an indented JSON report
// with one Result per sequence. Recovery failures land in the report;
// malformed documents fail the whole run.
func Run(doc []byte) ([]byte, error) {
	// Use orderedmap so the report keeps the document's sequence order.
	sequences := orderedmap.New[string, []json.Number]()
	if err := sequences.UnmarshalJSON(doc); err != nil {
		return nil, err
	}
	if sequences.Len() == 0 {
		return nil, errors.New("no sequences in document")
	}

	results := orderedmap.New[string, Result]()
	for pair := sequences.Oldest(); pair != nil; pair = pair.Next() {
		values := make([]*big.Int, len(pair.Value))
		for i, num := range pair.Value {
			n, ok := new(big.Int).SetString(num.String(), 10)
			if !ok {
				return nil, fmt.Errorf("%v: not an integer: %v", pair.Key, num)
			}
			values[i] = n
		}

		g, err := lcg.Crack(values)
		if err != nil {
			results.Set(pair.Key, Result{Error: err.Error()})
			continue
		}
		results.Set(pair.Key, NewResult(g))
	}

	b, err := results.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
