// Package spectest runs specification-style fixture suites against the
// public rendering surface. A suite is a JSON document of the shape
//
//	{"overview": "...", "tests": [
//	  {"name": "...", "desc": "...", "data": {...},
//	   "template": "...", "partials": {"name": "..."},
//	   "expected": "..."}
//	]}
//
// matching the layout of the Mustache specification corpus. Failures
// carry a character-level diff of expected versus rendered output.
package spectest

import (
	"encoding/json"
	"fmt"
	"os"

	whisker "github.com/whisker-format/go-whisker"
	"github.com/whisker-format/go-whisker/ir"
	"github.com/whisker-format/go-whisker/render"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Suite struct {
	Overview string `json:"overview"`
	Tests    []Case `json:"tests"`
}

type Case struct {
	Name     string            `json:"name"`
	Desc     string            `json:"desc"`
	Data     json.RawMessage   `json:"data"`
	Template string            `json:"template"`
	Partials map[string]string `json:"partials"`
	Expected string            `json:"expected"`
}

type Result struct {
	Case *Case
	Got  string
	Err  error
	// Diff is a readable expected-vs-got diff, set when output differs.
	Diff string
}

func (r *Result) Pass() bool {
	return r.Err == nil && r.Diff == ""
}

func LoadSuite(d []byte) (*Suite, error) {
	s := &Suite{}
	if err := json.Unmarshal(d, s); err != nil {
		return nil, fmt.Errorf("loading suite: %w", err)
	}
	return s, nil
}

func LoadSuiteFile(path string) (*Suite, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadSuite(d)
}

// Run renders every case in the suite.
func (s *Suite) Run() []Result {
	res := make([]Result, len(s.Tests))
	for i := range s.Tests {
		res[i] = s.Tests[i].Run()
	}
	return res
}

// Run renders one case. Case data is ingested as JSON; partial bodies are
// template text and enter the partials mapping verbatim.
func (c *Case) Run() Result {
	res := Result{Case: c}
	ctx := ir.Null()
	if len(c.Data) > 0 {
		n, err := ir.FromJSON(c.Data)
		if err != nil {
			res.Err = fmt.Errorf("case %q: data: %w", c.Name, err)
			return res
		}
		ctx = n
	}
	var opts []render.Option
	if len(c.Partials) > 0 {
		m := make(map[string]*ir.Node, len(c.Partials))
		for name, text := range c.Partials {
			m[name] = ir.FromString(text)
		}
		opts = append(opts, render.WithPartials(ir.FromMap(m)))
	}
	got, err := whisker.Render(c.Template, ctx, opts...)
	if err != nil {
		res.Err = fmt.Errorf("case %q: %w", c.Name, err)
		return res
	}
	res.Got = got
	if got != c.Expected {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(c.Expected, got, false)
		res.Diff = dmp.DiffPrettyText(diffs)
	}
	return res
}
