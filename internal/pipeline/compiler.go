package pipeline

import (
	"fmt"

	"kvizgrad/internal/rules"
	"kvizgrad/internal/spec"
	"kvizgrad/internal/spell"
	"kvizgrad/sink/report"
)

// Compile builds the chain for one job. The shared suggester and reporter
// are injected; everything else about a chain is fixed data.
func Compile(kind spec.ChainKind, sugg spell.Suggester, rep report.Sink) (*Chain, error) {
	switch kind {
	case spec.ChainPotera:
		c := general(sugg, rep)
		c.Add(Columns(rules.Replace{Pairs: rules.AnswerPrefixStrips}, spec.ColumnAnswer))
		c.Add(Columns(rules.Capitalize{}, spec.ColumnAnswer))
		return c, nil
	case spec.ChainSlagalica:
		c := NewChain(
			rules.Capitalize{},
			rules.Replace{Pairs: rules.QuoteStrips},
		)
		for _, stage := range general(sugg, rep).stages {
			c.Add(stage)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported chain %q", kind)
	}
}

// general is the normalization every dataset gets: transliterate, apply the
// accumulated corrections, then report what still looks off. Spell
// correction joins the chain only when a dictionary was configured; with a
// nil suggester every cell would just fall back to itself.
func general(sugg spell.Suggester, rep report.Sink) *Chain {
	c := NewChain(
		rules.Transliterate{},
		rules.Replace{Pairs: rules.Corrections},
	)
	if sugg != nil {
		c.Add(rules.SpellCheck{Suggester: sugg, Reporter: rep})
	}
	c.Add(rules.WordFrequency{Exclude: rules.Corrections.Values(), Reporter: rep})
	return c
}
