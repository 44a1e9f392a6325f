package atn

import (
	"fmt"
	"sort"
	"strings"
)

// DumpDFA renders a decision DFA's current (possibly still partially
// built) state graph as a box-drawn ASCII diagram, one state per row,
// with each row listing its state number, accept marker, predicted
// alternative, and outgoing edges, for quick visual inspection while
// debugging DFA construction.
func DumpDFA(dfa *DFA) string {
	type row struct {
		state *DFAState
		edges []string
	}
	var rows []row
	dfa.Each(func(s *DFAState) {
		var edges []string
		s.EachEdge(func(symbol int, target *DFAState) {
			edges = append(edges, fmt.Sprintf("%d->s%d", symbol, target.Number))
		})
		sort.Strings(edges)
		rows = append(rows, row{state: s, edges: edges})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].state.Number < rows[j].state.Number })

	var b strings.Builder
	label := fmt.Sprintf("decision %d", dfa.Decision.DecisionIndex)
	b.WriteString(boxLine(label, '┌', '┐'))
	for _, r := range rows {
		marker := " "
		if r.state.IsAcceptState {
			marker = "*"
		}
		line := fmt.Sprintf("│ s%-3d%s alt=%-3d edges=[%s]", r.state.Number, marker, r.state.Prediction, strings.Join(r.edges, ", "))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(boxLine("", '└', '┘'))
	return b.String()
}

func boxLine(label string, left, right rune) string {
	if label == "" {
		return string(left) + strings.Repeat("─", 40) + string(right) + "\n"
	}
	return string(left) + "─ " + label + " " + strings.Repeat("─", 30) + string(right) + "\n"
}
