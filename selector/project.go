package selector

import (
	"github.com/mcsyzygy/zonquery/json"
)

// Project gives the structural form of a selector: the tree interpreters
// and golden files agree on. A selector becomes {"selector": [steps]}, a
// step {"node": name} with an optional "ranges" or "predicate" member and a
// predicate an object with a single member keyed by its operator.
func Project(s *Selector) json.Object {
	steps := make([]any, 0, len(s.Steps))
	for i := range s.Steps {
		steps = append(steps, projectStep(&s.Steps[i]))
	}
	return json.Object{
		{Key: "selector", Value: steps},
	}
}

func projectStep(s *Step) json.Object {
	obj := json.Object{
		{Key: "node", Value: s.Node.Word},
	}
	if len(s.Ranges) > 0 {
		ranges := make([]any, 0, len(s.Ranges))
		for _, r := range s.Ranges {
			ranges = append(ranges, json.Object{
				{Key: "start", Value: r.Start},
				{Key: "end", Value: r.End},
			})
		}
		obj = append(obj, json.Pair{Key: "ranges", Value: ranges})
	}
	if s.Predicate != nil {
		obj = append(obj, json.Pair{Key: "predicate", Value: projectExpr(s.Predicate)})
	}
	return obj
}

func projectExpr(e Expr) any {
	switch e := e.(type) {
	case Token:
		return e.Word
	case *Selector:
		return Project(e)
	case *Predicate:
		args := make([]any, 0, len(e.Operands))
		for _, a := range e.Operands {
			args = append(args, projectExpr(a))
		}
		return json.Object{
			{Key: e.Root.Word, Value: args},
		}
	default:
		return nil
	}
}
