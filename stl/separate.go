package stl

// Channel separation: instead of collapsing a conjunction (or disjunction)
// tree to one scalar, walk it and stack one robustness value per
// non-matching subtree along a new trailing "channel" axis. Nothing is
// aggregated, so no information about individual conjuncts is lost.

import "github.com/rfielding/stl-robust/tensor"

// SeparateAnd decomposes the And-subtree rooted at f into per-channel
// robustness values, depth-first, Subformula1 before Subformula2. A root
// that is not an And evaluates directly and yields a single channel.
func SeparateAnd(f Formula, sig Signal, cfg EvalConfig) (*tensor.Tensor, error) {
	return separate(f, sig, cfg, matchAnd)
}

// SeparateOr is SeparateAnd with Or as the recursive connective.
func SeparateOr(f Formula, sig Signal, cfg EvalConfig) (*tensor.Tensor, error) {
	return separate(f, sig, cfg, matchOr)
}

// separate recurses through nodes the match function recognizes and
// evaluates everything else as a base case. cfg passes through untouched.
func separate(f Formula, sig Signal, cfg EvalConfig, match func(Formula) (Formula, Formula, bool)) (*tensor.Tensor, error) {
	sub1, sub2, ok := match(f)
	if !ok {
		r, err := f.Robustness(sig, cfg)
		if err != nil {
			return nil, err
		}
		return r.Unsqueeze(-1)
	}
	sig1, sig2 := sig, sig
	if p, paired := sig.(Pair); paired {
		sig1, sig2 = p.First, p.Second
	}
	left, err := separate(sub1, sig1, cfg, match)
	if err != nil {
		return nil, err
	}
	right, err := separate(sub2, sig2, cfg, match)
	if err != nil {
		return nil, err
	}
	return tensor.Cat(-1, left, right)
}

func matchAnd(f Formula) (Formula, Formula, bool) {
	switch n := f.(type) {
	case And:
		return n.Subformula1, n.Subformula2, true
	case *And:
		return n.Subformula1, n.Subformula2, true
	}
	return nil, nil, false
}

func matchOr(f Formula) (Formula, Formula, bool) {
	switch n := f.(type) {
	case Or:
		return n.Subformula1, n.Subformula2, true
	case *Or:
		return n.Subformula1, n.Subformula2, true
	}
	return nil, nil, false
}
