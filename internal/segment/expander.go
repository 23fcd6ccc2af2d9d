// Package segment expands base market regulations into the full
// segment key-space used throughout assembly.
package segment

import "github.com/promoops/campaigner/pkg/types"

// BSuffix marks the A/B variant of a segment.
const BSuffix = "_B"

// Expand produces the ordered segment list for a campaign: the cross
// product of regulations and tiers (outer loop regulation, inner loop
// tier), with an A/B duplicate immediately following its base when ab
// is enabled. Checked state is inherited unchanged. Downstream
// parameter tables use positional segment-column headers keyed off
// this order, so it must stay deterministic.
func Expand(regulations []types.Regulation, tiers []string, ab bool) []types.Regulation {
	out := make([]types.Regulation, 0, capacityFor(len(regulations), len(tiers), ab))

	emit := func(name string, checked bool) {
		out = append(out, types.Regulation{Name: name, Checked: checked})
		if ab {
			out = append(out, types.Regulation{Name: name + BSuffix, Checked: checked})
		}
	}

	for _, reg := range regulations {
		if len(tiers) == 0 {
			emit(reg.Name, reg.Checked)
			continue
		}
		for _, tier := range tiers {
			emit(reg.Name+" "+tier, reg.Checked)
		}
	}

	return out
}

func capacityFor(regs, tiers int, ab bool) int {
	n := regs
	if tiers > 0 {
		n *= tiers
	}
	if ab {
		n *= 2
	}
	return n
}
