package pagination

// Ellipsis marks a gap in the page links returned by Range.
const Ellipsis = 0

// fixedLinks counts the first page, last page and current page links.
const fixedLinks = 3

// Range returns the page links to display for total pages with active selected.
// boundaries links are pinned at each end, siblings links surround the active page,
// and Ellipsis fills the gaps. An active page outside [1, total] is clamped for
// layout only.
//
//	Range(10, 1, 1, 1) == [1 2 3 4 5 0 10]
//	Range(10, 5, 1, 1) == [1 0 4 5 6 0 10]
//	Range(10, 10, 1, 1) == [1 0 6 7 8 9 10]
func Range(total, active, siblings, boundaries int) []int {
	if total <= 0 {
		return []int{}
	}
	if siblings < 0 {
		siblings = 0
	}
	if boundaries < 0 {
		boundaries = 0
	}
	active = max(MinPage, min(active, total))

	totalPageNumbers := siblings*2 + fixedLinks + boundaries*2
	if totalPageNumbers >= total {
		return pageSpan(1, total)
	}

	leftSibling := max(active-siblings, boundaries)
	rightSibling := min(active+siblings, total-boundaries)

	showLeftDots := leftSibling > boundaries+2
	showRightDots := rightSibling < total-(boundaries+1)

	switch {
	case !showLeftDots && showRightDots:
		leftItemCount := siblings*2 + boundaries + 2
		out := pageSpan(1, leftItemCount)
		out = append(out, Ellipsis)
		return append(out, pageSpan(total-(boundaries-1), total)...)

	case showLeftDots && !showRightDots:
		rightItemCount := boundaries + 1 + 2*siblings
		out := pageSpan(1, boundaries)
		out = append(out, Ellipsis)
		return append(out, pageSpan(total-rightItemCount, total)...)

	default:
		out := pageSpan(1, boundaries)
		out = append(out, Ellipsis)
		out = append(out, pageSpan(leftSibling, rightSibling)...)
		out = append(out, Ellipsis)
		return append(out, pageSpan(total-boundaries+1, total)...)
	}
}

// pageSpan returns [from, to] inclusive, or an empty slice when from > to.
func pageSpan(from, to int) []int {
	if from > to {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, p)
	}
	return out
}
