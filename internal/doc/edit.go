// internal/doc/edit.go
//
// Low-level body editing: splicing and removing stream content while keeping
// every side-table offset consistent. These are the only functions that touch
// DataStream; mutation handlers reach them through the textx walker.
package doc

import "sort"

// Clone returns a deep copy of the body. Snapshots taken for undo inverses
// must never alias the live model.
func (b *Body) Clone() *Body {
	c := &Body{DataStream: b.DataStream}
	if len(b.TextRuns) > 0 {
		c.TextRuns = make([]TextRun, len(b.TextRuns))
		for i, run := range b.TextRuns {
			c.TextRuns[i] = TextRun{Start: run.Start, End: run.End, Style: cloneStyle(run.Style)}
		}
	}
	if len(b.Paragraphs) > 0 {
		c.Paragraphs = make([]Paragraph, len(b.Paragraphs))
		for i, p := range b.Paragraphs {
			c.Paragraphs[i] = p.Clone()
		}
	}
	if len(b.CustomRanges) > 0 {
		c.CustomRanges = append([]CustomRange(nil), b.CustomRanges...)
	}
	if len(b.CustomBlocks) > 0 {
		c.CustomBlocks = append([]CustomBlock(nil), b.CustomBlocks...)
	}
	return c
}

func cloneStyle(s *TextStyle) *TextStyle {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Clone deep-copies a paragraph entry, including its style and bullet.
func (p Paragraph) Clone() Paragraph {
	c := Paragraph{StartIndex: p.StartIndex}
	if p.ParagraphStyle != nil {
		ps := *p.ParagraphStyle
		c.ParagraphStyle = &ps
	}
	if p.Bullet != nil {
		bl := *p.Bullet
		c.Bullet = &bl
	}
	return c
}

// Insert splices sub into the body at the given rune offset. Offsets at or
// after the insertion point shift right by sub.Len(); a run or custom range
// straddling the point is split (runs) or grown (ranges) around it.
func (b *Body) Insert(offset int, sub *Body) error {
	length := b.Len()
	if offset < 0 || offset > length {
		return ErrOutOfBounds
	}
	n := sub.Len()
	if n == 0 {
		return nil
	}

	runes := []rune(b.DataStream)
	b.DataStream = string(runes[:offset]) + sub.DataStream + string(runes[offset:])

	// Text runs: split a straddling run so the inserted content keeps its own
	// styling; canonicalization below re-merges identical neighbours.
	var runs []TextRun
	for _, run := range b.TextRuns {
		switch {
		case run.End <= offset:
			runs = append(runs, run)
		case run.Start >= offset:
			runs = append(runs, TextRun{Start: run.Start + n, End: run.End + n, Style: run.Style})
		default:
			runs = append(runs,
				TextRun{Start: run.Start, End: offset, Style: run.Style},
				TextRun{Start: offset + n, End: run.End + n, Style: cloneStyle(run.Style)})
		}
	}
	for _, run := range sub.TextRuns {
		runs = append(runs, TextRun{Start: run.Start + offset, End: run.End + offset, Style: cloneStyle(run.Style)})
	}
	b.TextRuns = normalizeRuns(runs)

	// Paragraphs: breaks at or after the offset move right.
	for i := range b.Paragraphs {
		if b.Paragraphs[i].StartIndex >= offset {
			b.Paragraphs[i].StartIndex += n
		}
	}
	for _, p := range sub.Paragraphs {
		np := p.Clone()
		np.StartIndex += offset
		b.Paragraphs = append(b.Paragraphs, np)
	}
	sort.Slice(b.Paragraphs, func(i, j int) bool {
		return b.Paragraphs[i].StartIndex < b.Paragraphs[j].StartIndex
	})

	// Custom ranges: a range strictly containing the offset grows.
	var ranges []CustomRange
	for _, cr := range b.CustomRanges {
		switch {
		case cr.End <= offset:
		case cr.Start >= offset:
			cr.Start += n
			cr.End += n
		default:
			cr.End += n
		}
		ranges = append(ranges, cr)
	}
	for _, cr := range sub.CustomRanges {
		ranges = append(ranges, CustomRange{Start: cr.Start + offset, End: cr.End + offset, RangeID: cr.RangeID, RangeType: cr.RangeType})
	}
	b.CustomRanges = normalizeCustomRanges(ranges)

	// Custom blocks: anchors at or after the offset move right.
	for i := range b.CustomBlocks {
		if b.CustomBlocks[i].StartIndex >= offset {
			b.CustomBlocks[i].StartIndex += n
		}
	}
	for _, cb := range sub.CustomBlocks {
		b.CustomBlocks = append(b.CustomBlocks, CustomBlock{StartIndex: cb.StartIndex + offset, BlockID: cb.BlockID})
	}
	sort.Slice(b.CustomBlocks, func(i, j int) bool {
		return b.CustomBlocks[i].StartIndex < b.CustomBlocks[j].StartIndex
	})

	return nil
}

// Delete removes count runes starting at start and returns the removed
// content as a sub-body rebased to offset zero. The returned body is exactly
// what Insert needs to reverse the deletion.
func (b *Body) Delete(start, count int) (*Body, error) {
	length := b.Len()
	if start < 0 || count < 0 || start+count > length {
		return nil, ErrOutOfBounds
	}
	if count == 0 {
		return &Body{}, nil
	}
	end := start + count

	removed := b.Slice(start, end)

	runes := []rune(b.DataStream)
	b.DataStream = string(runes[:start]) + string(runes[end:])

	// Text runs: drop fully-covered runs, clip the rest.
	var runs []TextRun
	for _, run := range b.TextRuns {
		switch {
		case run.End <= start:
			runs = append(runs, run)
		case run.Start >= end:
			runs = append(runs, TextRun{Start: run.Start - count, End: run.End - count, Style: run.Style})
		case run.Start >= start && run.End <= end:
			// Fully inside the deleted span; the removed slice carries it.
		default:
			ns := run.Start
			if ns > start {
				ns = start
			}
			ne := start
			if run.End > end {
				ne = run.End - count
			}
			runs = append(runs, TextRun{Start: ns, End: ne, Style: run.Style})
		}
	}
	b.TextRuns = normalizeRuns(runs)

	// Paragraphs: breaks inside the span disappear with their '\r'.
	var paras []Paragraph
	for _, p := range b.Paragraphs {
		switch {
		case p.StartIndex < start:
			paras = append(paras, p)
		case p.StartIndex >= end:
			p.StartIndex -= count
			paras = append(paras, p)
		}
	}
	b.Paragraphs = paras

	// Custom ranges: clip like runs; empty survivors are dropped.
	var ranges []CustomRange
	for _, cr := range b.CustomRanges {
		switch {
		case cr.End <= start:
			ranges = append(ranges, cr)
		case cr.Start >= end:
			cr.Start -= count
			cr.End -= count
			ranges = append(ranges, cr)
		case cr.Start >= start && cr.End <= end:
			// Fully deleted.
		default:
			ns := cr.Start
			if ns > start {
				ns = start
			}
			ne := start
			if cr.End > end {
				ne = cr.End - count
			}
			if ns < ne {
				ranges = append(ranges, CustomRange{Start: ns, End: ne, RangeID: cr.RangeID, RangeType: cr.RangeType})
			}
		}
	}
	b.CustomRanges = normalizeCustomRanges(ranges)

	// Custom blocks: anchors inside the span go with their sentinel.
	var blocks []CustomBlock
	for _, cb := range b.CustomBlocks {
		switch {
		case cb.StartIndex < start:
			blocks = append(blocks, cb)
		case cb.StartIndex >= end:
			cb.StartIndex -= count
			blocks = append(blocks, cb)
		}
	}
	b.CustomBlocks = blocks

	return removed, nil
}

// Slice extracts [start, end) as a standalone sub-body rebased to zero. Runs
// and custom ranges overlapping the window are clipped into it; paragraphs and
// blocks are taken when their anchor lies inside.
func (b *Body) Slice(start, end int) *Body {
	if start < 0 {
		start = 0
	}
	if max := b.Len(); end > max {
		end = max
	}
	if start >= end {
		return &Body{}
	}

	runes := []rune(b.DataStream)
	sub := &Body{DataStream: string(runes[start:end])}

	var runs []TextRun
	for _, run := range b.TextRuns {
		if run.End <= start || run.Start >= end {
			continue
		}
		ns := run.Start
		if ns < start {
			ns = start
		}
		ne := run.End
		if ne > end {
			ne = end
		}
		runs = append(runs, TextRun{Start: ns - start, End: ne - start, Style: cloneStyle(run.Style)})
	}
	sub.TextRuns = normalizeRuns(runs)

	for _, p := range b.Paragraphs {
		if p.StartIndex >= start && p.StartIndex < end {
			np := p.Clone()
			np.StartIndex -= start
			sub.Paragraphs = append(sub.Paragraphs, np)
		}
	}

	var ranges []CustomRange
	for _, cr := range b.CustomRanges {
		if cr.End <= start || cr.Start >= end {
			continue
		}
		ns := cr.Start
		if ns < start {
			ns = start
		}
		ne := cr.End
		if ne > end {
			ne = end
		}
		ranges = append(ranges, CustomRange{Start: ns - start, End: ne - start, RangeID: cr.RangeID, RangeType: cr.RangeType})
	}
	sub.CustomRanges = normalizeCustomRanges(ranges)

	for _, cb := range b.CustomBlocks {
		if cb.StartIndex >= start && cb.StartIndex < end {
			sub.CustomBlocks = append(sub.CustomBlocks, CustomBlock{StartIndex: cb.StartIndex - start, BlockID: cb.BlockID})
		}
	}

	return sub
}

// normalizeRuns sorts runs, drops empty ones, and merges adjacent runs with
// equal styles. Every mutation canonicalizes through here so that a delete
// followed by its inverse insert reproduces the original run table.
func normalizeRuns(runs []TextRun) []TextRun {
	var kept []TextRun
	for _, run := range runs {
		if run.Start < run.End {
			kept = append(kept, run)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	sortRuns(kept)

	out := kept[:1]
	for _, run := range kept[1:] {
		last := &out[len(out)-1]
		if run.Start == last.End && styleEqual(run.Style, last.Style) {
			last.End = run.End
			continue
		}
		out = append(out, run)
	}
	return out
}

// normalizeCustomRanges sorts ranges and unions touching fragments that share
// a RangeID, so re-inserted fragments fold back into their survivors.
func normalizeCustomRanges(ranges []CustomRange) []CustomRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	out := ranges[:1]
	for _, cr := range ranges[1:] {
		last := &out[len(out)-1]
		if cr.RangeID == last.RangeID && cr.Start <= last.End {
			if cr.End > last.End {
				last.End = cr.End
			}
			continue
		}
		out = append(out, cr)
	}
	return out
}
