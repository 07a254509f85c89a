package service

import (
	"strconv"
	"strings"
)

// PageSize is the number of records on one list page.
const PageSize = 9

// Page describes one page of a list.
type Page struct {
	Number      int   `json:"number"`
	NumPages    int   `json:"num_pages"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
	// PageRange lists the page links to show; 0 stands for an ellipsis.
	PageRange []int `json:"page_range"`
}

// Offset is the number of records before this page.
func (p Page) Offset() int { return (p.Number - 1) * p.PerPage }

// Paginate resolves the raw page parameter against total. Missing or non-numeric values
// give the first page; numbers out of range give the last page.
func Paginate(total int64, raw string) Page {
	numPages := int((total + PageSize - 1) / PageSize)
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		number = 1
	case number < 1, number > numPages:
		number = numPages
	}

	return Page{
		Number:      number,
		NumPages:    numPages,
		PerPage:     PageSize,
		Total:       total,
		HasPrevious: number > 1,
		HasNext:     number < numPages,
		PageRange:   elidedRange(number, numPages, 1, 1),
	}
}

// elidedRange keeps onEachSide pages around number and onEnds pages at both ends.
func elidedRange(number, numPages, onEachSide, onEnds int) []int {
	if numPages <= (onEachSide+onEnds)*2 {
		return span(1, numPages)
	}

	var out []int
	if number > 1+onEachSide+onEnds+1 {
		out = append(out, span(1, onEnds)...)
		out = append(out, 0)
		out = append(out, span(number-onEachSide, number)...)
	} else {
		out = append(out, span(1, number)...)
	}

	if number < numPages-onEachSide-onEnds-1 {
		out = append(out, span(number+1, number+onEachSide)...)
		out = append(out, 0)
		out = append(out, span(numPages-onEnds+1, numPages)...)
	} else {
		out = append(out, span(number+1, numPages)...)
	}
	return out
}

func span(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
