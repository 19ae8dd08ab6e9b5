package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bizbook/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Filter / Sort / Paginate pipeline
// ─────────────────────────────────────────────────────────────
//
// Pure view computation over the in-memory collection. No network
// calls; recomputed synchronously whenever any input changes.

// Mode selects the ordering of the directory view.
type Mode string

const (
	SortNone    Mode = "none"     // preserve collection order
	SortName    Mode = "name"     // name ascending, locale-aware
	SortDateNew Mode = "date-new" // creation timestamp descending
	SortDateOld Mode = "date-old" // creation timestamp ascending
)

// DefaultPageSize is the fixed page size of the directory table.
const DefaultPageSize = 30

// Options are the three view inputs plus the requested page.
type Options struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Sort     Mode   `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// Result is one ordered page of the filtered collection.
type Result struct {
	Items      []domain.Business `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Total      int               `json:"total"`
}

// collator performs locale-aware name comparison. Loose ignores
// case and diacritic differences, matching the frontend sort.
var collator = collate.New(language.Und, collate.Loose)

// Apply filters, sorts, and paginates items according to opt.
// The input slice is never mutated.
func Apply(items []domain.Business, opt Options) Result {
	filtered := Filter(items, opt.Name, opt.Phone)
	Sort(filtered, opt.Sort)

	size := opt.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	page := opt.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	pageItems := []domain.Business{}
	if start < total {
		pageItems = filtered[start:end]
	}

	return Result{
		Items:      pageItems,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// Filter returns the records whose name contains nameFilter
// (case-insensitive) and whose phone contains phoneFilter
// (case-sensitive, no normalization). Empty filters match everything.
func Filter(items []domain.Business, nameFilter, phoneFilter string) []domain.Business {
	nameFilter = strings.ToLower(nameFilter)
	out := make([]domain.Business, 0, len(items))
	for _, b := range items {
		if !strings.Contains(strings.ToLower(b.Name), nameFilter) {
			continue
		}
		if !strings.Contains(b.Phone, phoneFilter) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Sort orders items in place. The sort is stable, so SortNone leaves
// the collection order intact and equal keys keep their relative order.
func Sort(items []domain.Business, mode Mode) {
	switch mode {
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Name, items[j].Name) < 0
		})
	case SortDateNew:
		sort.SliceStable(items, byCreated(items, true))
	case SortDateOld:
		sort.SliceStable(items, byCreated(items, false))
	}
}

// byCreated orders by creation timestamp. Records without a parseable
// timestamp sort after all timestamped records in both directions, and
// compare equal to each other.
func byCreated(items []domain.Business, newestFirst bool) func(i, j int) bool {
	return func(i, j int) bool {
		ti, iok := createdTime(items[i])
		tj, jok := createdTime(items[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		if newestFirst {
			return ti.After(tj)
		}
		return ti.Before(tj)
	}
}

func createdTime(b domain.Business) (time.Time, bool) {
	if b.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, b.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
