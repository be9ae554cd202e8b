// Package service implements the persistence layer. Each entity gets
// one service wrapping the ent client: validation happens before any
// write, uniqueness is pre-checked so callers get a typed conflict
// instead of a raw constraint error, and missing rows surface as
// not-found application errors.
package service

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
