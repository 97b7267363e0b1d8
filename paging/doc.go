// Package paging provides offset-cursor pagination for list endpoints and
// the navigation links of a page.
//
// A cursor is the zero-based offset of the first record of a page and the
// limit is the page size, clamped to a configured range.
//
// # Basic Usage
//
// Read pagination parameters from the request:
//
//	req := paging.ParseQuery(r.URL.Query())
//	// cursor < 0 becomes 0; limit < 1 becomes 10; limit > 100 becomes 100
//
// Load the page:
//
//	resp, err := paging.Paginate(ctx, req, repo.List)
//
// Decorate the response with links once the handler has produced it:
//
//	err = paging.Decorate("ListProducts", req, resp, builder)
//
// # Links
//
//	cursor=0  limit=10 total=100 → self, next(cursor=10)
//	cursor=90 limit=10 total=100 → self, previous(cursor=80)
//	cursor=5  limit=10 total=100 → self, next(cursor=15), previous(cursor=0)
//	total=0                      → self
//
// Query parameters are always encoded as "cursor=N&limit=M".
//
// # Response Structure
//
//	{
//	  "results": [...],
//	  "total": 100,
//	  "links": {"self": "...", "next": "...", "previous": "..."}
//	}
package paging
