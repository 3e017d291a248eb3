// Package pagination provides page arithmetic and the pagination control used
// by the artwork table.
//
// This package contains:
//   - TotalPages: ceil(total / limit) with the default page size as fallback
//   - Control: the stateless previous/next control, clamped to [1, last page]
//   - Meta: response metadata for one rendered page
//
// Nothing here holds state between calls; the table controller owns the
// current page and feeds it in.
package pagination
