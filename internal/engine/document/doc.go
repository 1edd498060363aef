// Package document holds the text being edited.
//
// A Document is an ordered list of Rows. Each Row stores its logical
// bytes and a render form in which tabs are expanded to the document's
// tab stop. The render form is recomputed by every mutation, so readers
// always see a render string that matches the logical content.
//
// Rows are byte oriented: one byte is one column. Row indices run from
// 0 to RowCount()-1; RowCount() itself is accepted only by the
// insert-type operations (InsertRow, InsertChar, SplitRow), where it
// means "append a new last row". Any other out-of-range index yields an
// error wrapping ErrOutOfRange.
package document
