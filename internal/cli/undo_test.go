package cli

import (
	"errors"
	"testing"

	"github.com/tana-dev/tana/internal/archive"
)

func TestUndoError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "batch not found",
			err:  archive.NewError("undo", "ab12cd34", archive.ErrBatchNotFound),
			want: "no movements found for batch ab12cd34",
		},
		{
			name: "already undone",
			err:  archive.NewError("undo", "ab12cd34", archive.ErrAlreadyUndone),
			want: "batch ab12cd34 has already been undone",
		},
		{
			name: "no batches left",
			err:  archive.ErrNoBatches,
			want: "no archive operations to undo",
		},
		{
			name: "wrapped no batches",
			err:  archive.NewError("undo", "", archive.ErrNoBatches),
			want: "no archive operations to undo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := undoError(tc.err)
			if got.Error() != tc.want {
				t.Errorf("undoError() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUndoErrorPassthrough(t *testing.T) {
	plain := errors.New("disk on fire")
	if got := undoError(plain); got != plain {
		t.Errorf("undoError() = %v, want the error unchanged", got)
	}
}
