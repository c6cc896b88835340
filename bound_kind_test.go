package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundKind tests the API of the known BoundKinds.
func TestBoundKind(t *testing.T) {
	for boundKind, name := range map[BoundKind]string{
		BoundKindUnbounded: "BoundKindUnbounded",
		BoundKindIncluded:  "BoundKindIncluded",
		BoundKindExcluded:  "BoundKindExcluded",
	} {
		require.Equal(t, name, boundKind.String())

		marshaledBoundKind := boundKind.Bytes()
		unmarshaledBoundKind, consumedBytes, err := BoundKindFromBytes(marshaledBoundKind)
		require.NoError(t, err)
		require.Equal(t, len(marshaledBoundKind), consumedBytes)
		require.Equal(t, boundKind, unmarshaledBoundKind)
	}
}

// TestBoundKindUnknown tests that unknown BoundKinds are rejected when being unmarshaled.
func TestBoundKindUnknown(t *testing.T) {
	boundKind := BoundKind(17)
	require.Equal(t, "BoundKind(11)", boundKind.String())

	marshaledBoundKind := boundKind.Bytes()
	unmarshaledBoundKind, consumedBytes, err := BoundKindFromBytes(marshaledBoundKind)
	require.ErrorIs(t, err, ErrParseBytesFailed)
	require.Equal(t, 0, consumedBytes)
	require.Equal(t, boundKind, unmarshaledBoundKind)

	_, _, err = BoundKindFromBytes(nil)
	require.ErrorIs(t, err, ErrParseBytesFailed)
}
