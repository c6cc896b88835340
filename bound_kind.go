package ranges

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// BoundKind indicates whether the value of a Bound is contained in the range itself ("included") or not
// ("excluded"). If a range is unbounded on a side, the Bound of that side carries no value at all.
type BoundKind uint8

const (
	// BoundKindUnbounded indicates that the range does not end on this side. It is the zero value, so the zero Bound
	// is unbounded.
	BoundKindUnbounded BoundKind = iota

	// BoundKindIncluded indicates that the value of the Bound is considered part of the range ("closed").
	BoundKindIncluded

	// BoundKindExcluded indicates that the value of the Bound is not considered part of the range ("open").
	BoundKindExcluded
)

// BoundKindNames contains a dictionary of the names of BoundKinds.
var BoundKindNames = [...]string{
	"BoundKindUnbounded",
	"BoundKindIncluded",
	"BoundKindExcluded",
}

// BoundKindFromBytes unmarshals a BoundKind from a sequence of bytes.
func BoundKindFromBytes(boundKindBytes []byte) (boundKind BoundKind, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundKindBytes)
	if boundKind, err = BoundKindFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundKind from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundKindFromMarshalUtil unmarshals a BoundKind using a MarshalUtil (for easier unmarshalling).
func BoundKindFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundKind BoundKind, err error) {
	boundKindByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundKind: %w", err)

		return
	}

	if boundKind = BoundKind(boundKindByte); boundKind > BoundKindExcluded {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundKind (%X)", uint8(boundKind))

		return
	}

	return
}

// Bytes returns a marshaled version of the BoundKind.
func (b BoundKind) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundKind.
func (b BoundKind) String() string {
	if int(b) >= len(BoundKindNames) {
		return fmt.Sprintf("BoundKind(%X)", uint8(b))
	}

	return BoundKindNames[b]
}
