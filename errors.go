package cm256

import "github.com/pkg/errors"

// ErrParamsInvalid is returned when a Params value fails validation:
// OriginalCount or RecoveryCount out of [1,255], their sum exceeding 256,
// or a non-positive BlockBytes.
var ErrParamsInvalid = errors.New("cm256: invalid params")

// ErrBlockCountMismatch is returned by Encode when the number of original
// blocks doesn't equal Params.OriginalCount, or by Decode when the number
// of input blocks doesn't equal Params.OriginalCount.
var ErrBlockCountMismatch = errors.New("cm256: block count does not match params")

// ErrBlockSizeMismatch is returned when a block's Data length doesn't
// equal Params.BlockBytes, or when Encode's output buffer is not exactly
// RecoveryCount*BlockBytes long.
var ErrBlockSizeMismatch = errors.New("cm256: block size does not match params")

// ErrBlockIndexInvalid is returned by Decode when a block's Index is
// outside [0, OriginalCount+RecoveryCount) or duplicates another block's
// Index within the same call.
var ErrBlockIndexInvalid = errors.New("cm256: duplicate or out-of-range block index")

// ErrDecodeFailed is returned if the erasure pattern submitted to Decode
// cannot be solved. Given valid params and distinct tags this should be
// unreachable; it is reserved for internal consistency failures rather
// than a normal runtime condition.
var ErrDecodeFailed = errors.New("cm256: unable to solve for missing originals")

// ErrInitUnavailable is returned by Init if the host CPU lacks the
// baseline arithmetic the kernel requires. Reserved: on every mainstream
// platform Go runs on this cannot occur.
var ErrInitUnavailable = errors.New("cm256: field table initialization unavailable")
