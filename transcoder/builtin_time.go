package transcoder

import (
	"math"
	"strings"
	"time"

	"github.com/wippyai/abieos/transcoder/internal/binary"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

const (
	timeLayout = "2006-01-02T15:04:05.000"
	// block timestamps count half-second slots from 2000-01-01T00:00:00Z
	blockTimestampEpochMs = 946684800000
	blockIntervalMs       = 500
)

// parseTime accepts "YYYY-MM-DDTHH:MM:SS" with an optional fraction of up to
// nine digits and an optional trailing Z. Times are always UTC.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSuffix(s, "Z")
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatMicros(us int64) string {
	return time.UnixMicro(us).UTC().Format(timeLayout)
}

func encodeTime(w *binary.Writer, kind types.Kind, value any, path []string, abiType string) error {
	s, ok := value.(string)
	if !ok {
		return mismatch(path, abiType, value)
	}
	t, ok := parseTime(s)
	if !ok {
		return invalidValue(path, abiType, "invalid time %q", s)
	}

	switch kind {
	case types.KindTimePoint:
		w.WriteU64(uint64(t.UnixMicro()))
	case types.KindTimePointSec:
		sec := t.Unix()
		if sec < 0 || sec > math.MaxUint32 {
			return overflowTime(path, abiType, s)
		}
		w.WriteU32(uint32(sec))
	case types.KindBlockTimestamp:
		ms := t.UnixMilli() - blockTimestampEpochMs
		if ms < 0 || ms/blockIntervalMs > math.MaxUint32 {
			return overflowTime(path, abiType, s)
		}
		w.WriteU32(uint32(ms / blockIntervalMs))
	}
	return nil
}

func overflowTime(path []string, abiType, s string) error {
	return invalidValue(path, abiType, "time %q is outside the range of %s", s, abiType)
}

func decodeTime(r *binary.Reader, kind types.Kind, path []string, abiType string) (any, error) {
	switch kind {
	case types.KindTimePoint:
		v, err := r.ReadU64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return formatMicros(int64(v)), nil
	case types.KindTimePointSec:
		v, err := r.ReadU32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return formatMicros(int64(v) * 1_000_000), nil
	default:
		v, err := r.ReadU32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		ms := int64(v)*blockIntervalMs + blockTimestampEpochMs
		return formatMicros(ms * 1000), nil
	}
}
