package transcoder

import (
	"bytes"
	"crypto/sha256"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/wippyai/abieos/transcoder/internal/binary"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

// Key type tags as they appear on the wire.
const (
	keyK1 byte = 0
	keyR1 byte = 1
	keyWA byte = 2
)

const (
	keyDataSize        = 33
	privateKeyDataSize = 32
	signatureDataSize  = 65
	checksumSize       = 4
	legacyPrefix       = "EOS"
)

var keySuffixes = [...]string{keyK1: "K1", keyR1: "R1", keyWA: "WA"}

type keyFormat struct {
	prefix string // PUB, PVT or SIG
	size   int    // payload size for K1 and R1
	wa     bool   // whether the WA form is defined
}

var keyFormats = map[types.Kind]keyFormat{
	types.KindPublicKey:  {prefix: "PUB", size: keyDataSize, wa: true},
	types.KindPrivateKey: {prefix: "PVT", size: privateKeyDataSize},
	types.KindSignature:  {prefix: "SIG", size: signatureDataSize, wa: true},
}

func ripemd(parts ...[]byte) []byte {
	h := ripemd160.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func keyChecksum(data []byte, suffix string) []byte {
	return ripemd(data, []byte(suffix))[:checksumSize]
}

// keyToString renders a key payload as PREFIX_TYPE_base58(data || checksum).
func keyToString(prefix string, keyType byte, data []byte) string {
	suffix := keySuffixes[keyType]
	buf := make([]byte, 0, len(data)+checksumSize)
	buf = append(buf, data...)
	buf = append(buf, keyChecksum(data, suffix)...)
	return prefix + "_" + suffix + "_" + base58.Encode(buf)
}

// decodeChecked splits base58 text into a payload and verifies its checksum.
func decodeChecked(text string, checksum func([]byte) []byte) ([]byte, bool) {
	raw := base58.Decode(text)
	if len(raw) <= checksumSize {
		return nil, false
	}
	data, sum := raw[:len(raw)-checksumSize], raw[len(raw)-checksumSize:]
	if !bytes.Equal(checksum(data), sum) {
		return nil, false
	}
	return data, true
}

// parseKey returns the wire type tag and payload of a key in text form.
func parseKey(kind types.Kind, s string) (byte, []byte, bool) {
	format := keyFormats[kind]

	if rest, ok := strings.CutPrefix(s, format.prefix+"_"); ok {
		for keyType, suffix := range keySuffixes {
			encoded, ok := strings.CutPrefix(rest, suffix+"_")
			if !ok {
				continue
			}
			kt := byte(keyType)
			if kt == keyWA && !format.wa {
				return 0, nil, false
			}
			data, ok := decodeChecked(encoded, func(d []byte) []byte { return keyChecksum(d, suffix) })
			if !ok {
				return 0, nil, false
			}
			if kt == keyWA {
				if len(data) <= format.size {
					return 0, nil, false
				}
			} else if len(data) != format.size {
				return 0, nil, false
			}
			return kt, data, true
		}
		return 0, nil, false
	}

	switch kind {
	case types.KindPublicKey:
		encoded, ok := strings.CutPrefix(s, legacyPrefix)
		if !ok {
			return 0, nil, false
		}
		data, ok := decodeChecked(encoded, func(d []byte) []byte { return ripemd(d)[:checksumSize] })
		if !ok || len(data) != keyDataSize {
			return 0, nil, false
		}
		return keyK1, data, true
	case types.KindPrivateKey:
		// wallet import format: 0x80 || key, double sha256 checksum
		data, ok := decodeChecked(s, func(d []byte) []byte {
			first := sha256.Sum256(d)
			second := sha256.Sum256(first[:])
			return second[:checksumSize]
		})
		if !ok || len(data) != privateKeyDataSize+1 || data[0] != 0x80 {
			return 0, nil, false
		}
		return keyK1, data[1:], true
	}
	return 0, nil, false
}

func encodeKey(w *binary.Writer, kind types.Kind, value any, path []string, abiType string) error {
	s, ok := value.(string)
	if !ok {
		return mismatch(path, abiType, value)
	}
	keyType, data, ok := parseKey(kind, s)
	if !ok {
		return invalidValue(path, abiType, "invalid %s %q", abiType, s)
	}
	if keyType == keyWA && !validWA(kind, data) {
		return invalidValue(path, abiType, "malformed WA payload")
	}
	w.Byte(keyType)
	w.WriteBytes(data)
	return nil
}

// validWA checks that a WA payload carries the trailing fields the decoder
// expects: a presence byte and rpid for keys, auth data and client JSON for
// signatures.
func validWA(kind types.Kind, data []byte) bool {
	r := binary.NewReader(data)
	if kind == types.KindPublicKey {
		if _, err := r.ReadBytes(keyDataSize + 1); err != nil {
			return false
		}
		if _, err := r.ReadPrefixedBytes(); err != nil {
			return false
		}
	} else {
		if _, err := r.ReadBytes(signatureDataSize); err != nil {
			return false
		}
		for i := 0; i < 2; i++ {
			if _, err := r.ReadPrefixedBytes(); err != nil {
				return false
			}
		}
	}
	return r.Remaining() == 0
}

func decodeKey(r *binary.Reader, kind types.Kind, path []string, abiType string) (any, error) {
	format := keyFormats[kind]

	keyType, err := r.ReadByte()
	if err != nil {
		return nil, readErr(err, path, abiType)
	}
	if int(keyType) >= len(keySuffixes) || (keyType == keyWA && !format.wa) {
		return nil, corrupt(path, abiType, "unknown key type %d", keyType)
	}

	data, err := r.ReadBytes(format.size)
	if err != nil {
		return nil, readErr(err, path, abiType)
	}
	if keyType == keyWA {
		w := binary.NewWriter()
		w.WriteBytes(data)
		if kind == types.KindPublicKey {
			presence, err := r.ReadByte()
			if err != nil {
				return nil, readErr(err, path, abiType)
			}
			w.Byte(presence)
			rpid, err := r.ReadPrefixedBytes()
			if err != nil {
				return nil, readErr(err, path, abiType)
			}
			w.WritePrefixedBytes(rpid)
		} else {
			for i := 0; i < 2; i++ {
				b, err := r.ReadPrefixedBytes()
				if err != nil {
					return nil, readErr(err, path, abiType)
				}
				w.WritePrefixedBytes(b)
			}
		}
		data = w.Bytes()
	}

	return keyToString(format.prefix, keyType, data), nil
}
