package bcrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// bcryptAlphabet is bcrypt's own radix-64 alphabet, distinct from
// standard and URL-safe base64: "./" come first, then the upper-case
// letters, the lower-case letters, and finally the digits.
const bcryptAlphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func encodeRadix64(dst *strings.Builder, src []byte) {
	n := len(src)
	for i := 0; i < n; i += 3 {
		var c0, c1, c2 byte
		c0 = src[i]
		if i+1 < n {
			c1 = src[i+1]
		}
		if i+2 < n {
			c2 = src[i+2]
		}

		dst.WriteByte(bcryptAlphabet[c0>>2])
		dst.WriteByte(bcryptAlphabet[((c0<<4)|(c1>>4))&0x3f])
		if i+1 < n {
			dst.WriteByte(bcryptAlphabet[((c1<<2)|(c2>>6))&0x3f])
		}
		if i+2 < n {
			dst.WriteByte(bcryptAlphabet[c2&0x3f])
		}
	}
}

func decodeRadix64(s string) ([]byte, error) {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(bcryptAlphabet); i++ {
		table[bcryptAlphabet[i]] = int8(i)
	}

	val := func(c byte) (byte, error) {
		v := table[c]
		if v < 0 {
			return 0, fmt.Errorf("bcrypt: invalid base64 byte %q", c)
		}
		return byte(v), nil
	}

	out := make([]byte, 0, len(s)*3/4+3)
	for i := 0; i < len(s); i += 4 {
		var chunk [4]byte
		n := 0
		for n < 4 && i+n < len(s) {
			v, err := val(s[i+n])
			if err != nil {
				return nil, err
			}
			chunk[n] = v
			n++
		}
		out = append(out, chunk[0]<<2|chunk[1]>>4)
		if n > 2 {
			out = append(out, chunk[1]<<4|chunk[2]>>2)
		}
		if n > 3 {
			out = append(out, chunk[2]<<6|chunk[3])
		}
	}
	return out, nil
}

// GenerateFromPassword hashes password at the given cost, drawing a
// fresh random salt, and returns a "$2a$cost$saltdigest" encoded string.
// The salt takes 22 characters and the full 24-byte digest 32, so the
// string is one character longer than the 23-byte-digest form other
// bcrypt implementations emit.
func GenerateFromPassword(password []byte, cost uint) (string, error) {
	if len(password) == 0 || len(password) > 72 {
		return "", errors.New("bcrypt: password must be 1-72 bytes")
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	digest, err := Hash(cost, salt, password)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("$2a$")
	b.WriteString(fmt.Sprintf("%02d", cost))
	b.WriteByte('$')
	encodeRadix64(&b, salt)
	encodeRadix64(&b, digest)
	return b.String(), nil
}

// CompareHashAndPassword reports whether password matches the bcrypt
// string hashedPassword, in constant time.
func CompareHashAndPassword(hashedPassword, password []byte) error {
	cost, salt, want, err := decode(string(hashedPassword))
	if err != nil {
		return err
	}
	if len(password) == 0 || len(password) > 72 {
		return errors.New("bcrypt: password must be 1-72 bytes")
	}

	got, err := Hash(cost, salt, password)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errors.New("bcrypt: hashedPassword does not match password")
	}
	return nil
}

func decode(s string) (cost uint, salt, digest []byte, err error) {
	if !strings.HasPrefix(s, "$2a$") && !strings.HasPrefix(s, "$2b$") {
		return 0, nil, nil, errors.New("bcrypt: unsupported hash prefix")
	}
	rest := s[4:]
	idx := strings.IndexByte(rest, '$')
	if idx < 0 {
		return 0, nil, nil, errors.New("bcrypt: malformed hash: missing cost separator")
	}
	c, err := strconv.Atoi(rest[:idx])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("bcrypt: malformed cost: %w", err)
	}

	body := rest[idx+1:]
	saltChars := (saltSize*8 + 5) / 6
	if len(body) < saltChars {
		return 0, nil, nil, errors.New("bcrypt: malformed hash body")
	}
	salt, err = decodeRadix64(body[:saltChars])
	if err != nil {
		return 0, nil, nil, err
	}
	digest, err = decodeRadix64(body[saltChars:])
	if err != nil {
		return 0, nil, nil, err
	}
	if len(salt) != saltSize || len(digest) < outputSize {
		return 0, nil, nil, errors.New("bcrypt: malformed hash body")
	}
	return uint(c), salt, digest[:outputSize], nil
}
