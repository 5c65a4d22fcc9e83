package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a plaintext password into a self-describing digest and
// checks a candidate against it. Every digest carries its own salt and work
// factor, so changing the configured cost never invalidates stored hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) (bool, error)
}

var ErrUnknownHashFormat = errors.New("unknown password hash format")

// BcryptHasher hashes with bcrypt at Cost. Verification reads the cost from
// the digest.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// bcryptMaxInput is the number of password bytes bcrypt looks at.
const bcryptMaxInput = 72

// Verify reports false for inputs longer than bcryptMaxInput, since no
// digest can have been made from them.
func (h BcryptHasher) Verify(plain, digest string) (bool, error) {
	if len(plain) > bcryptMaxInput {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt: %w", err)
}

// Argon2Params are the argon2id tuning knobs.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

var DefaultArgon2Params = Argon2Params{
	Time:    3,
	Memory:  64 * 1024,
	Threads: 2,
	KeyLen:  32,
	SaltLen: 16,
}

const argon2Prefix = "$argon2id$"

// Argon2Hasher produces PHC-style digests:
//
//	$argon2id$v=19$t=3,m=65536,p=2$<salt b64>$<hash b64>
type Argon2Hasher struct {
	Params Argon2Params
}

func (h Argon2Hasher) Hash(plain string) (string, error) {
	p := h.Params
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("%sv=%d$t=%d,m=%d,p=%d$%s$%s", argon2Prefix, argon2.Version,
		p.Time, p.Memory, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func (h Argon2Hasher) Verify(plain, digest string) (bool, error) {
	p, salt, key, err := parseArgon2(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(plain), salt, p.Time, p.Memory, p.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func parseArgon2(digest string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	// "", "argon2id", "v=19", "t=..,m=..,p=..", salt, hash
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrUnknownHashFormat
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return p, nil, nil, fmt.Errorf("argon2: unsupported version %q", parts[2])
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "t=%d,m=%d,p=%d", &p.Time, &p.Memory, &threads); err != nil {
		return p, nil, nil, fmt.Errorf("argon2: parse params: %w", err)
	}
	if threads == 0 || threads > 255 {
		return p, nil, nil, fmt.Errorf("argon2: bad parallelism %d", threads)
	}
	p.Threads = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("argon2: decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("argon2: decode hash: %w", err)
	}
	if len(key) == 0 {
		return p, nil, nil, fmt.Errorf("argon2: empty hash")
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}

// adaptiveHasher hashes new passwords with the configured algorithm but
// verifies any digest family it recognizes, so switching algorithms keeps
// existing accounts working.
type adaptiveHasher struct {
	primary PasswordHasher
}

// NewPasswordHasher returns the hasher selected by name ("bcrypt" or
// "argon2id"). bcryptCost is only used for bcrypt.
func NewPasswordHasher(name string, bcryptCost int) (PasswordHasher, error) {
	switch name {
	case "", "bcrypt":
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return &adaptiveHasher{primary: BcryptHasher{Cost: bcryptCost}}, nil
	case "argon2id":
		return &adaptiveHasher{primary: Argon2Hasher{Params: DefaultArgon2Params}}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

func (h *adaptiveHasher) Hash(plain string) (string, error) {
	return h.primary.Hash(plain)
}

func (h *adaptiveHasher) Verify(plain, digest string) (bool, error) {
	switch {
	case strings.HasPrefix(digest, argon2Prefix):
		return Argon2Hasher{}.Verify(plain, digest)
	case strings.HasPrefix(digest, "$2"):
		return BcryptHasher{}.Verify(plain, digest)
	default:
		return false, ErrUnknownHashFormat
	}
}
