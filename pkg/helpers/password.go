package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor for credential hashing. It is
// configuration, never derived from input.
const bcryptCost = bcrypt.DefaultCost

// HashPassword produces a salted bcrypt digest of the plaintext.
// bcrypt regenerates the salt on every call, so hashing the same
// plaintext twice yields two different digests.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the bcrypt digest.
// A malformed digest returns false, never an error or panic.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
