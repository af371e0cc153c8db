package auth

import "golang.org/x/crypto/bcrypt" // Password hashing

// HashPassword produces a bcrypt digest of plain with a fresh random salt.
// The digest is self-contained: algorithm tag, cost and salt are embedded in
// it, so two calls for the same input never produce equal strings.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches digest. The comparison is
// constant time; a malformed digest simply fails verification instead of
// surfacing an error, so a corrupted stored hash reads as a wrong password.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
