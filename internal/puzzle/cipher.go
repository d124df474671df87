package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// Alphabet is the plaintext alphabet in order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Cipher is a bijective substitution over A-Z.
// Identity entries (a letter mapping to itself) are allowed.
type Cipher struct {
	enc [26]rune // plaintext -> ciphertext
	dec [26]rune // ciphertext -> plaintext
}

// NewCipher draws a random permutation of the alphabet with a Fisher-Yates shuffle.
func NewCipher(rng *rand.Rand) Cipher {
	letters := []rune(Alphabet)
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	var c Cipher
	for i, l := range letters {
		c.enc[i] = l
		c.dec[l-'A'] = rune('A' + i)
	}
	return c
}

// ParseCipher builds a cipher from the 26 ciphertext letters for A..Z.
// It fails unless the key is a permutation of the alphabet.
func ParseCipher(key string) (Cipher, error) {
	key = strings.ToUpper(key)
	if len(key) != 26 {
		return Cipher{}, fmt.Errorf("puzzle: cipher key must have 26 letters, got %d", len(key))
	}

	var c Cipher
	var used [26]bool
	for i, l := range key {
		if !IsLetter(l) {
			return Cipher{}, fmt.Errorf("puzzle: cipher key has non-letter %q", l)
		}
		if used[l-'A'] {
			return Cipher{}, fmt.Errorf("puzzle: cipher key repeats %q", l)
		}
		used[l-'A'] = true
		c.enc[i] = l
		c.dec[l-'A'] = rune('A' + i)
	}
	return c, nil
}

// Encrypt returns the ciphertext letter for a plaintext letter.
// Non-letters pass through unchanged.
func (c Cipher) Encrypt(r rune) rune {
	if !IsLetter(r) {
		return r
	}
	return c.enc[r-'A']
}

// Decrypt returns the plaintext letter for a ciphertext letter.
// Non-letters pass through unchanged.
func (c Cipher) Decrypt(r rune) rune {
	if !IsLetter(r) {
		return r
	}
	return c.dec[r-'A']
}

// EncryptText applies the cipher to every A-Z letter of text.
func (c Cipher) EncryptText(text string) string {
	return strings.Map(c.Encrypt, text)
}

// Key returns the 26 ciphertext letters for A..Z.
func (c Cipher) Key() string {
	return string(c.enc[:])
}

// IsZero reports whether the cipher was never initialized.
func (c Cipher) IsZero() bool {
	return c.enc[0] == 0
}
