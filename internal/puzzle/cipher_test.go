package puzzle

import (
	"math/rand"
	"testing"
)

func TestNewCipherIsBijection(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		c := NewCipher(rand.New(rand.NewSource(seed)))

		var seen [26]bool
		for _, l := range Alphabet {
			enc := c.Encrypt(l)
			if !IsLetter(enc) {
				t.Fatalf("seed %d: Encrypt(%q) = %q, not a letter", seed, l, enc)
			}
			if seen[enc-'A'] {
				t.Fatalf("seed %d: ciphertext %q used twice", seed, enc)
			}
			seen[enc-'A'] = true
			if c.Decrypt(enc) != l {
				t.Fatalf("seed %d: Decrypt(Encrypt(%q)) = %q", seed, l, c.Decrypt(enc))
			}
		}
	}
}

func TestNewCipherDeterministic(t *testing.T) {
	a := NewCipher(rand.New(rand.NewSource(42)))
	b := NewCipher(rand.New(rand.NewSource(42)))
	if a.Key() != b.Key() {
		t.Errorf("same seed produced different ciphers: %s vs %s", a.Key(), b.Key())
	}
}

func TestEncryptTextPassesPunctuation(t *testing.T) {
	c, err := ParseCipher("XYABCDEFGHIJKLMNOPQRSTUVWZ")
	if err != nil {
		t.Fatalf("ParseCipher failed: %v", err)
	}

	got := c.EncryptText("AB, C!")
	if got != "XY, A!" {
		t.Errorf("EncryptText = %q, want %q", got, "XY, A!")
	}
}

func TestParseCipherRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"too short", "ABC"},
		{"repeated letter", "AACDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"non-letter", "1BCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCipher(tc.key); err == nil {
				t.Errorf("ParseCipher(%q) should fail", tc.key)
			}
		})
	}
}

func TestParseCipherAllowsIdentity(t *testing.T) {
	c, err := ParseCipher(Alphabet)
	if err != nil {
		t.Fatalf("identity key should be valid: %v", err)
	}
	if c.Encrypt('Q') != 'Q' {
		t.Errorf("identity cipher should map Q to Q")
	}
	if c.IsZero() {
		t.Error("parsed cipher should not be zero")
	}
	var zero Cipher
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
}
