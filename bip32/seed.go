package bip32

import "crypto/rand"

// SeedSize is the size of a seed returned by GenerateSeed.
const SeedSize = 32

// GenerateSeed generates a seed that can be used to initialize a master key.
func GenerateSeed() ([]byte, error) {
	randBytes := make([]byte, SeedSize)
	_, err := rand.Read(randBytes)
	if err != nil {
		return nil, err
	}

	return randBytes, nil
}
