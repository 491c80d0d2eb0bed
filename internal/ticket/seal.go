package ticket

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
)

// sealState encrypts a state record with AES-CBC. Records are a multiple of
// the block size by construction, so no padding scheme is applied.
func sealState(key [protocol.TicketKeyLength]byte, iv [protocol.IVLength]byte, record []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(record))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, record)
	return ciphertext, nil
}

// openState decrypts a sealed state record. Decryption alone says nothing
// about the record's integrity, only the authenticator does.
func openState(key [protocol.TicketKeyLength]byte, iv [protocol.IVLength]byte, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	record := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(record, ciphertext)
	return record, nil
}

// authenticate computes the HMAC-SHA256 tag over msg.
func authenticate(key [protocol.TicketKeyLength]byte, msg []byte) []byte {
	h := hmac.New(sha256.New, key[:])
	h.Write(msg)
	return h.Sum(nil)
}

// verify reports whether tag authenticates msg. The comparison runs in
// constant time.
func verify(key [protocol.TicketKeyLength]byte, msg, tag []byte) bool {
	return subtle.ConstantTimeCompare(authenticate(key, msg), tag) == 1
}
