package ticket

import (
	"crypto/rand"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sealing", func() {
	var key, macKey [protocol.TicketKeyLength]byte
	var iv [protocol.IVLength]byte

	BeforeEach(func() {
		_, err := rand.Read(key[:])
		Expect(err).ToNot(HaveOccurred())
		_, err = rand.Read(macKey[:])
		Expect(err).ToNot(HaveOccurred())
		_, err = rand.Read(iv[:])
		Expect(err).ToNot(HaveOccurred())
	})

	It("encrypts like AES-CBC", func() {
		// NIST SP 800-38A, F.2.1, first three blocks
		var nistKey [protocol.TicketKeyLength]byte
		var nistIV [protocol.IVLength]byte
		copy(nistKey[:], unhex("2b7e151628aed2a6abf7158809cf4f3c"))
		copy(nistIV[:], unhex("000102030405060708090a0b0c0d0e0f"))
		record := unhex("6bc1bee22e409f96e93d7e117393172a" +
			"ae2d8a571e03ac9c9eb76fac45af8e51" +
			"30c81c46a35ce411e5fbc1191a0a52ef")
		ciphertext, err := sealState(nistKey, nistIV, record)
		Expect(err).ToNot(HaveOccurred())
		Expect(ciphertext).To(Equal(unhex("7649abac8119b246cee98e9b12e9197d" +
			"5086cb9b507219ee95db113a917678b2" +
			"73bed6b8e3c1743b7116e69e22229516")))
	})

	It("decrypts what it encrypts", func() {
		record := make([]byte, protocol.StateLength)
		_, err := rand.Read(record)
		Expect(err).ToNot(HaveOccurred())
		ciphertext, err := sealState(key, iv, record)
		Expect(err).ToNot(HaveOccurred())
		Expect(ciphertext).ToNot(Equal(record))
		decrypted, err := openState(key, iv, ciphertext)
		Expect(err).ToNot(HaveOccurred())
		Expect(decrypted).To(Equal(record))
	})

	It("authenticates with a 32-byte tag", func() {
		tag := authenticate(macKey, []byte("some message"))
		Expect(tag).To(HaveLen(protocol.MACLength))
		Expect(verify(macKey, []byte("some message"), tag)).To(BeTrue())
	})

	It("rejects a forged tag", func() {
		msg := []byte("some message")
		tag := authenticate(macKey, msg)
		tag[0] ^= 0x01
		Expect(verify(macKey, msg, tag)).To(BeFalse())
	})

	It("rejects a truncated tag", func() {
		msg := []byte("some message")
		tag := authenticate(macKey, msg)
		Expect(verify(macKey, msg, tag[:protocol.MACLength-1])).To(BeFalse())
	})

	It("rejects a tag computed with a different key", func() {
		msg := []byte("some message")
		tag := authenticate(macKey, msg)
		Expect(verify(key, msg, tag)).To(BeFalse())
	})
})
