package ticket

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Reference ticket minted from fixed keys, a fixed IV, an all-zero master
// key and issue date 1700000000.
const (
	refAESKey  = "000102030405060708090a0b0c0d0e0f"
	refHMACKey = "101112131415161718191a1b1c1d1e1f"
	refKeyName = "202122232425262728292a2b2c2d2e2f"
	refIV      = "303132333435363738393a3b3c3d3e3f"
	refTicket  = refKeyName + refIV +
		"5134049c2bbe11bd2ce0dcbcac65c5784f66be1ee40af759b631dbd4d68d04b3d6bfd8d2a2ee94aefa90e88b78ffb4fd" +
		"bd824bee4ede4a0abaac0883de35c83f594dea9b3f94658b41ca8aacbc4df389"
)

var _ = Describe("Ticket", func() {
	refKeys := func() (name protocol.KeyName, aesKey, hmacKey [protocol.TicketKeyLength]byte, iv [protocol.IVLength]byte) {
		var err error
		name, err = protocol.ParseKeyName(unhex(refKeyName))
		ExpectWithOffset(1, err).ToNot(HaveOccurred())
		copy(aesKey[:], unhex(refAESKey))
		copy(hmacKey[:], unhex(refHMACKey))
		copy(iv[:], unhex(refIV))
		return name, aesKey, hmacKey, iv
	}

	issueRef := func() (raw []byte, name protocol.KeyName, aesKey, hmacKey [protocol.TicketKeyLength]byte) {
		name, aesKey, hmacKey, iv := refKeys()
		raw, err := NewSessionTicket(name, aesKey, hmacKey, iv).Issue(&State{IssuedAt: time.Unix(1700000000, 0)})
		ExpectWithOffset(1, err).ToNot(HaveOccurred())
		return raw, name, aesKey, hmacKey
	}

	It("issues the reference ticket", func() {
		raw, _, _, _ := issueRef()
		Expect(raw).To(HaveLen(protocol.TicketLength))
		Expect(raw).To(Equal(unhex(refTicket)))
	})

	It("decrypts the reference ticket", func() {
		name, aesKey, hmacKey, _ := refKeys()
		state, err := Decrypt(unhex(refTicket), name, aesKey, hmacKey)
		Expect(err).ToNot(HaveOccurred())
		Expect(state.MasterKey).To(Equal(protocol.MasterKey{}))
		Expect(state.IssuedAt.Unix()).To(Equal(int64(1700000000)))
	})

	It("issues and decrypts a ticket with a non-zero master key", func() {
		var aesKey, hmacKey [protocol.TicketKeyLength]byte
		var iv [protocol.IVLength]byte
		copy(aesKey[:], unhex("8e73b0f7da0e6452c810f32b809079e5"))
		copy(hmacKey[:], unhex("603deb1015ca71be2b73aef0857d7781"))
		copy(iv[:], unhex("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"))
		name, err := protocol.ParseKeyName(unhex("deadbeefdeadbeefdeadbeefdeadbeef"))
		Expect(err).ToNot(HaveOccurred())
		mk, err := protocol.ParseMasterKey(unhex("a0a1a2a3a4a5a6a7a8a9aaabacadaeaf"))
		Expect(err).ToNot(HaveOccurred())

		raw, err := NewSessionTicket(name, aesKey, hmacKey, iv).Issue(&State{MasterKey: mk, IssuedAt: time.Unix(1234567890, 0)})
		Expect(err).ToNot(HaveOccurred())
		Expect(raw).To(Equal(unhex("deadbeefdeadbeefdeadbeefdeadbeef" +
			"f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff" +
			"573215d3aec826cdbe259838fa9f4bb05734f139ec06b59adf3acb53638b0e392c217a5ec294438dfe9c84bc87eeb732" +
			"498ed25e0c2b5d15aa6d18bb5f7d6fe5f35c6cc5dca00930d4916d25605a08e3")))

		state, err := Decrypt(raw, name, aesKey, hmacKey)
		Expect(err).ToNot(HaveOccurred())
		Expect(state.MasterKey).To(Equal(mk))
		Expect(state.IssuedAt.Unix()).To(Equal(int64(1234567890)))
	})

	It("round-trips tickets with random keys", func() {
		rng := rand.New(rand.NewSource(uint64(GinkgoRandomSeed())))
		for i := 0; i < 20; i++ {
			var aesKey, hmacKey [protocol.TicketKeyLength]byte
			var iv [protocol.IVLength]byte
			rng.Read(aesKey[:])
			rng.Read(hmacKey[:])
			rng.Read(iv[:])
			name, err := protocol.GenerateKeyName(rng)
			Expect(err).ToNot(HaveOccurred())
			mk, err := protocol.GenerateMasterKey(rng)
			Expect(err).ToNot(HaveOccurred())
			issued := time.Unix(rng.Int63n(2000000000), 0)

			raw, err := NewSessionTicket(name, aesKey, hmacKey, iv).Issue(&State{MasterKey: mk, IssuedAt: issued})
			Expect(err).ToNot(HaveOccurred())
			state, err := Decrypt(raw, name, aesKey, hmacKey)
			Expect(err).ToNot(HaveOccurred())
			Expect(state.MasterKey).To(Equal(mk))
			Expect(state.IssuedAt.Unix()).To(Equal(issued.Unix()))
		}
	})

	It("rejects tickets of the wrong length", func() {
		raw, name, aesKey, hmacKey := issueRef()
		for i := 0; i < protocol.TicketLength; i++ {
			_, err := Decrypt(raw[:i], name, aesKey, hmacKey)
			Expect(err).To(MatchError(ErrLength))
		}
		_, err := Decrypt(append(raw, 0), name, aesKey, hmacKey)
		Expect(err).To(MatchError(ErrLength))
	})

	It("rejects modified tickets", func() {
		raw, name, aesKey, hmacKey := issueRef()
		for i := range raw {
			modified := append([]byte{}, raw...)
			modified[i] ^= 0x42
			_, err := Decrypt(modified, name, aesKey, hmacKey)
			if i < protocol.KeyNameLength {
				Expect(err).To(MatchError(ErrKeyName), "byte %d", i)
			} else {
				Expect(err).To(MatchError(ErrAuthentication), "byte %d", i)
			}
		}
	})

	It("rejects tickets under an unexpected key name", func() {
		raw, name, aesKey, hmacKey := issueRef()
		name[0] ^= 0x01
		_, err := Decrypt(raw, name, aesKey, hmacKey)
		Expect(err).To(MatchError(ErrKeyName))
	})

	It("rejects tickets when the HMAC key is wrong", func() {
		raw, name, aesKey, hmacKey := issueRef()
		hmacKey[0] ^= 0x01
		_, err := Decrypt(raw, name, aesKey, hmacKey)
		Expect(err).To(MatchError(ErrAuthentication))
	})

	It("rejects tickets when the AES key is wrong", func() {
		// The tag still verifies, but the state decrypts to garbage that
		// doesn't carry the identifier.
		raw, name, aesKey, hmacKey := issueRef()
		aesKey[0] ^= 0x01
		_, err := Decrypt(raw, name, aesKey, hmacKey)
		Expect(err).To(MatchError(ErrFormat))
	})
})
