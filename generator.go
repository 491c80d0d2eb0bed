package scramblesuit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
	sslog "github.com/scramblesuit/scramblesuit-go/internal/slog"
	"github.com/scramblesuit/scramblesuit-go/internal/ticket"
	"github.com/scramblesuit/scramblesuit-go/logging"
)

// A ticketKeySet is an immutable snapshot of the accepted ticket keys.
// The first key issues new tickets, every key redeems.
type ticketKeySet struct {
	keys []TicketKey
}

// A TicketGenerator issues session tickets and redeems them again.
// It is safe for concurrent use.
type TicketGenerator struct {
	conf   *Config
	logger *slog.Logger
	tracer *logging.Tracer

	keys atomic.Pointer[ticketKeySet]
}

// NewTicketGenerator creates a generator that issues tickets with the given
// key. The config may be nil.
func NewTicketGenerator(key TicketKey, config *Config) (*TicketGenerator, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	conf := populateConfig(config)
	g := &TicketGenerator{
		conf:   conf,
		logger: conf.Logger.With(sslog.ComponentKey, "generator"),
		tracer: conf.Tracer,
	}
	g.keys.Store(&ticketKeySet{keys: []TicketKey{key}})
	return g, nil
}

// SetTicketKeys replaces the set of accepted ticket keys. New tickets are
// issued with the first key, tickets issued with any of the keys are still
// redeemed. Passing the fresh key first and the previous key second rotates
// keys without invalidating outstanding tickets.
func (g *TicketGenerator) SetTicketKeys(keys ...TicketKey) error {
	if len(keys) == 0 {
		return errors.New("scramblesuit: at least one ticket key is required")
	}
	g.keys.Store(&ticketKeySet{keys: slices.Clone(keys)})
	if g.tracer != nil && g.tracer.TicketKeysRotated != nil {
		g.tracer.TicketKeysRotated(keys[0].Name(), len(keys))
	}
	g.logger.Info("rotated ticket keys",
		"issuing", keys[0].Name(),
		"accepted", len(keys),
	)
	return nil
}

// Issue creates a ticket carrying masterKey. It returns the name of the
// issuing key along with the wire ticket.
func (g *TicketGenerator) Issue(masterKey MasterKey) (KeyName, []byte, error) {
	key := g.keys.Load().keys[0]
	var iv [protocol.IVLength]byte
	if _, err := io.ReadFull(g.conf.Rand, iv[:]); err != nil {
		return KeyName{}, nil, fmt.Errorf("scramblesuit: reading IV: %w", err)
	}
	issuedAt := g.conf.Time()
	raw, err := ticket.NewSessionTicket(key.name, key.aesKey, key.hmacKey, iv).Issue(&ticket.State{
		MasterKey: masterKey,
		IssuedAt:  issuedAt,
	})
	if err != nil {
		return KeyName{}, nil, fmt.Errorf("scramblesuit: issuing ticket: %w", err)
	}
	if g.tracer != nil && g.tracer.TicketIssued != nil {
		g.tracer.TicketIssued(key.name, issuedAt)
	}
	g.logger.Debug("issued ticket", "key_name", key.name)
	return key.name, raw, nil
}

// Redeem checks a blob presented by a client and recovers the session state
// from it.
//
// Any blob that is not a currently valid ticket yields a (nil, nil) return,
// no matter why it was rejected. The caller falls back to a full handshake.
// The rejection reason only surfaces through the tracer and the logs;
// reporting it to the peer would tell a probing client why its guess failed.
func (g *TicketGenerator) Redeem(raw []byte) (*ResumedSession, error) {
	if len(raw) != protocol.TicketLength {
		g.rejectTicket(logging.RejectionReasonLength)
		return nil, nil
	}
	now := g.conf.Time()
	for i, key := range g.keys.Load().keys {
		st, err := ticket.Decrypt(raw, key.name, key.aesKey, key.hmacKey)
		if errors.Is(err, ticket.ErrKeyName) {
			continue
		}
		if err != nil {
			g.rejectTicket(rejectionReason(err))
			return nil, nil
		}
		if !st.IsValid(now, g.conf.TicketLifetime) {
			g.rejectTicket(logging.RejectionReasonExpired)
			return nil, nil
		}
		usedOldKey := i > 0
		if g.tracer != nil && g.tracer.TicketRedeemed != nil {
			g.tracer.TicketRedeemed(key.name, now.Sub(st.IssuedAt), usedOldKey)
		}
		g.logger.Debug("redeemed ticket",
			"key_name", key.name,
			"used_old_key", usedOldKey,
		)
		return &ResumedSession{
			MasterKey:  st.MasterKey,
			IssuedAt:   st.IssuedAt,
			UsedOldKey: usedOldKey,
		}, nil
	}
	g.rejectTicket(logging.RejectionReasonKeyName)
	return nil, nil
}

func rejectionReason(err error) logging.RejectionReason {
	switch {
	case errors.Is(err, ticket.ErrLength):
		return logging.RejectionReasonLength
	case errors.Is(err, ticket.ErrKeyName):
		return logging.RejectionReasonKeyName
	case errors.Is(err, ticket.ErrAuthentication):
		return logging.RejectionReasonAuthentication
	default:
		return logging.RejectionReasonFormat
	}
}

func (g *TicketGenerator) rejectTicket(reason logging.RejectionReason) {
	if g.tracer != nil && g.tracer.TicketRejected != nil {
		g.tracer.TicketRejected(reason)
	}
	g.logger.Debug("rejected ticket", "reason", reason)
}

// Close closes the tracer. The generator itself holds no other resources.
func (g *TicketGenerator) Close() error {
	if g.tracer != nil && g.tracer.Close != nil {
		g.tracer.Close()
	}
	return nil
}
