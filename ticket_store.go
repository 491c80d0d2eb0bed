package scramblesuit

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

type singleServerTicketStore struct {
	tickets []*ClientTicket
	len     int
	p       int
}

func newSingleServerTicketStore(size int) *singleServerTicketStore {
	return &singleServerTicketStore{tickets: make([]*ClientTicket, size)}
}

func (s *singleServerTicketStore) Add(ticket *ClientTicket) {
	s.tickets[s.p] = ticket
	s.p = s.index(s.p + 1)
	s.len = min(s.len+1, len(s.tickets))
}

func (s *singleServerTicketStore) Pop() *ClientTicket {
	s.p = s.index(s.p - 1)
	ticket := s.tickets[s.p]
	s.tickets[s.p] = nil
	s.len = max(s.len-1, 0)
	return ticket
}

func (s *singleServerTicketStore) Len() int { return s.len }

func (s *singleServerTicketStore) index(i int) int {
	mod := len(s.tickets)
	return (i + mod) % mod
}

type lruTicketStore struct {
	mutex sync.Mutex

	cache            *lru.Cache
	singleServerSize int
}

var _ TicketStore = &lruTicketStore{}

// NewLRUTicketStore creates a new LRU cache for session tickets received by
// the client. maxServers limits the number of servers tickets are kept for,
// ticketsPerServer the number of tickets kept per server.
func NewLRUTicketStore(maxServers, ticketsPerServer int) TicketStore {
	if ticketsPerServer <= 0 {
		panic("scramblesuit: ticketsPerServer must be positive")
	}
	c, err := lru.New(maxServers)
	if err != nil {
		panic(err)
	}
	return &lruTicketStore{cache: c, singleServerSize: ticketsPerServer}
}

func (s *lruTicketStore) Put(key string, ticket *ClientTicket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if v, ok := s.cache.Get(key); ok {
		tickets := v.(*singleServerTicketStore)
		tickets.Add(ticket)
		return
	}

	tickets := newSingleServerTicketStore(s.singleServerSize)
	tickets.Add(ticket)
	s.cache.Add(key, tickets)
}

func (s *lruTicketStore) Pop(key string) *ClientTicket {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var ticket *ClientTicket
	if v, ok := s.cache.Get(key); ok {
		tickets := v.(*singleServerTicketStore)
		ticket = tickets.Pop()
		if tickets.Len() == 0 {
			s.cache.Remove(key)
		}
	}
	return ticket
}
