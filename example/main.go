// Command example issues session tickets for a handful of servers, rotates
// the ticket keys and redeems the stored tickets again.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	scramblesuit "github.com/scramblesuit/scramblesuit-go"
	"github.com/scramblesuit/scramblesuit-go/logging"
	"github.com/scramblesuit/scramblesuit-go/metrics"
	"github.com/scramblesuit/scramblesuit-go/qlog"
)

func main() {
	tickets := flag.Int("tickets", 2, "number of tickets to issue per server")
	qlogPath := flag.String("qlog", "", "write a qlog trace to this file")
	flag.Parse()

	tracers := []*logging.Tracer{metrics.NewTracer()}
	if *qlogPath != "" {
		f, err := os.Create(*qlogPath)
		if err != nil {
			log.Fatal(err)
		}
		tracers = append(tracers, qlog.NewTracer(f))
	}

	key, err := scramblesuit.TicketKeyFromSecret([]byte("example server seed"))
	if err != nil {
		log.Fatal(err)
	}
	gen, err := scramblesuit.NewTicketGenerator(key, &scramblesuit.Config{
		Tracer: logging.NewMultiplexedTracer(tracers...),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer gen.Close()

	store := scramblesuit.NewLRUTicketStore(4, *tickets)

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		addr := fmt.Sprintf("server-%d.example.net:443", i)
		g.Go(func() error {
			for j := 0; j < *tickets; j++ {
				masterKey, err := scramblesuit.GenerateMasterKey(nil)
				if err != nil {
					return err
				}
				_, raw, err := gen.Issue(masterKey)
				if err != nil {
					return err
				}
				store.Put(addr, &scramblesuit.ClientTicket{
					Ticket:     raw,
					MasterKey:  masterKey,
					ReceivedAt: time.Now(),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	// rotate the ticket keys, keeping the previous key redeemable
	next, err := scramblesuit.NewTicketKey(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.SetTicketKeys(next, key); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		addr := fmt.Sprintf("server-%d.example.net:443", i)
		for {
			ct := store.Pop(addr)
			if ct == nil {
				break
			}
			session, err := gen.Redeem(ct.Ticket)
			if err != nil {
				log.Fatal(err)
			}
			if session == nil {
				fmt.Printf("%s: ticket rejected\n", addr)
				continue
			}
			if session.MasterKey != ct.MasterKey {
				log.Fatalf("%s: master key mismatch", addr)
			}
			fmt.Printf("%s: resumed session issued at %s (old key: %t)\n",
				addr, session.IssuedAt.Format(time.RFC3339), session.UsedOldKey)
		}
	}
}
