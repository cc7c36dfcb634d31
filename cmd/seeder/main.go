// Seeder populates a running gateway with demo accounts, birthdays and
// activity. Platform state lives inside the server process, so seeding goes
// through the HTTP API rather than the database.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/birthday-onchain/boc-api/internal/config"
	"github.com/birthday-onchain/boc-api/internal/model"
)

type client struct {
	base  string
	http  *http.Client
	token string
}

func (c *client) do(method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr model.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func main() {
	cfg := config.Load()
	base := "http://localhost:" + cfg.App.Port + "/api/v1"
	log.Printf("🌱 Seeding gateway at %s", base)

	names := []struct {
		fullname string
		nickname string
		gender   string
	}{
		{"Alice Nakamoto", "alice", "female"},
		{"Bob Buterin", "bob", "male"},
		{"Carol Szabo", "carol", "female"},
		{"Dave Finney", "dave", "male"},
		{"Erin Haber", "erin", "female"},
	}

	clients := make([]*client, 0, len(names))
	for i, n := range names {
		c := &client{
			base: base,
			http: &http.Client{Timeout: 10 * time.Second},
		}

		addr := fmt.Sprintf("0x%040x", i+1)
		var session model.SessionResponse
		if err := c.do("POST", "/auth/session", model.SessionRequest{Address: addr}, &session); err != nil {
			log.Fatalf("❌ Failed to open session for %s: %v", n.nickname, err)
		}
		c.token = session.Token

		if err := c.do("POST", "/users", model.CreateUserRequest{
			Fullname: n.fullname,
			Nickname: n.nickname,
			Gender:   n.gender,
			Currency: model.CurrencyEther,
			Photo:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", n.nickname),
		}, nil); err != nil {
			log.Printf("⏭️  User %s: %v", n.nickname, err)
		} else {
			log.Printf("✅ Created user: %s (%s)", n.nickname, session.Address)
		}

		clients = append(clients, c)
	}

	// Birthdays with goals for the first three users
	for i, c := range clients[:3] {
		when := time.Now().AddDate(0, i+1, 0).Unix()
		if err := c.do("POST", "/birthdays", model.CreateBirthdayRequest{
			When:         when,
			Description:  fmt.Sprintf("Birthday fund for %s", names[i].nickname),
			TargetAmount: "2000000000000000000", // 2 ether
		}, nil); err != nil {
			log.Printf("⏭️  Birthday for %s: %v", names[i].nickname, err)
		} else {
			log.Printf("🎂 Created birthday with goal for %s", names[i].nickname)
		}
	}

	// Some messages and gifts between users
	sessions := func(i int) string { return fmt.Sprintf("0x%040x", i+1) }

	activity := []struct {
		from int
		to   int
		msg  string
	}{
		{1, 0, "Happy birthday Alice! 🎉"},
		{2, 0, "Have a great one!"},
		{0, 1, "Thanks for the wishes, your turn soon!"},
	}
	for _, a := range activity {
		if err := clients[a.from].do("POST", "/activities/messages", model.SendMessageRequest{
			Recipient: sessions(a.to),
			Message:   a.msg,
		}, nil); err != nil {
			log.Printf("⏭️  Message %s -> %s: %v", names[a.from].nickname, names[a.to].nickname, err)
		} else {
			log.Printf("💬 Message sent: %s -> %s", names[a.from].nickname, names[a.to].nickname)
		}
	}

	gifts := []struct {
		from   int
		to     int
		amount string
	}{
		{1, 0, "500000000000000000"}, // 0.5 ether
		{2, 0, "250000000000000000"},
		{3, 1, "100000000000000000"},
	}
	for _, g := range gifts {
		if err := clients[g.from].do("POST", "/activities/gifts/ether", model.SendGiftRequest{
			Recipient: sessions(g.to),
			Amount:    g.amount,
		}, nil); err != nil {
			log.Printf("⏭️  Gift %s -> %s: %v", names[g.from].nickname, names[g.to].nickname, err)
		} else {
			log.Printf("🎁 Gift sent: %s -> %s (%s wei)", names[g.from].nickname, names[g.to].nickname, g.amount)
		}
	}

	// One featured subscription
	if err := clients[4].do("POST", "/subscriptions/ether", model.SubscribeRequest{
		Amount: "1000000000000000000",
	}, nil); err != nil {
		log.Printf("⏭️  Subscription for %s: %v", names[4].nickname, err)
	} else {
		log.Printf("⭐ %s subscribed as featured", names[4].nickname)
	}

	log.Println("🎉 Seeding completed!")
}
