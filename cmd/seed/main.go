// Command seed fills a running API with fake users and posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/json"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type seeder struct {
	c    *client.Client
	base string
}

type userRes struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func main() {
	addr := flag.String("addr", "http://localhost:3000", "base URL of the API")
	users := flag.Int("users", 5, "number of users to register")
	posts := flag.Int("posts", 3, "posts per user")
	seed := flag.Int64("seed", 0, "gofakeit seed, 0 for random")
	flag.Parse()

	gofakeit.Seed(*seed)

	c, err := client.NewClient()
	if err != nil {
		hlog.Fatalf("create client: %v", err)
	}
	s := &seeder{c: c, base: strings.TrimRight(*addr, "/")}
	ctx := context.Background()

	created := 0
	for i := 0; i < *users; i++ {
		id, err := s.register(ctx)
		if err != nil {
			hlog.Errorf("register: %v", err)
			continue
		}
		for j := 0; j < *posts; j++ {
			if err := s.createPost(ctx, id); err != nil {
				hlog.Errorf("create post for %s: %v", id, err)
				continue
			}
			created++
		}
	}
	hlog.Infof("Seeded %d users and %d posts", *users, created)
}

func (s *seeder) register(ctx context.Context) (string, error) {
	args := &protocol.Args{}
	args.Add("name", gofakeit.Name())
	args.Add("email", gofakeit.Email())
	args.Add("password", gofakeit.Password(true, true, true, false, false, 12))

	status, body, err := s.c.Post(ctx, nil, s.base+"/register", args)
	if err != nil {
		return "", err
	}
	if status != consts.StatusCreated {
		return "", fmt.Errorf("unexpected status %d: %s", status, body)
	}

	var res userRes
	if err := json.Unmarshal(body, &res); err != nil {
		return "", err
	}
	hlog.Infof("Registered %s (%s)", res.User.Email, res.User.ID)
	return res.User.ID, nil
}

func (s *seeder) createPost(ctx context.Context, userID string) error {
	args := &protocol.Args{}
	args.Add("user_id", userID)
	args.Add("title", gofakeit.Sentence(5))
	args.Add("description", gofakeit.Paragraph(1, 3, 12, " "))

	status, body, err := s.c.Post(ctx, nil, s.base+"/create/post", args)
	if err != nil {
		return err
	}
	if status != consts.StatusCreated {
		return fmt.Errorf("unexpected status %d: %s", status, body)
	}
	return nil
}
