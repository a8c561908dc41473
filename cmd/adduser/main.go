// The adduser command is a manual smoke test: it registers a user
// against an auth service reachable at the given base URL and prints
// the JSON response. Transport failures terminate the run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/yemaster/vtix-ng/internal/probe"
)

func main() {
	var (
		baseURL  = flag.String("s", "http://localhost:8080", "base URL of the auth service")
		origin   = flag.String("o", "http://localhost:3000", "value of the Origin request header")
		username = flag.String("u", "testpp", "username to register")
		password = flag.String("p", "Njsn2uy7UBuU", "password to register")
		timeout  = flag.Duration("t", 0, "request timeout (0 means no timeout)")
	)
	flag.Parse()

	client := probe.New(*baseURL, *origin, probe.WithTimeout(*timeout))

	result, err := client.AddUser(context.Background(), *username, *password)
	if err != nil {
		panic(err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(out))
}
