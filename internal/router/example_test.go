package router

import (
	"fmt"
	"io"
	"net/http"
)

func ExampleRouter_GetRoot() {
	server := setupTestRouter(nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	fmt.Println("Status Code:", resp.StatusCode)
	fmt.Print(string(body))

	// Output:
	// Status Code: 200
	// {"app":"vtix-ng","version":"0.1.0","author":["yemaster","XeF2"]}
}

func ExampleRouter_GetUser() {
	server := setupTestRouter(nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/users/42")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	fmt.Println("Status Code:", resp.StatusCode)
	fmt.Print(string(body))

	// Output:
	// Status Code: 200
	// {"user_id":42}
}
