// Package http provides probe's HTTP core: a fluent request builder, a
// configurable client, and a response type with a chainable assertion
// API.
//
// A request moves linearly through build, send and assert:
//
//	resp, err := http.Get("https://api.example.com/users").
//		Query("page", "1").
//		Header("Authorization", "Bearer "+token).
//		Send()
//	if err != nil {
//		return err
//	}
//	resp, err = resp.ExpectStatus(200)
//	if err != nil {
//		return err
//	}
//	_, err = resp.AssertField("items[0].name", "First")
//
// Every assertion either returns the response for further chaining or
// exactly one typed error from the taxonomy in errors.go.
package http
