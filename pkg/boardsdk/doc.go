// Package boardsdk provides a Go client for the board service along with
// the request/response types and the stable error catalogue shared between
// the server's HTTP layer and client code.
//
// Unauthenticated operations work on a bare Client; after Login, derive an
// authenticated client with WithToken:
//
//	client := boardsdk.NewClient("http://localhost:8080")
//	login, err := client.Login(ctx, "dana", "hunter2")
//	if err != nil {
//		// *boardsdk.APIError carries the service's error code
//	}
//	me := client.WithToken(login.SessionToken)
//	posts, err := me.ListPosts(ctx, "")
package boardsdk
