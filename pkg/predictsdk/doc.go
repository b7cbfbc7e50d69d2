/*
Package predictsdk is a Go client for the predictclass HTTP API.

# SDKClient vs Session

SDKClient covers the public endpoints and logs users in:

	client := predictsdk.NewSDKClient("http://localhost:8080")

	health, err := client.GetLiveness(ctx)

	user, err := client.Register(ctx, predictsdk.RegisterRequest{
		Username: "tess",
		Password: "correct horse",
		Role:     predictsdk.RoleTeacher,
	})

	session, err := client.Login(ctx, "tess", "correct horse")

A Session sends its token as a Bearer header on every call:

	class, err := session.CreateClass(ctx, "Year 9 Science")
	game, err := session.CreateGame(ctx, class.ID, "Will it rain tomorrow?")

Sessions are not refreshed. Once the token expires every call fails with a
401 and the caller logs in again.

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and
the server's error code:

	var apiErr *predictsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == predictsdk.ErrorCodeTokenExpired {
		// ask for a new reset link
	}
*/
package predictsdk
