/*
Package teamsdk is a client for the Orthonext team directory service.

An SDKClient covers the public endpoints: health, registration and login.
A Session acts on behalf of one user by sending the trusted identity header
the gateway would normally attach:

	client := teamsdk.NewSDKClient("http://localhost:8080")

	alice, err := client.Register(ctx, teamsdk.RegisterRequest{
		Email:    "alice@x.com",
		FullName: "Alice Rossi",
		Password: "s3cret!",
	})

	session := client.AsUser(alice.ID)
	inv, err := session.SendInvite(ctx, bobID)

Server errors are returned as *APIError; use IsNotFound, IsConflict and the
other helpers to branch on them.
*/
package teamsdk
